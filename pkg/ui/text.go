package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/idswap/pkg/convert"
	"github.com/arthur-debert/idswap/pkg/players"
	"github.com/arthur-debert/idswap/pkg/usercache"
)

// textRenderer prints tab-separated lines without styling
type textRenderer struct {
	output io.Writer
}

func newText(w io.Writer) *textRenderer {
	return &textRenderer{output: w}
}

func (r *textRenderer) line(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, format+"\n", args...)
	return err
}

func (r *textRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *convert.Result:
		// One changed path per line, in processing order
		for _, p := range v.Paths() {
			if err := r.line("%s", p); err != nil {
				return err
			}
		}
		return nil
	case []usercache.Entry:
		for _, e := range v {
			if err := r.line("%s\t%s\t%s", e.Name, e.UUID, e.ExpiresOn); err != nil {
				return err
			}
		}
		return nil
	case []players.PlayerData:
		for _, p := range v {
			if err := r.line("%s\t%s\t%s", p.Name, p.OnlineUUID, p.OfflineUUID); err != nil {
				return err
			}
		}
		return nil
	case Mapping:
		for _, k := range v.Keys() {
			if err := r.line("%s\t%s", k, v.Pairs[k]); err != nil {
				return err
			}
		}
		return nil
	case string:
		return r.line("%s", v)
	default:
		return r.line("%+v", result)
	}
}

func (r *textRenderer) RenderError(err error) error {
	return r.line("Error: %v", err)
}

func (r *textRenderer) RenderMessage(msg string) error {
	return r.line("%s", msg)
}
