package ui

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arthur-debert/idswap/pkg/convert"
	"github.com/arthur-debert/idswap/pkg/players"
	"github.com/arthur-debert/idswap/pkg/usercache"
	"github.com/olekukonko/tablewriter"
)

// terminalRenderer draws tables followed by a styled summary line
type terminalRenderer struct {
	output io.Writer
	styles Styles
}

func newTerminal(w io.Writer, styles Styles) *terminalRenderer {
	return &terminalRenderer{output: w, styles: styles}
}

func renderTable(header []string, rows [][]string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}

func (r *terminalRenderer) print(s string) error {
	_, err := fmt.Fprint(r.output, s)
	return err
}

func (r *terminalRenderer) styled(style, format string, args ...interface{}) error {
	return r.print(r.styles.Get(style).Render(fmt.Sprintf(format, args...)) + "\n")
}

func (r *terminalRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *convert.Result:
		return r.renderConvert(v)
	case []usercache.Entry:
		if len(v) == 0 {
			return r.styled("Muted", "User cache is empty")
		}
		rows := make([][]string, len(v))
		for i, e := range v {
			rows[i] = []string{e.Name, e.UUID, e.ExpiresOn}
		}
		if err := r.print(renderTable([]string{"Name", "UUID", "Expires"}, rows)); err != nil {
			return err
		}
		return r.styled("Count", "%d players", len(v))
	case []players.PlayerData:
		rows := make([][]string, len(v))
		for i, p := range v {
			online := p.OnlineUUID
			if online == "" {
				online = "-"
			}
			rows[i] = []string{p.Name, online, p.OfflineUUID}
		}
		if err := r.print(renderTable([]string{"Name", "Online UUID", "Offline UUID"}, rows)); err != nil {
			return err
		}
		return r.styled("Count", "%d players", len(v))
	case Mapping:
		keys := v.Keys()
		rows := make([][]string, len(keys))
		for i, k := range keys {
			rows[i] = []string{k, v.Pairs[k]}
		}
		return r.print(renderTable([]string{v.From, v.To}, rows))
	case string:
		return r.print(v + "\n")
	default:
		return r.print(fmt.Sprintf("%+v\n", result))
	}
}

func (r *terminalRenderer) renderConvert(res *convert.Result) error {
	if len(res.Changes) == 0 {
		if err := r.styled("Muted", "No identifiers matched, nothing changed"); err != nil {
			return err
		}
	} else {
		rows := make([][]string, len(res.Changes))
		for i, c := range res.Changes {
			rows[i] = []string{string(c.Kind), c.Path}
		}
		if err := r.print(renderTable([]string{"Change", "Path"}, rows)); err != nil {
			return err
		}
		if err := r.styled("Success", "%d changes applied", len(res.Changes)); err != nil {
			return err
		}
	}

	if len(res.Skipped) == 0 {
		return nil
	}
	rows := make([][]string, len(res.Skipped))
	for i, s := range res.Skipped {
		rows[i] = []string{string(s.Reason), s.Path, s.Message()}
	}
	if err := r.print(renderTable([]string{"Skipped", "Path", "Error"}, rows)); err != nil {
		return err
	}
	return r.styled("Warning", "%d skipped", len(res.Skipped))
}

func (r *terminalRenderer) RenderError(err error) error {
	return r.styled("Error", "Error: %v", err)
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	return r.styled("Header", "%s", msg)
}
