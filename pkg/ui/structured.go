package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/idswap/pkg/errors"
	"gopkg.in/yaml.v3"
)

type encodeFunc func(v interface{}) ([]byte, error)

func encodeJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// structuredRenderer emits every value as one JSON or YAML document
type structuredRenderer struct {
	output io.Writer
	encode encodeFunc
}

func newStructured(w io.Writer, encode encodeFunc) *structuredRenderer {
	return &structuredRenderer{output: w, encode: encode}
}

func (r *structuredRenderer) write(v interface{}) error {
	data, err := r.encode(v)
	if err != nil {
		return err
	}
	_, err = r.output.Write(data)
	return err
}

func (r *structuredRenderer) RenderResult(result interface{}) error {
	return r.write(result)
}

func (r *structuredRenderer) RenderError(err error) error {
	return r.write(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

func (r *structuredRenderer) RenderMessage(msg string) error {
	return r.write(map[string]string{"message": msg})
}
