package types

import "encoding/json"

// ChangeKind says which pass produced a ChangeRecord
type ChangeKind string

const (
	ChangeFileRename  ChangeKind = "file_rename"
	ChangeDirRename   ChangeKind = "dir_rename"
	ChangeTextRewrite ChangeKind = "text_rewrite"
)

// ChangeRecord is the resulting path of one applied rename or content rewrite
type ChangeRecord struct {
	Path string     `json:"path" yaml:"path"`
	Kind ChangeKind `json:"kind" yaml:"kind"`
}

// SkipReason classifies why an entry or a root was left out
type SkipReason string

const (
	// SkipProbeFailed marks a scan candidate that could not be inspected
	SkipProbeFailed SkipReason = "probe_failed"
	// SkipRootFailed marks a root whose passes failed and was isolated
	SkipRootFailed SkipReason = "root_failed"
)

// Skip records an entry that was dropped instead of failing the run.
// It is a result, not an error: callers count and report skips.
type Skip struct {
	Path   string     `json:"path" yaml:"path"`
	Reason SkipReason `json:"reason" yaml:"reason"`
	Err    error      `json:"-" yaml:"-"`
}

// Message returns the underlying error text, or an empty string
func (s Skip) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// skipView is the serialized form of a Skip
type skipView struct {
	Path    string     `json:"path" yaml:"path"`
	Reason  SkipReason `json:"reason" yaml:"reason"`
	Message string     `json:"message,omitempty" yaml:"message,omitempty"`
}

func (s Skip) view() skipView {
	return skipView{Path: s.Path, Reason: s.Reason, Message: s.Message()}
}

// MarshalJSON emits the error text as "message"
func (s Skip) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// MarshalYAML emits the error text as "message"
func (s Skip) MarshalYAML() (interface{}, error) {
	return s.view(), nil
}

// Paths extracts the paths of a change list in order
func Paths(changes []ChangeRecord) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.Path
	}
	return out
}
