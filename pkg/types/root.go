package types

// RootKind tags a discovered conversion root
type RootKind string

const (
	// RootWorld is a directory containing the world marker file
	RootWorld RootKind = "world"
	// RootPlugin is a direct child directory of the plugins folder
	RootPlugin RootKind = "plugin"
)

// Root is the top of one conversion subtree
type Root struct {
	Path string   `json:"path" yaml:"path"`
	Kind RootKind `json:"kind" yaml:"kind"`
}
