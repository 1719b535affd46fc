package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/layout.md":         {Data: []byte("# Layout\n\nWorlds hold a level.dat")},
		"help/option-strict.txt": {Data: []byte("Abort on the first failing root")},
		"help/notes.json":        {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"layout", "option-strict"}, m.Names())

	topic, ok := m.Get("layout")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Ext)
	assert.Contains(t, topic.Content, "level.dat")

	topic, ok = m.Get("--strict")
	require.True(t, ok)
	assert.Equal(t, "option-strict", topic.Name)

	_, ok = m.Get("notes")
	assert.False(t, ok)
}

func TestLoad_CustomExtensions(t *testing.T) {
	m, err := Load(testFS(), "help", Options{Extensions: []string{".json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, m.Names())
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(testFS(), "nope", Options{})
	assert.Error(t, err)
}

func TestInstall(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "app"}
		root.AddCommand(&cobra.Command{Use: "convert", Short: "Convert things", Run: func(*cobra.Command, []string) {}})
		m.Install(root)
		var out bytes.Buffer
		root.SetOut(&out)
		return root, &out
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic", []string{"help", "layout"}, "level.dat"},
		{"option topic", []string{"help", "strict"}, "failing root"},
		{"topic list", []string{"help", "topics"}, "--strict"},
		{"command help", []string{"help", "convert"}, "Convert things"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot()
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRenderers(t *testing.T) {
	assert.Equal(t, "plain *text*", PlainRenderer{}.Render("plain *text*", ".md"))

	g := &GlamourRenderer{Style: "notty", Width: 60}
	assert.Equal(t, "raw", g.Render("raw", ".txt"))
	assert.Contains(t, g.Render("# Title\n\nbody", ".md"), "body")
}
