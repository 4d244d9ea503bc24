package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoFileRender(t *testing.T) {
	t.Parallel()

	f := newGoFile("out.go", "palette")
	f.addImport("strconv")
	f.addImport("github.com/styletools/stylec/pkg/styles")
	f.line("var x = 1")

	want := `// Code generated by stylec. DO NOT EDIT.

package palette

import (
	"github.com/styletools/stylec/pkg/styles"
	"strconv"
)

var x = 1
`
	require.Equal(t, want, string(f.render()))
}

func TestGoFileRenderSingleImport(t *testing.T) {
	t.Parallel()

	f := newGoFile("out.go", "palette")
	f.addImport("github.com/styletools/stylec/pkg/styles")

	require.Contains(t, string(f.render()), "import \"github.com/styletools/stylec/pkg/styles\"\n")
	require.NotContains(t, string(f.render()), "import (")
}

func TestWriteFileIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gen", "out.go")

	wrote, err := writeFileIfChanged(path, []byte("first"))
	require.NoError(t, err)
	require.True(t, wrote)

	// Identical content skips the write and keeps the mtime.
	before, err := os.Stat(path)
	require.NoError(t, err)
	wrote, err = writeFileIfChanged(path, []byte("first"))
	require.NoError(t, err)
	require.False(t, wrote)
	after, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())

	wrote, err = writeFileIfChanged(path, []byte("second"))
	require.NoError(t, err)
	require.True(t, wrote)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(content))

	// No temporary files survive a successful commit.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
