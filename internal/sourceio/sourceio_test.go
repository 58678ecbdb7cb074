package sourceio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.dt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLines_StripsTrailingCarriageReturn(t *testing.T) {
	path := writeTemp(t, "int main() {\r\nreturn 0;\r\n}\r\n")
	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.False(t, len(l) > 0 && l[len(l)-1] == '\r')
	}
}

func TestReadLines_MissingFileIsError(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.dt"))
	assert.Error(t, err)
}

func TestCompile_LexesAndParsesMultiLineProgram(t *testing.T) {
	path := writeTemp(t, "int main() {\n  return 0;\n}\n")
	reg := diag.NewRegistry()
	fileIndex := reg.Register(path)

	tokens, root, err := Compile(path, fileIndex, reg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens)
	require.Equal(t, 1, root.Size())
	assert.Equal(t, ast.Function, root.At(0).Kind)
}

func TestCompile_SyntaxErrorPropagatesWithoutPartialTree(t *testing.T) {
	path := writeTemp(t, "int main() {\n  return 0\n}\n")
	reg := diag.NewRegistry()
	fileIndex := reg.Register(path)

	_, root, err := Compile(path, fileIndex, reg)
	require.Error(t, err)
	assert.Nil(t, root)
}
