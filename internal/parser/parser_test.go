package parser

import (
	"testing"

	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/dttoken"
	"github.com/akashmaji946/dtc/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexLine(t *testing.T, line string) []dttoken.Token {
	t.Helper()
	var tokens []dttoken.Token
	require.NoError(t, lexer.Lex(line, 1, 0, &tokens))
	return tokens
}

func compile(t *testing.T, src string) *ast.Node {
	t.Helper()
	reg := diag.NewRegistry()
	reg.Register("test.dt")
	root, err := Compile(lexLine(t, src), reg)
	require.NoError(t, err)
	return root
}

func TestCompile_FunctionWithReturnExpression(t *testing.T) {
	root := compile(t, "int main() { return 0; }")
	require.Equal(t, 1, root.Size())

	fn := root.At(0)
	assert.Equal(t, ast.Function, fn.Kind)
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, dttoken.TYPE_INT, fn.ReturnType)
	assert.Empty(t, fn.Params)
	require.Equal(t, 1, fn.Size())

	ret := fn.At(0)
	assert.Equal(t, ast.Return, ret.Kind)
	require.Equal(t, 1, ret.Size())
	expr := ret.At(0)
	assert.Equal(t, ast.Expr, expr.Kind)
	assert.Equal(t, ast.IntLit, expr.At(0).Kind)
	assert.EqualValues(t, 0, expr.At(0).IntVal)
}

func TestCompile_ReturnWithNoExpression(t *testing.T) {
	root := compile(t, "int main() { return; }")
	ret := root.At(0).At(0)
	assert.Equal(t, ast.Return, ret.Kind)
	assert.Equal(t, 0, ret.Size())
}

func TestCompile_FunctionWithTwoParamsAndBinaryBody(t *testing.T) {
	root := compile(t, "int f(int a, int b) { return a + b; }")
	fn := root.At(0)
	assert.Equal(t, "f", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, ast.Param{Name: "a", Type: dttoken.TYPE_INT}, fn.Params[0])
	assert.Equal(t, ast.Param{Name: "b", Type: dttoken.TYPE_INT}, fn.Params[1])

	expr := fn.At(0).At(0).At(0)
	assert.Equal(t, ast.BinExpr, expr.Kind)
	assert.Equal(t, dttoken.OP_ADD, expr.Op)
}

func TestCompile_VariableDeclaration(t *testing.T) {
	root := compile(t, "int x = 1 + 2;")
	v := root.At(0)
	assert.Equal(t, ast.Variable, v.Kind)
	assert.Equal(t, "x", v.Name)
	assert.Equal(t, dttoken.TYPE_INT, v.Type)

	expr := v.At(0).At(0)
	assert.Equal(t, ast.BinExpr, expr.Kind)
	assert.Equal(t, dttoken.OP_ADD, expr.Op)
}

func TestCompile_CommentOnlyLineYieldsEmptyRoot(t *testing.T) {
	root := compile(t, "# comment only")
	assert.Equal(t, 0, root.Size())
}

func TestCompile_UnclosedParenInSignatureRaisesUnclosedGroup(t *testing.T) {
	reg := diag.NewRegistry()
	reg.Register("test.dt")
	_, err := Compile(lexLine(t, "int f(int a { return a; }"), reg)
	require.Error(t, err)
	derr := err.(*diag.Error)
	assert.Equal(t, diag.UnclosedGroup, derr.Kind)
}

func TestCompile_MissingSemicolonAfterReturnRaisesSyntax(t *testing.T) {
	reg := diag.NewRegistry()
	reg.Register("test.dt")
	_, err := Compile(lexLine(t, "int main() { return 0 }"), reg)
	require.Error(t, err)
	derr := err.(*diag.Error)
	assert.Equal(t, diag.Syntax, derr.Kind)
}

func TestCompile_UnterminatedStringIsSyntaxAtOpeningQuote(t *testing.T) {
	var tokens []dttoken.Token
	err := lexer.Lex(`int main() { return "abc; }`, 1, 0, &tokens)
	require.Error(t, err)
	derr := err.(*diag.Error)
	assert.Equal(t, diag.Syntax, derr.Kind)
}

func TestCompile_TrailingBinaryOperatorReportsSemicolon(t *testing.T) {
	reg := diag.NewRegistry()
	reg.Register("test.dt")
	_, err := Compile(lexLine(t, "int main() { return 1 +; }"), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Near: ;")
}

func TestCompile_UnrecognizedTopLevelTokenIsSyntaxError(t *testing.T) {
	// Redesigned per the documented open question: no longer silently
	// ignored.
	reg := diag.NewRegistry()
	reg.Register("test.dt")
	_, err := Compile(lexLine(t, "; int x = 1;"), reg)
	require.Error(t, err)
	derr := err.(*diag.Error)
	assert.Equal(t, diag.Syntax, derr.Kind)
}

func TestCompile_StringLiteralReturn(t *testing.T) {
	root := compile(t, `int main() { return "hi"; }`)
	expr := root.At(0).At(0).At(0)
	str := expr.At(0)
	assert.Equal(t, ast.StrLit, str.Kind)
	assert.Equal(t, "hi", str.StrVal)
	assert.Equal(t, ast.UnassignedID, str.AssemblerID)
}
