package emitter

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intReturn(v int64) *ast.Node {
	fn := ast.New(ast.Function, diag.Pos{}, "main")
	fn.Name = "main"
	ret := ast.New(ast.Return, diag.Pos{}, "return")
	expr := ast.New(ast.Expr, diag.Pos{}, "")
	lit := ast.New(ast.IntLit, diag.Pos{}, "")
	lit.IntVal = v
	expr.Push(lit)
	ret.Push(expr)
	fn.Push(ret)
	return fn
}

func TestMarkStrings_AssignsOneBasedSourceOrder(t *testing.T) {
	root := ast.New(ast.Root, diag.Pos{}, "")
	fn := ast.New(ast.Function, diag.Pos{}, "main")
	a := ast.New(ast.StrLit, diag.Pos{}, `"a"`)
	a.StrVal = "a"
	b := ast.New(ast.StrLit, diag.Pos{}, `"b"`)
	b.StrVal = "b"
	fn.Push(a)
	fn.Push(b)
	root.Push(fn)

	values := MarkStrings(root)
	assert.Equal(t, []string{"a", "b"}, values)
	assert.Equal(t, 1, a.AssemblerID)
	assert.Equal(t, 2, b.AssemblerID)
}

func TestAssignFunctionIDs_FindsZeroParamMain(t *testing.T) {
	root := ast.New(ast.Root, diag.Pos{}, "")
	helper := ast.New(ast.Function, diag.Pos{}, "helper")
	helper.Name = "helper"
	helper.Params = []ast.Param{{Name: "x"}}
	main := ast.New(ast.Function, diag.Pos{}, "main")
	main.Name = "main"
	root.Push(helper)
	root.Push(main)

	mainID, ok := AssignFunctionIDs(root)
	require.True(t, ok)
	assert.Equal(t, 1, mainID)
	assert.Equal(t, 0, helper.AssemblerID)
	assert.Equal(t, 1, main.AssemblerID)
}

func TestAssignFunctionIDs_NoMainIsNotOK(t *testing.T) {
	root := ast.New(ast.Root, diag.Pos{}, "")
	fn := ast.New(ast.Function, diag.Pos{}, "helper")
	fn.Name = "helper"
	root.Push(fn)

	_, ok := AssignFunctionIDs(root)
	assert.False(t, ok)
}

func TestEmitFunction_ReturnIntLiteral(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitFunction(&buf, intReturn(42)))
	out := buf.String()
	assert.Contains(t, out, "push rbp")
	assert.Contains(t, out, "mov rax, 42")
	assert.Contains(t, out, "ret")
}

func TestEmitFunction_ReturnWithNoExpressionDefaultsToZero(t *testing.T) {
	fn := ast.New(ast.Function, diag.Pos{}, "main")
	fn.Name = "main"
	fn.Push(ast.New(ast.Return, diag.Pos{}, "return"))

	var buf bytes.Buffer
	require.NoError(t, EmitFunction(&buf, fn))
	assert.Contains(t, buf.String(), "mov rax, 0")
}

func TestEmitFunction_UnsupportedBodyShapeReturnsSentinel(t *testing.T) {
	fn := ast.New(ast.Function, diag.Pos{}, "main")
	fn.Name = "main"
	ret := ast.New(ast.Return, diag.Pos{}, "return")
	expr := ast.New(ast.Expr, diag.Pos{}, "")
	bin := ast.New(ast.BinExpr, diag.Pos{}, "")
	expr.Push(bin)
	ret.Push(expr)
	fn.Push(ret)

	var buf bytes.Buffer
	err := EmitFunction(&buf, fn)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestEmitAssembly_ProducesDataAndTextSections(t *testing.T) {
	root := ast.New(ast.Root, diag.Pos{}, "")
	root.Push(intReturn(7))

	var buf bytes.Buffer
	funcs, strs, err := EmitAssembly(&buf, root)
	require.NoError(t, err)
	assert.Equal(t, 1, funcs)
	assert.Equal(t, 0, strs)
	out := buf.String()
	assert.Contains(t, out, "section .data")
	assert.Contains(t, out, "_FD0:")
	assert.Contains(t, out, "_start:")
	assert.Contains(t, out, "call _FD0")
}

func TestEmitAssembly_MissingMainIsError(t *testing.T) {
	root := ast.New(ast.Root, diag.Pos{}, "")
	var buf bytes.Buffer
	_, _, err := EmitAssembly(&buf, root)
	assert.Error(t, err)
}
