/*
File    : go-mix/internal/emitter/emitter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package emitter implements the one contract the compiler core owes an
// external code generator: assigning assembler IDs to string literals
// and functions, and producing NASM x86-64 System V text for the cases
// the upstream emitter actually handles.
//
// The upstream emitter is openly incomplete — its binary-expression
// lowering calls itself instead of recursing into the operand nodes, so
// it cannot serve as a reference for anything beyond "return <int
// literal or nothing>" in a function whose body is exactly one Return
// statement. This package implements exactly that slice and reports
// ErrUnsupported for anything else, rather than reproducing the bug.
package emitter

import (
	"errors"
	"fmt"
	"io"

	"github.com/akashmaji946/dtc/internal/ast"
)

// ErrUnsupported is returned by EmitFunction when a function body is
// not a single "return <int literal>" or "return;" statement.
var ErrUnsupported = errors.New("emitter: function body shape not supported")

// MarkStrings walks root depth-first in source order, assigning each
// StrLit node a 1-based AssemblerID, and returns the string values in
// assignment order (index 0 holds the value for AssemblerID 1).
func MarkStrings(root *ast.Node) []string {
	var values []string
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n.Kind == ast.StrLit {
			n.AssemblerID = len(values) + 1
			values = append(values, n.StrVal)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return values
}

// AssignFunctionIDs assigns a 0-based AssemblerID to each top-level
// Function child of root, in order, and reports the index of the first
// zero-parameter function named "main" — the entry point _start calls.
// ok is false when no such function exists.
func AssignFunctionIDs(root *ast.Node) (mainID int, ok bool) {
	mainID, ok = 0, false
	for i, fn := range root.Children {
		if fn.Kind != ast.Function {
			continue
		}
		fn.AssemblerID = i
		if !ok && fn.Name == "main" && len(fn.Params) == 0 {
			mainID = i
			ok = true
		}
	}
	return mainID, ok
}

// EmitAssembly writes a complete NASM listing for root to w: a .data
// section with one _LS<i> entry per string literal, a .text section
// with one _FD<i> label per function, and a _start entry point. It
// returns the number of functions and strings emitted.
func EmitAssembly(w io.Writer, root *ast.Node) (funcCount, stringCount int, err error) {
	strings := MarkStrings(root)
	mainID, ok := AssignFunctionIDs(root)
	if !ok {
		return 0, len(strings), fmt.Errorf("emitter: no zero-parameter function named \"main\"")
	}

	fmt.Fprintln(w, "section .data")
	for i, s := range strings {
		id := i + 1
		fmt.Fprintf(w, "_LS%d: DB '%s'\n", id, s)
		fmt.Fprintf(w, "_LS%d_SZ EQU $ - _LS%d\n", id, id)
	}

	fmt.Fprintln(w, "\nsection .text")
	fmt.Fprintln(w, "global _start")
	funcCount = 0
	for _, fn := range root.Children {
		if fn.Kind != ast.Function {
			continue
		}
		funcCount++
		fmt.Fprintf(w, "_FD%d:\n", fn.AssemblerID)
		if err := EmitFunction(w, fn); err != nil {
			return funcCount, len(strings), err
		}
	}

	fmt.Fprintln(w, "\n_start:")
	fmt.Fprintln(w, "\txor rdi, rdi")
	fmt.Fprintf(w, "\tcall _FD%d\n", mainID)
	fmt.Fprintln(w, "\tmov rdi, rax")
	fmt.Fprintln(w, "\tmov rax, 60")
	fmt.Fprintln(w, "\tsyscall")

	return funcCount, len(strings), nil
}

// EmitFunction writes the standard push/mov frame, the function's one
// supported statement shape, and the frame teardown plus ret. It
// returns ErrUnsupported for any body that is not exactly one Return
// statement carrying zero or one IntLit expression.
func EmitFunction(w io.Writer, fn *ast.Node) error {
	fmt.Fprintln(w, "\tpush rbp")
	fmt.Fprintln(w, "\tmov rbp, rsp")

	if err := emitBody(w, fn); err != nil {
		return err
	}

	fmt.Fprintln(w, "\tmov rsp, rbp")
	fmt.Fprintln(w, "\tpop rbp")
	fmt.Fprintln(w, "\tret")
	return nil
}

func emitBody(w io.Writer, fn *ast.Node) error {
	if fn.Size() != 1 || fn.At(0).Kind != ast.Return {
		return ErrUnsupported
	}
	ret := fn.At(0)
	if ret.Size() == 0 {
		fmt.Fprintln(w, "\tmov rax, 0")
		return nil
	}
	expr := ret.At(0)
	if expr.Kind != ast.Expr || expr.Size() != 1 || expr.At(0).Kind != ast.IntLit {
		return ErrUnsupported
	}
	fmt.Fprintf(w, "\tmov rax, %d\n", expr.At(0).IntVal)
	return nil
}
