/*
File    : go-mix/cmd/dtc/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/dttoken"
)

const indentSize = 2

// printTokens writes one token per line, grounded in compileSrc's debug
// dump of the raw token stream before AST construction.
func printTokens(w io.Writer, tokens []dttoken.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s %q (%d:%d)\n", tok.Kind, tok.Raw, tok.Pos.Line, tok.Pos.Col)
	}
}

// printAST pretty-prints root, adapted from the teacher's PrintingVisitor
// indentation scheme but walking the tagged-variant Node model directly
// instead of dispatching through an Accept/Visit pair.
func printAST(w io.Writer, root *ast.Node) {
	printNode(w, root, 0)
}

func printNode(w io.Writer, n *ast.Node, depth int) {
	pad := strings.Repeat(" ", depth*indentSize)
	fmt.Fprintf(w, "%s%s\n", pad, describe(n))
	for _, child := range n.Children {
		printNode(w, child, depth+1)
	}
}

func describe(n *ast.Node) string {
	switch n.Kind {
	case ast.Root:
		return "Root"
	case ast.Function:
		return fmt.Sprintf("Function %s %s(%s) [FD%d]", n.ReturnType, n.Name, paramList(n.Params), n.AssemblerID)
	case ast.Variable:
		return fmt.Sprintf("Variable %s %s", n.Type, n.Name)
	case ast.Identifier:
		return fmt.Sprintf("Identifier %s", n.Name)
	case ast.Return:
		return "Return"
	case ast.Expr:
		return "Expr"
	case ast.BinExpr:
		return fmt.Sprintf("BinExpr %s", n.Op)
	case ast.UnaryExpr:
		return fmt.Sprintf("UnaryExpr %s (post=%t)", n.Op, n.IsPost)
	case ast.BoolLit:
		return fmt.Sprintf("BoolLit %t", n.BoolVal)
	case ast.CharLit:
		return fmt.Sprintf("CharLit %q", n.CharVal)
	case ast.DoubleLit:
		return fmt.Sprintf("DoubleLit %g", n.DoubleVal)
	case ast.IntLit:
		return fmt.Sprintf("IntLit %d", n.IntVal)
	case ast.StrLit:
		return fmt.Sprintf("StrLit %q [LS%d]", n.StrVal, n.AssemblerID)
	case ast.NullLit:
		return "NullLit"
	default:
		return "Unknown"
	}
}

func paramList(params []ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	return strings.Join(parts, ", ")
}
