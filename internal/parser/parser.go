/*
File    : go-mix/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements the DT statement parser (C5): it walks a
// token range top to bottom, recognizing function definitions, variable
// declarations, and return statements, and delegates every expression
// subrange to internal/exprparser. It is the only component that drives
// exprparser.Parse; nothing else in the pipeline calls it directly.
package parser

import (
	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/dttoken"
	"github.com/akashmaji946/dtc/internal/exprparser"
)

// Compile parses the complete token vector into a Root AST node. On any
// diagnostic, it returns a nil node — the partially built tree is
// discarded along with the error, never handed back to the caller.
func Compile(tokens []dttoken.Token, reg *diag.Registry) (*ast.Node, error) {
	root := ast.New(ast.Root, diag.Pos{}, "")
	if err := Parse(tokens, 0, len(tokens)-1, root, reg); err != nil {
		return nil, err
	}
	return root, nil
}

// Parse walks tokens[start..end], appending every top-level node it
// recognizes to parent. An empty range is a no-op (the comment-only
// line scenario).
func Parse(tokens []dttoken.Token, start, end int, parent *ast.Node, reg *diag.Registry) error {
	i := start
	for i <= end {
		tok := tokens[i]
		switch {
		case dttoken.IsPrimitiveType(tok.Kind):
			next, err := parseTypedDecl(tokens, i, end, parent, reg)
			if err != nil {
				return err
			}
			i = next

		case tok.Kind == dttoken.RETURN:
			next, err := parseReturn(tokens, i, end, parent, reg)
			if err != nil {
				return err
			}
			i = next

		default:
			// Redesigned per the documented open question: a leading
			// token that is neither a primitive type nor RETURN is an
			// explicit Syntax error rather than silently ignored.
			return diag.New(reg, diag.Syntax, tok.Pos, tok.Raw)
		}
	}
	return nil
}

// parseTypedDecl handles the "PrimitiveType IDENTIFIER ..." dispatch:
// a following '(' means a function definition, a following '=' means a
// variable declaration. It returns the index just past the statement.
func parseTypedDecl(tokens []dttoken.Token, i, end int, parent *ast.Node, reg *diag.Registry) (int, error) {
	if i+1 > end || tokens[i+1].Kind != dttoken.IDENTIFIER {
		return 0, syntaxAtOrLast(tokens, i+1, end, reg)
	}
	nameTok := tokens[i+1]

	if i+2 > end {
		return 0, diag.New(reg, diag.Syntax, tokens[end].Pos, tokens[end].Raw)
	}
	switch tokens[i+2].Kind {
	case dttoken.LPAREN:
		return parseFunction(tokens, i, nameTok, i+2, end, parent, reg)
	case dttoken.ASSIGN:
		return parseVariable(tokens, i, nameTok, i+2, end, parent, reg)
	default:
		return 0, diag.New(reg, diag.Syntax, tokens[i+2].Pos, tokens[i+2].Raw)
	}
}

// parseFunction parses a function definition whose signature opens at
// parenIdx. Parameters appear between the parens as (type, name, comma)
// triples with no trailing comma; the body is parsed recursively by
// Parse into the new Function node.
func parseFunction(tokens []dttoken.Token, typeIdx int, nameTok dttoken.Token, parenIdx, end int, parent *ast.Node, reg *diag.Registry) (int, error) {
	closeParen, err := findMatching(tokens, parenIdx, end, dttoken.LPAREN, dttoken.RPAREN, reg)
	if err != nil {
		return 0, err
	}

	var params []ast.Param
	j := parenIdx + 1
	for j <= closeParen-1 {
		if !dttoken.IsPrimitiveType(tokens[j].Kind) {
			return 0, diag.New(reg, diag.Syntax, tokens[j].Pos, tokens[j].Raw)
		}
		paramType := tokens[j].Kind
		if j+1 > closeParen-1 || tokens[j+1].Kind != dttoken.IDENTIFIER {
			return 0, syntaxAtOrLast(tokens, j+1, closeParen-1, reg)
		}
		params = append(params, ast.Param{Name: tokens[j+1].Raw, Type: paramType})
		j += 2
		if j <= closeParen-1 {
			if tokens[j].Kind != dttoken.COMMA {
				return 0, diag.New(reg, diag.Syntax, tokens[j].Pos, tokens[j].Raw)
			}
			j++
		}
	}

	if closeParen+1 > end || tokens[closeParen+1].Kind != dttoken.LBRACE {
		return 0, syntaxAtOrLast(tokens, closeParen+1, end, reg)
	}
	braceIdx := closeParen + 1
	closeBrace, err := findMatching(tokens, braceIdx, end, dttoken.LBRACE, dttoken.RBRACE, reg)
	if err != nil {
		return 0, err
	}

	fn := ast.New(ast.Function, tokens[typeIdx].Pos, nameTok.Raw)
	fn.Name = nameTok.Raw
	fn.ReturnType = tokens[typeIdx].Kind
	fn.Params = params
	if err := Parse(tokens, braceIdx+1, closeBrace-1, fn, reg); err != nil {
		return 0, err
	}
	parent.Push(fn)
	return closeBrace + 1, nil
}

// parseVariable parses a "Type name = <expr>;" declaration.
func parseVariable(tokens []dttoken.Token, typeIdx int, nameTok dttoken.Token, assignIdx, end int, parent *ast.Node, reg *diag.Registry) (int, error) {
	semiIdx, err := findSemicolon(tokens, assignIdx+1, end, reg)
	if err != nil {
		return 0, err
	}
	initExpr, err := exprparser.Parse(tokens, assignIdx+1, semiIdx-1, reg)
	if err != nil {
		return 0, err
	}
	v := ast.New(ast.Variable, tokens[typeIdx].Pos, nameTok.Raw)
	v.Name = nameTok.Raw
	v.Type = tokens[typeIdx].Kind
	v.Push(initExpr)
	parent.Push(v)
	return semiIdx + 1, nil
}

// parseReturn parses a "return [<expr>];" statement. An empty
// expression range is permitted and yields a Return node with no child.
func parseReturn(tokens []dttoken.Token, returnIdx, end int, parent *ast.Node, reg *diag.Registry) (int, error) {
	semiIdx, err := findSemicolon(tokens, returnIdx+1, end, reg)
	if err != nil {
		return 0, err
	}
	ret := ast.New(ast.Return, tokens[returnIdx].Pos, "return")
	if returnIdx+1 <= semiIdx-1 {
		expr, err := exprparser.Parse(tokens, returnIdx+1, semiIdx-1, reg)
		if err != nil {
			return 0, err
		}
		ret.Push(expr)
	}
	parent.Push(ret)
	return semiIdx + 1, nil
}

// findMatching locates the closer matching the opener at openIdx by
// nesting count within [openIdx, end]. It raises UnclosedGroup at the
// opener when no match exists in range.
func findMatching(tokens []dttoken.Token, openIdx, end int, open, closeKind dttoken.Kind, reg *diag.Registry) (int, error) {
	depth := 0
	for j := openIdx; j <= end; j++ {
		switch tokens[j].Kind {
		case open:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, diag.New(reg, diag.UnclosedGroup, tokens[openIdx].Pos, tokens[openIdx].Raw)
}

// findSemicolon locates the first SEMICOLON at or after from, within
// [from, end]; grouping tokens are not tracked. A missing terminator raises Syntax at the last
// token in range.
func findSemicolon(tokens []dttoken.Token, from, end int, reg *diag.Registry) (int, error) {
	for j := from; j <= end; j++ {
		if tokens[j].Kind == dttoken.SEMICOLON {
			return j, nil
		}
	}
	return 0, diag.New(reg, diag.Syntax, tokens[end].Pos, tokens[end].Raw)
}

// syntaxAtOrLast reports a Syntax error at tokens[idx] when idx is
// still within [idx, limit], or at tokens[limit] (the last token
// actually available) when the expected token is missing entirely.
func syntaxAtOrLast(tokens []dttoken.Token, idx, limit int, reg *diag.Registry) error {
	if idx <= limit {
		return diag.New(reg, diag.Syntax, tokens[idx].Pos, tokens[idx].Raw)
	}
	return diag.New(reg, diag.Syntax, tokens[limit].Pos, tokens[limit].Raw)
}
