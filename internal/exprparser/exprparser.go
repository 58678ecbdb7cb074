/*
File    : go-mix/internal/exprparser/exprparser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package exprparser reduces a flat token range into a binary/unary
// expression tree via a two-phase algorithm: flatten the range into an
// ast.Expr container holding provisional children, then run five
// fixed-order precedence sweeps that consume placeholders in place.
//
// This deliberately does not use a Pratt parser or a shunting-yard
// stack: the sweep structure (flatten once, then repeatedly scan and
// collapse a flat sibling list) is a direct, intentional port of the
// upstream algorithm's shape, preserved because two of its quirks are
// locked-in contract (see the doc comments on addSubIncDec and
// dttoken.IsCompOp) rather than bugs to design away.
package exprparser

import (
	"strconv"

	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/dttoken"
)

// Parse reduces tokens[start..end] (inclusive, end < start means an
// empty range) into a fully reduced ast.Expr node. On failure it
// returns a nil node and a *diag.Error; no partial tree is ever handed
// back to the caller.
func Parse(tokens []dttoken.Token, start, end int, reg *diag.Registry) (*ast.Node, error) {
	container := ast.New(ast.Expr, posAt(tokens, start, end), "")

	i := start
	for i <= end {
		tok := tokens[i]
		switch {
		case tok.Kind == dttoken.LPAREN:
			closeIdx, err := findMatchingParen(tokens, i, end, reg)
			if err != nil {
				return nil, err
			}
			inner, err := Parse(tokens, i+1, closeIdx-1, reg)
			if err != nil {
				return nil, err
			}
			container.Push(inner)
			i = closeIdx + 1
			continue

		case dttoken.IsLiteral(tok.Kind):
			container.Push(literalNode(tok))

		case dttoken.IsUnaryOp(tok.Kind):
			n := ast.New(ast.UnaryExpr, tok.Pos, tok.Raw)
			n.Op = tok.Kind
			container.Push(n)

		case dttoken.IsBinaryOp(tok.Kind) || dttoken.IsAssignOp(tok.Kind):
			n := ast.New(ast.BinExpr, tok.Pos, tok.Raw)
			n.Op = tok.Kind
			container.Push(n)

		case tok.Kind == dttoken.IDENTIFIER:
			n := ast.New(ast.Identifier, tok.Pos, tok.Raw)
			n.Name = tok.Raw
			container.Push(n)

		default:
			return nil, diag.New(reg, diag.Syntax, tok.Pos, tok.Raw)
		}
		i++
	}

	sw := &sweeper{tokens: tokens, end: end, reg: reg}
	if err := sw.unaryPrefix(container); err != nil {
		return nil, err
	}
	if err := sw.mulDivMod(container); err != nil {
		return nil, err
	}
	if err := sw.addSubIncDec(container); err != nil {
		return nil, err
	}
	if err := sw.binaryLeftToRight(container, dttoken.IsCompOp); err != nil {
		return nil, err
	}
	if err := sw.binaryLeftToRight(container, dttoken.IsAssignOp); err != nil {
		return nil, err
	}
	return container, nil
}

func posAt(tokens []dttoken.Token, start, end int) diag.Pos {
	if start <= end && start >= 0 && start < len(tokens) {
		return tokens[start].Pos
	}
	return diag.Pos{}
}

func findMatchingParen(tokens []dttoken.Token, openIdx, end int, reg *diag.Registry) (int, error) {
	depth := 0
	for j := openIdx; j <= end; j++ {
		switch tokens[j].Kind {
		case dttoken.LPAREN:
			depth++
		case dttoken.RPAREN:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, diag.New(reg, diag.UnclosedGroup, tokens[openIdx].Pos, tokens[openIdx].Raw)
}

// literalNode builds the literal payload node for tok. LIT_INT and
// LIT_DOUBLE parse errors are ignored rather than raised as a diagnostic
// here: a malformed lexeme (the lone '.' that lexNumber emits as
// LIT_INT, or a multi-dot run such as "1.2.3") leaves the numeric
// payload zero, and an out-of-range value keeps whatever strconv
// returns. The raw lexeme is preserved on the node either way.
func literalNode(tok dttoken.Token) *ast.Node {
	switch tok.Kind {
	case dttoken.LIT_INT:
		n := ast.New(ast.IntLit, tok.Pos, tok.Raw)
		n.IntVal, _ = strconv.ParseInt(tok.Raw, 10, 64)
		return n
	case dttoken.LIT_DOUBLE:
		n := ast.New(ast.DoubleLit, tok.Pos, tok.Raw)
		n.DoubleVal, _ = strconv.ParseFloat(tok.Raw, 64)
		return n
	case dttoken.LIT_CHAR:
		n := ast.New(ast.CharLit, tok.Pos, tok.Raw)
		if len(tok.Raw) > 0 {
			n.CharVal = tok.Raw[0]
		}
		return n
	case dttoken.LIT_BOOL:
		n := ast.New(ast.BoolLit, tok.Pos, tok.Raw)
		n.BoolVal = tok.Raw == "true"
		return n
	case dttoken.LIT_STR:
		n := ast.New(ast.StrLit, tok.Pos, tok.Raw)
		n.StrVal = tok.Raw
		return n
	default: // LIT_NULL
		return ast.New(ast.NullLit, tok.Pos, tok.Raw)
	}
}

// isPlaceholder reports whether n is still an unconsumed operator
// placeholder from the flatten phase.
func isPlaceholder(n *ast.Node) bool {
	return (n.Kind == ast.UnaryExpr || n.Kind == ast.BinExpr) && len(n.Children) == 0
}

func isOperatorSlot(n *ast.Node) bool {
	return n.Kind == ast.UnaryExpr || n.Kind == ast.BinExpr
}

func isMulDivMod(op dttoken.Kind) bool {
	return op == dttoken.OP_MUL || op == dttoken.OP_DIV || op == dttoken.OP_MOD
}

// sweeper carries the full token range context a sweep needs only to
// report a precise location when an operator runs off the end of the
// range looking for its right operand — e.g. "return 1 +;" reports the
// error at the ';' immediately following the expression range, not at
// the '+' itself, because that is the token a reader's eye lands on
// when the expression trails off.
type sweeper struct {
	tokens []dttoken.Token
	end    int
	reg    *diag.Registry
}

// missingRightOperand reports the token immediately after the parsed
// range (typically the statement terminator) when one exists, falling
// back to the placeholder operator's own position otherwise.
func (sw *sweeper) missingRightOperand(n *ast.Node) error {
	if sw.end+1 < len(sw.tokens) {
		next := sw.tokens[sw.end+1]
		return diag.New(sw.reg, diag.Syntax, next.Pos, next.Raw)
	}
	return diag.New(sw.reg, diag.Syntax, n.Pos, n.Raw)
}

func (sw *sweeper) missingLeftOperand(n *ast.Node) error {
	return diag.New(sw.reg, diag.Syntax, n.Pos, n.Raw)
}

// unaryPrefix binds every unary operator except OP_INC/OP_DEC to its
// operand. It scans right to left so that chained prefixes (e.g.
// "- -x") resolve inside-out: the innermost placeholder attaches its
// operand before the outer one looks at what is now a reduced sibling.
// A single left-to-right pass without this ordering would hand an outer
// unary an unresolved inner placeholder as its operand.
func (sw *sweeper) unaryPrefix(c *ast.Node) error {
	for i := c.Size() - 1; i >= 0; i-- {
		n := c.At(i)
		if n.Kind != ast.UnaryExpr || len(n.Children) != 0 {
			continue
		}
		if n.Op == dttoken.OP_INC || n.Op == dttoken.OP_DEC {
			continue
		}
		eligible := true
		if n.Op == dttoken.OP_ADD || n.Op == dttoken.OP_SUB {
			eligible = i == 0 || isOperatorSlot(c.At(i - 1))
		}
		if !eligible {
			continue
		}
		if i+1 >= c.Size() {
			return sw.missingRightOperand(n)
		}
		operand := c.At(i + 1)
		n.Push(operand)
		c.RemoveAt(i + 1)
	}
	return nil
}

// mulDivMod binds '*', '/', '%' to their immediate neighbors, left to
// right, rewinding the scan index by one after each collapse so the
// newly formed node's own neighbors are considered next.
func (sw *sweeper) mulDivMod(c *ast.Node) error {
	i := 0
	for i < c.Size() {
		n := c.At(i)
		if !isPlaceholder(n) || !isMulDivMod(n.Op) {
			i++
			continue
		}
		if i == 0 {
			return sw.missingLeftOperand(n)
		}
		if i+1 >= c.Size() {
			return sw.missingRightOperand(n)
		}
		left, right := c.At(i-1), c.At(i+1)
		n.Push(left)
		n.Push(right)
		c.RemoveAt(i + 1)
		c.RemoveAt(i - 1)
		i--
	}
	return nil
}

// addSubIncDec binds OP_INC/OP_DEC to an adjacent identifier and
// OP_ADD/OP_SUB left over from unaryPrefix as binary addition or
// subtraction.
//
// The increment/decrement rule prefers a previous-sibling identifier
// over a following one: if the previous sibling is an Identifier, it
// becomes the operand and IsPost is left false. This mirrors an
// inversion in the source: one would expect "prefer the identifier
// before the operator" to mean the operator appears *after* the
// identifier in the source, i.e. postfix, but the original does not set
// IsPost in that branch — only the next-identifier branch sets
// IsPost = true. That asymmetry is preserved deliberately rather than
// corrected, so that "i++" with nothing following binds via the
// previous-identifier branch and reports IsPost = false.
func (sw *sweeper) addSubIncDec(c *ast.Node) error {
	i := 0
	for i < c.Size() {
		n := c.At(i)

		if n.Kind == ast.UnaryExpr && len(n.Children) == 0 && (n.Op == dttoken.OP_INC || n.Op == dttoken.OP_DEC) {
			if i > 0 && c.At(i-1).Kind == ast.Identifier {
				operand := c.At(i - 1)
				n.IsPost = false
				n.Push(operand)
				c.RemoveAt(i - 1)
				i--
				continue
			}
			if i+1 < c.Size() && c.At(i+1).Kind == ast.Identifier {
				operand := c.At(i + 1)
				n.IsPost = true
				n.Push(operand)
				c.RemoveAt(i + 1)
				i++
				continue
			}
			return diag.New(sw.reg, diag.Syntax, n.Pos, n.Raw)
		}

		if isPlaceholder(n) && (n.Op == dttoken.OP_ADD || n.Op == dttoken.OP_SUB) {
			if i == 0 {
				return sw.missingLeftOperand(n)
			}
			if i+1 >= c.Size() {
				return sw.missingRightOperand(n)
			}
			left, right := c.At(i-1), c.At(i+1)
			n.Kind = ast.BinExpr
			n.Push(left)
			n.Push(right)
			c.RemoveAt(i + 1)
			c.RemoveAt(i - 1)
			i--
			continue
		}
		i++
	}
	return nil
}

// binaryLeftToRight binds every placeholder whose Op satisfies match,
// left to right with the same rewind discipline as mulDivMod. It backs
// both the comparison sweep (dttoken.IsCompOp) and the assignment sweep
// (dttoken.IsAssignOp).
func (sw *sweeper) binaryLeftToRight(c *ast.Node, match func(dttoken.Kind) bool) error {
	i := 0
	for i < c.Size() {
		n := c.At(i)
		if !isPlaceholder(n) || !match(n.Op) {
			i++
			continue
		}
		if i == 0 {
			return sw.missingLeftOperand(n)
		}
		if i+1 >= c.Size() {
			return sw.missingRightOperand(n)
		}
		left, right := c.At(i-1), c.At(i+1)
		n.Push(left)
		n.Push(right)
		c.RemoveAt(i + 1)
		c.RemoveAt(i - 1)
		i--
	}
	return nil
}
