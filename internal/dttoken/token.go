/*
File    : go-mix/internal/dttoken/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package dttoken defines the closed token-kind enumeration for DT, the
// Token value every later stage operates on, and the classification
// predicates the expression and statement parsers dispatch on.
package dttoken

import "github.com/akashmaji946/dtc/internal/diag"

// Kind is the closed enumeration of token categories the lexer may
// produce. COMMENT is reserved in the set but never emitted: the lexer
// consumes '#...EOL' inline.
type Kind int

const (
	// Punctuation
	SEMICOLON Kind = iota
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	DOT
	COMMA

	// Keywords
	RETURN
	IF
	ELIF
	ELSE
	WHILE
	FOR

	// Primitive type names
	TYPE_BOOL
	TYPE_CHAR
	TYPE_DOUBLE
	TYPE_INT
	TYPE_STR

	// Literals
	LIT_BOOL
	LIT_CHAR
	LIT_DOUBLE
	LIT_INT
	LIT_NULL
	LIT_STR

	// Identifier
	IDENTIFIER

	// Comparison / bitwise-used-as-comparison (see IsCompOp doc)
	OP_LT
	OP_LTE
	OP_GT
	OP_GTE
	OP_EQ
	OP_NEQ
	OP_BIT_OR
	OP_BIT_AND
	OP_BIT_XOR
	OP_BOOL_OR
	OP_BOOL_AND

	// Shifts
	OP_LSHIFT
	OP_RSHIFT

	// Arithmetic
	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV
	OP_MOD

	// Unary-only
	OP_INC
	OP_DEC
	OP_BIT_NOT
	OP_BOOL_NOT

	// Assignments
	ASSIGN
	ASSIGN_ADD
	ASSIGN_SUB
	ASSIGN_MUL
	ASSIGN_DIV
	ASSIGN_MOD
	ASSIGN_LSHIFT
	ASSIGN_RSHIFT
	ASSIGN_BIT_OR
	ASSIGN_BIT_AND
	ASSIGN_BIT_NOT
	ASSIGN_BIT_XOR

	// Reserved, never emitted by the lexer.
	COMMENT
)

var kindNames = map[Kind]string{
	SEMICOLON: "SEMICOLON", LPAREN: "LPAREN", RPAREN: "RPAREN",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET", LBRACE: "LBRACE", RBRACE: "RBRACE",
	DOT: "DOT", COMMA: "COMMA",
	RETURN: "RETURN", IF: "IF", ELIF: "ELIF", ELSE: "ELSE", WHILE: "WHILE", FOR: "FOR",
	TYPE_BOOL: "TYPE_BOOL", TYPE_CHAR: "TYPE_CHAR", TYPE_DOUBLE: "TYPE_DOUBLE",
	TYPE_INT: "TYPE_INT", TYPE_STR: "TYPE_STR",
	LIT_BOOL: "LIT_BOOL", LIT_CHAR: "LIT_CHAR", LIT_DOUBLE: "LIT_DOUBLE",
	LIT_INT: "LIT_INT", LIT_NULL: "LIT_NULL", LIT_STR: "LIT_STR",
	IDENTIFIER: "IDENTIFIER",
	OP_LT:      "OP_LT", OP_LTE: "OP_LTE", OP_GT: "OP_GT", OP_GTE: "OP_GTE",
	OP_EQ: "OP_EQ", OP_NEQ: "OP_NEQ",
	OP_BIT_OR: "OP_BIT_OR", OP_BIT_AND: "OP_BIT_AND", OP_BIT_XOR: "OP_BIT_XOR",
	OP_BOOL_OR: "OP_BOOL_OR", OP_BOOL_AND: "OP_BOOL_AND",
	OP_LSHIFT: "OP_LSHIFT", OP_RSHIFT: "OP_RSHIFT",
	OP_ADD: "OP_ADD", OP_SUB: "OP_SUB", OP_MUL: "OP_MUL", OP_DIV: "OP_DIV", OP_MOD: "OP_MOD",
	OP_INC: "OP_INC", OP_DEC: "OP_DEC", OP_BIT_NOT: "OP_BIT_NOT", OP_BOOL_NOT: "OP_BOOL_NOT",
	ASSIGN: "ASSIGN", ASSIGN_ADD: "ASSIGN_ADD", ASSIGN_SUB: "ASSIGN_SUB",
	ASSIGN_MUL: "ASSIGN_MUL", ASSIGN_DIV: "ASSIGN_DIV", ASSIGN_MOD: "ASSIGN_MOD",
	ASSIGN_LSHIFT: "ASSIGN_LSHIFT", ASSIGN_RSHIFT: "ASSIGN_RSHIFT",
	ASSIGN_BIT_OR: "ASSIGN_BIT_OR", ASSIGN_BIT_AND: "ASSIGN_BIT_AND",
	ASSIGN_BIT_NOT: "ASSIGN_BIT_NOT", ASSIGN_BIT_XOR: "ASSIGN_BIT_XOR",
	COMMENT: "COMMENT",
}

// String renders the Kind by its symbolic name, used in token dumps and
// test failure messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "INVALID"
}

// Keywords maps the exact keyword spelling to its Kind. A keyword only
// matches when its literal substring begins exactly at the scan
// position; this table is consulted by the lexer, not by the parser.
var Keywords = map[string]Kind{
	"bool":   TYPE_BOOL,
	"char":   TYPE_CHAR,
	"double": TYPE_DOUBLE,
	"elif":   ELIF,
	"else":   ELSE,
	"for":    FOR,
	"false":  LIT_BOOL,
	"if":     IF,
	"int":    TYPE_INT,
	"null":   LIT_NULL,
	"return": RETURN,
	"string": TYPE_STR,
	"true":   LIT_BOOL,
	"while":  WHILE,
}

// Token is one lexeme: its kind, the original source text (used for
// literal parsing and error messages), and its source position.
type Token struct {
	Kind Kind
	Raw  string
	Pos  diag.Pos
}

// IsPrimitiveType reports whether k is one of the five TYPE_* kinds.
func IsPrimitiveType(k Kind) bool {
	switch k {
	case TYPE_BOOL, TYPE_CHAR, TYPE_DOUBLE, TYPE_INT, TYPE_STR:
		return true
	}
	return false
}

// IsLiteral reports whether k is one of the six LIT_* kinds.
func IsLiteral(k Kind) bool {
	switch k {
	case LIT_BOOL, LIT_CHAR, LIT_DOUBLE, LIT_INT, LIT_NULL, LIT_STR:
		return true
	}
	return false
}

// IsUnaryOp reports whether k may appear as a unary operator. OP_ADD and
// OP_SUB are included: in unary position they negate/assert, in binary
// position they add/subtract (see the expression parser's sweep 1 rule
// for how the two are told apart).
func IsUnaryOp(k Kind) bool {
	switch k {
	case OP_BOOL_NOT, OP_ADD, OP_SUB, OP_BIT_NOT, OP_INC, OP_DEC:
		return true
	}
	return false
}

// IsBinaryOp reports whether k is a comparison, shift, or arithmetic
// operator eligible for binary placement during flattening.
func IsBinaryOp(k Kind) bool {
	return IsCompOp(k) || k == OP_LSHIFT || k == OP_RSHIFT ||
		k == OP_ADD || k == OP_SUB || k == OP_MUL || k == OP_DIV || k == OP_MOD
}

// IsCompOp reports whether k is bound by the comparison sweep.
//
// This also covers the bitwise (|, &, ^) and boolean (||, &&) operators:
// the source classifies them alongside comparisons for precedence
// purposes, merging logical and bitwise precedence. That is almost
// certainly unintended upstream, but changing it would be a language
// semantics change outside this front-end's charter, so the
// classification is preserved exactly.
func IsCompOp(k Kind) bool {
	switch k {
	case OP_LT, OP_LTE, OP_GT, OP_GTE, OP_EQ, OP_NEQ,
		OP_BIT_OR, OP_BIT_AND, OP_BIT_XOR, OP_BOOL_OR, OP_BOOL_AND:
		return true
	}
	return false
}

// IsAssignOp reports whether k is one of the ASSIGN* kinds.
func IsAssignOp(k Kind) bool {
	switch k {
	case ASSIGN, ASSIGN_ADD, ASSIGN_SUB, ASSIGN_MUL, ASSIGN_DIV, ASSIGN_MOD,
		ASSIGN_LSHIFT, ASSIGN_RSHIFT, ASSIGN_BIT_OR, ASSIGN_BIT_AND,
		ASSIGN_BIT_NOT, ASSIGN_BIT_XOR:
		return true
	}
	return false
}
