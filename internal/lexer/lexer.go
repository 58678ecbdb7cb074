/*
File    : go-mix/internal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer implements the DT scanner: a single source line in,
// zero or more dttoken.Token appended to the caller's vector out. The
// lexer has no notion of "file" beyond the index it stamps onto every
// token's position, and no newline handling beyond what its caller
// (internal/sourceio) does by calling Lex once per physical line.
package lexer

import (
	"strings"
	"unicode"

	"github.com/akashmaji946/dtc/internal/charesc"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/dttoken"
)

// Lex scans line (with any trailing '\r' already stripped by the
// caller) and appends every token it finds to *tokens. lineNum is the
// 1-based physical line number; fileIndex identifies the source file in
// the diagnostics registry. Lex returns the first diagnostic raised by
// an unterminated string or character literal; no other condition is
// diagnosable at this layer.
func Lex(line string, lineNum uint32, fileIndex uint32, tokens *[]dttoken.Token) error {
	n := len(line)
	for i := 0; i < n; i++ {
		c := line[i]

		switch {
		case isSpace(c):
			continue

		case isDigit(c) || c == '.':
			i = lexNumber(line, i, lineNum, fileIndex, tokens)

		case isAlpha(c):
			if kind, consumed, ok := matchKeyword(line, i); ok {
				appendToken(tokens, kind, line[i:i+consumed], lineNum, uint32(i+1), fileIndex)
				i += consumed - 1
			} else {
				i = lexIdentifier(line, i, lineNum, fileIndex, tokens)
			}

		case c == '"':
			next, err := lexString(line, i, lineNum, fileIndex, tokens)
			if err != nil {
				return err
			}
			i = next

		case c == '\'':
			next, err := lexChar(line, i, lineNum, fileIndex, tokens)
			if err != nil {
				return err
			}
			i = next

		case c == '#':
			// Comment: discard the remainder of the line. No COMMENT
			// token is ever emitted.
			return nil

		default:
			if next, ok := lexOperator(line, i, lineNum, fileIndex, tokens); ok {
				i = next
			} else {
				i = lexIdentifier(line, i, lineNum, fileIndex, tokens)
			}
		}
	}
	return nil
}

func isSpace(c byte) bool { return unicode.IsSpace(rune(c)) }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return unicode.IsLetter(rune(c)) }
func isIdentCont(c byte) bool {
	return isDigit(c) || isAlpha(c) || c == '_' || c == '$'
}

func appendToken(tokens *[]dttoken.Token, kind dttoken.Kind, raw string, line, col, fileIndex uint32) {
	*tokens = append(*tokens, dttoken.Token{
		Kind: kind,
		Raw:  raw,
		Pos:  diag.Pos{Line: line, Col: col, FileIndex: fileIndex},
	})
}

// lexNumber consumes the maximal [0-9.]+ run starting at i, including
// the degenerate case of a lone '.' (LIT_INT with raw "."), per the
// lexer's documented ambiguity with the DOT operator. It returns the
// index of the last character consumed.
func lexNumber(line string, i int, lineNum, fileIndex uint32, tokens *[]dttoken.Token) int {
	start := i
	sawDot := false
	for i < len(line) && (isDigit(line[i]) || line[i] == '.') {
		if line[i] == '.' {
			sawDot = true
		}
		i++
	}
	raw := line[start:i]
	kind := dttoken.LIT_INT
	if sawDot && raw != "." {
		kind = dttoken.LIT_DOUBLE
	}
	appendToken(tokens, kind, raw, lineNum, uint32(start+1), fileIndex)
	return i - 1
}

// matchKeyword attempts to match a keyword exactly at position i. It
// reports the kind and the number of bytes consumed on success. No
// trailing word-boundary check is performed: the keyword substring only
// has to begin exactly at i, matching the scanner's documented (and
// slightly surprising) behavior.
func matchKeyword(line string, i int) (dttoken.Kind, int, bool) {
	for word, kind := range dttoken.Keywords {
		if strings.HasPrefix(line[i:], word) {
			return kind, len(word), true
		}
	}
	return 0, 0, false
}

// lexIdentifier consumes the maximal run of [A-Za-z0-9_$] starting at i
// and emits an IDENTIFIER token. It returns the index of the last
// character consumed.
func lexIdentifier(line string, i int, lineNum, fileIndex uint32, tokens *[]dttoken.Token) int {
	start := i
	for i < len(line) && isIdentCont(line[i]) {
		i++
	}
	if i == start {
		// Reached when Lex falls back here from an unmatched operator
		// byte (e.g. '@') that is not an identifier byte: that single
		// byte is emitted as the IDENTIFIER, so the scan always advances.
		i++
	}
	appendToken(tokens, dttoken.IDENTIFIER, line[start:i], lineNum, uint32(start+1), fileIndex)
	return i - 1
}

// lexString scans a "..." literal starting at the opening quote i. Each
// backslash copies the following character verbatim into raw without
// decoding it (decoding is deferred, unlike character literals). It
// returns the index of the closing quote, or a Syntax error at the
// opening quote if the line ends first.
func lexString(line string, i int, lineNum, fileIndex uint32, tokens *[]dttoken.Token) (int, error) {
	start := i
	j := i + 1
	for j < len(line) && line[j] != '"' {
		if line[j] == '\\' && j+1 < len(line) {
			j += 2
			continue
		}
		j++
	}
	if j >= len(line) {
		pos := diag.Pos{Line: lineNum, Col: uint32(start + 1), FileIndex: fileIndex}
		return 0, &diag.Error{Kind: diag.Syntax, Pos: pos, Raw: line[start:]}
	}
	raw := line[start+1 : j]
	appendToken(tokens, dttoken.LIT_STR, raw, lineNum, uint32(start+1), fileIndex)
	return j, nil
}

// lexChar scans a 'x' or '\x' literal starting at the opening quote i.
// The single code point (after C1 escape decoding when backslash-led)
// becomes raw. It returns the index of the closing quote, or a Syntax
// error at the opening quote if the literal is malformed or unclosed.
func lexChar(line string, i int, lineNum, fileIndex uint32, tokens *[]dttoken.Token) (int, error) {
	start := i
	pos := diag.Pos{Line: lineNum, Col: uint32(start + 1), FileIndex: fileIndex}
	unclosed := func() (int, error) {
		return 0, &diag.Error{Kind: diag.Syntax, Pos: pos, Raw: line[start:]}
	}

	if i+1 >= len(line) {
		return unclosed()
	}
	var decoded byte
	var closeIdx int
	if line[i+1] == '\\' {
		if i+3 >= len(line) || line[i+3] != '\'' {
			return unclosed()
		}
		decoded = charesc.Decode(line[i+2])
		closeIdx = i + 3
	} else {
		if i+2 >= len(line) || line[i+2] != '\'' {
			return unclosed()
		}
		decoded = line[i+1]
		closeIdx = i + 2
	}
	appendToken(tokens, dttoken.LIT_CHAR, string(decoded), lineNum, uint32(start+1), fileIndex)
	return closeIdx, nil
}

type opEntry struct {
	text string
	kind dttoken.Kind
}

// opTable lists, per leading byte, the candidate spellings in
// longest-match-first order.
var opTable = map[byte][]opEntry{
	';': {{";", dttoken.SEMICOLON}},
	'(': {{"(", dttoken.LPAREN}},
	')': {{")", dttoken.RPAREN}},
	'[': {{"[", dttoken.LBRACKET}},
	']': {{"]", dttoken.RBRACKET}},
	'{': {{"{", dttoken.LBRACE}},
	'}': {{"}", dttoken.RBRACE}},
	',': {{",", dttoken.COMMA}},
	'<': {{"<<=", dttoken.ASSIGN_LSHIFT}, {"<<", dttoken.OP_LSHIFT}, {"<=", dttoken.OP_LTE}, {"<", dttoken.OP_LT}},
	'>': {{">>=", dttoken.ASSIGN_RSHIFT}, {">>", dttoken.OP_RSHIFT}, {">=", dttoken.OP_GTE}, {">", dttoken.OP_GT}},
	'=': {{"==", dttoken.OP_EQ}, {"=", dttoken.ASSIGN}},
	'!': {{"!=", dttoken.OP_NEQ}, {"!", dttoken.OP_BOOL_NOT}},
	'+': {{"++", dttoken.OP_INC}, {"+=", dttoken.ASSIGN_ADD}, {"+", dttoken.OP_ADD}},
	'-': {{"--", dttoken.OP_DEC}, {"-=", dttoken.ASSIGN_SUB}, {"-", dttoken.OP_SUB}},
	'*': {{"*=", dttoken.ASSIGN_MUL}, {"*", dttoken.OP_MUL}},
	'/': {{"/=", dttoken.ASSIGN_DIV}, {"/", dttoken.OP_DIV}},
	'%': {{"%=", dttoken.ASSIGN_MOD}, {"%", dttoken.OP_MOD}},
	'&': {{"&&", dttoken.OP_BOOL_AND}, {"&=", dttoken.ASSIGN_BIT_AND}, {"&", dttoken.OP_BIT_AND}},
	'|': {{"||", dttoken.OP_BOOL_OR}, {"|=", dttoken.ASSIGN_BIT_OR}, {"|", dttoken.OP_BIT_OR}},
	'^': {{"^=", dttoken.ASSIGN_BIT_XOR}, {"^", dttoken.OP_BIT_XOR}},
	'~': {{"~=", dttoken.ASSIGN_BIT_NOT}, {"~", dttoken.OP_BIT_NOT}},
}

// lexOperator attempts the longest matching spelling at i from opTable.
// It returns the index of the last character consumed and true on a
// match, or false if line[i] starts no recognized operator/punctuation.
func lexOperator(line string, i int, lineNum, fileIndex uint32, tokens *[]dttoken.Token) (int, bool) {
	candidates, ok := opTable[line[i]]
	if !ok {
		return 0, false
	}
	for _, cand := range candidates {
		if strings.HasPrefix(line[i:], cand.text) {
			appendToken(tokens, cand.kind, cand.text, lineNum, uint32(i+1), fileIndex)
			return i + len(cand.text) - 1, true
		}
	}
	return 0, false
}
