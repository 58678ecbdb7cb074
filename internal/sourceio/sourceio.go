/*
File    : go-mix/internal/sourceio/sourceio.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package sourceio is the thin line-reading driver that feeds a DT
// source file through the lexer and statement parser, mirroring
// compileSrc's steps 1–2 (tokenize, then build the AST) and stopping
// before code generation, which belongs to internal/emitter and the
// cmd/dtc driver.
package sourceio

import (
	"bufio"
	"os"
	"strings"

	"github.com/akashmaji946/dtc/internal/ast"
	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/dttoken"
	"github.com/akashmaji946/dtc/internal/lexer"
	"github.com/akashmaji946/dtc/internal/parser"
)

// ReadLines reads path and returns its physical lines with any trailing
// '\r' stripped, matching compileSrc's carriage-return handling for
// files checked out with CRLF line endings.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Compile reads path, lexes every line in order stamping each token
// with fileIndex (which the caller has already obtained from
// reg.Register), and hands the resulting token stream to
// internal/parser. It returns the tokens alongside the AST so callers
// (cmd/dtc tokens/ast) can inspect either without re-lexing.
func Compile(path string, fileIndex uint32, reg *diag.Registry) ([]dttoken.Token, *ast.Node, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, nil, err
	}

	var tokens []dttoken.Token
	for i, line := range lines {
		if err := lexer.Lex(line, uint32(i+1), fileIndex, &tokens); err != nil {
			return nil, nil, err
		}
	}

	root, err := parser.Compile(tokens, reg)
	if err != nil {
		return tokens, nil, err
	}
	return tokens, root, nil
}
