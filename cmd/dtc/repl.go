/*
File    : go-mix/cmd/dtc/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main - the dtc debug REPL. Unlike a language REPL, DT programs
are whole files, not standalone expressions, so this loop does not
evaluate anything: it lexes and parses each line in isolation and
prints the resulting tokens and AST shape, as a debugging aid for
exploring the front end interactively.
*/
package main

import (
	"io"
	"strings"

	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/dttoken"
	"github.com/akashmaji946/dtc/internal/lexer"
	"github.com/akashmaji946/dtc/internal/parser"
	"github.com/chzyer/readline"
)

// Repl is the interactive line-at-a-time debugger, grounded in the
// teacher's repl.Repl but driving the lexer/parser pair instead of an
// evaluator.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type a line of DT and press enter to see its tokens and AST shape.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	reg := diag.NewRegistry()
	fileIndex := reg.Register("<repl>")

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, fileIndex, reg)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, fileIndex uint32, reg *diag.Registry) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[PANIC] %v\n", recovered)
		}
	}()

	var tokens []dttoken.Token
	if err := lexer.Lex(line, 1, fileIndex, &tokens); err != nil {
		redColor.Fprintln(writer, err.Error())
		return
	}
	printTokens(writer, tokens)

	root, err := parser.Compile(tokens, reg)
	if err != nil {
		redColor.Fprintln(writer, err.Error())
		return
	}
	printAST(writer, root)
}
