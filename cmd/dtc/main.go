/*
File    : go-mix/cmd/dtc/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for dtc, the DT compiler front-end
driver. It provides four subcommands:

	dtc compile <input> -o <output>   lex, parse, emit NASM
	dtc tokens <input>                lex and dump the token stream
	dtc ast <input>                   lex, parse, and pretty-print the AST
	dtc repl                          interactive line-at-a-time debugger

Semantic analysis and invoking an external assembler/linker remain out
of scope; compile only ever produces the .asm text.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/dtc/internal/diag"
	"github.com/akashmaji946/dtc/internal/emitter"
	"github.com/akashmaji946/dtc/internal/sourceio"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
	blueColor   = color.New(color.FgBlue)
)

const line = "----------------------------------------------------------------"
const version = "v0.1.0"
const author = "akashmaji(@iisc.ac.in)"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		cmdCompile(os.Args[2:])
	case "tokens":
		cmdTokens(os.Args[2:])
	case "ast":
		cmdAST(os.Args[2:])
	case "repl":
		cmdRepl()
	case "--help", "-h":
		usage()
	default:
		redColor.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	cyanColor.Println("dtc - the DT compiler front-end")
	cyanColor.Println("")
	yellowColor.Println("  dtc compile <input> -o <output>   lex, parse, emit NASM")
	yellowColor.Println("  dtc tokens <input>                dump the token stream")
	yellowColor.Println("  dtc ast <input>                   pretty-print the AST")
	yellowColor.Println("  dtc repl                           interactive debugger")
}

func cmdCompile(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	out := fs.String("o", "", "output path (the listing is written to <output>.asm)")
	fs.Parse(args)
	input := ""
	if fs.NArg() > 0 {
		// flag stops at the first non-flag argument, so parse what
		// follows the input path too ("<input> -o <output>").
		input = fs.Arg(0)
		fs.Parse(fs.Args()[1:])
	}
	if input == "" || fs.NArg() != 0 || *out == "" {
		redColor.Fprintln(os.Stderr, "usage: dtc compile <input> -o <output>")
		os.Exit(1)
	}
	asmPath := *out + ".asm"

	reg := diag.NewRegistry()
	fileIndex := reg.Register(input)
	_, root, err := sourceio.Compile(input, fileIndex, reg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	outFile, err := os.Create(asmPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "failed to create %s: %v\n", asmPath, err)
		os.Exit(1)
	}
	defer outFile.Close()

	funcCount, stringCount, err := emitter.EmitAssembly(outFile, root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	greenColor.Fprintf(os.Stdout, "compiled %d function(s), %d string(s) -> %s\n", funcCount, stringCount, asmPath)
}

func cmdTokens(args []string) {
	if len(args) != 1 {
		redColor.Fprintln(os.Stderr, "usage: dtc tokens <input>")
		os.Exit(1)
	}
	input := args[0]
	reg := diag.NewRegistry()
	fileIndex := reg.Register(input)
	tokens, _, err := sourceio.Compile(input, fileIndex, reg)
	if tokens == nil && err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	printTokens(os.Stdout, tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func cmdAST(args []string) {
	if len(args) != 1 {
		redColor.Fprintln(os.Stderr, "usage: dtc ast <input>")
		os.Exit(1)
	}
	input := args[0]
	reg := diag.NewRegistry()
	fileIndex := reg.Register(input)
	_, root, err := sourceio.Compile(input, fileIndex, reg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	printAST(os.Stdout, root)
}

func cmdRepl() {
	r := &Repl{
		Banner:  "dtc - interactive debugger",
		Version: version,
		Author:  author,
		Line:    line,
		Prompt:  "dtc >>> ",
	}
	r.Start(os.Stdin, os.Stdout)
}
