package main

// This is a parser for plain arithmetic expressions written in Go. It reads
// an expression and prints its fully parenthesized canonical form.

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/ltungv/arith/internal/arith"
)

var cli struct {
	File string   `short:"f" type:"existingfile" help:"Read the expression from a file."`
	Tree bool     `short:"t" help:"Dump the syntax tree instead of the canonical form."`
	Expr []string `arg:"" optional:"" help:"Expression to parse."`
}

func main() {
	ctx := kong.Parse(&cli)
	reporter := arith.NewSimpleReporter(os.Stderr)
	switch {
	case cli.File != "":
		bytes, err := ioutil.ReadFile(cli.File)
		ctx.FatalIfErrorf(err)
		run(string(bytes), reporter)
		exitIf(reporter.HadError(), 65)
	case len(cli.Expr) > 0:
		run(strings.Join(cli.Expr, " "), reporter)
		exitIf(reporter.HadError(), 65)
	default:
		runPrompt(reporter)
	}
}

func run(source string, reporter arith.Reporter) {
	lexer := arith.NewLexer([]rune(source))
	parser := arith.NewParser(lexer)
	expr, err := parser.Parse()
	if err != nil {
		reporter.Report(err)
		return
	}
	if cli.Tree {
		repr.Println(expr)
		return
	}
	fmt.Println(arith.Print(expr))
}

// Run the parser in REPL mode
func runPrompt(reporter arith.Reporter) {
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		run(s.Text(), reporter)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
