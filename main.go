package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"

	"go.creack.net/pseudocu/interpreter"
	"go.creack.net/pseudocu/lexer"
	"go.creack.net/pseudocu/parser"
)

const appName = "pseudocu"

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole command and returns the process exit code:
// 0 on success, 1 when the program fails, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, exitCode, ok := parseConfig(args, stderr)
	if !ok {
		return exitCode
	}
	if cfg.repl {
		return runREPL(cfg, stdout, stderr)
	}

	src, err := os.ReadFile(cfg.path)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", appName, err)
		return 1
	}
	return execute(cfg, string(src), stdout, stderr)
}

func execute(cfg config, src string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, appName+": ", 0)

	if cfg.tokens {
		tokens, err := lexer.Tokenize(src)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok)
		}
		return 0
	}

	prog, err := parser.ParseSource(src)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.debug {
		logger.Printf("parsed %d statements: %# v", len(prog.Statements), pretty.Formatter(prog))
	}
	if cfg.ast {
		fmt.Fprint(stdout, prog.Dump())
		return 0
	}

	ip := interpreter.New()
	if err := ip.Run(prog); err != nil {
		if cfg.debug {
			logger.Printf("bindings before failure: %v", ip.Bindings())
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := writeBindings(stdout, cfg.format, ip.Bindings()); err != nil {
		logger.Printf("write bindings: %s.", err)
		return 1
	}
	return 0
}
