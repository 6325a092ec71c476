package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"go.creack.net/pseudocu/ast"
	"go.creack.net/pseudocu/interpreter"
	"go.creack.net/pseudocu/lexer"
	"go.creack.net/pseudocu/parser"
)

const prompt = ">> "

const replHelp = `Each line is a program run against the same variables.
Commands:
  :vars          print the variables
  :tokens <src>  print the tokens of src
  :ast <src>     print the parsed form of src
  :reset         forget every variable
  :quit          exit
`

// session holds the state of one REPL, independent of the terminal.
type session struct {
	ip     *interpreter.Interpreter
	stdout io.Writer
	stderr io.Writer
}

func newSession(stdout, stderr io.Writer) *session {
	return &session{
		ip:     interpreter.New(),
		stdout: stdout,
		stderr: stderr,
	}
}

// eval handles one line of input. It returns true when the session should end.
func (s *session) eval(input string) bool {
	input = strings.TrimSpace(input)
	cmd, arg, _ := strings.Cut(input, " ")

	switch cmd {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.stdout, replHelp)
	case ":vars":
		if err := writeBindings(s.stdout, formatText, s.ip.Bindings()); err != nil {
			fmt.Fprintln(s.stderr, err)
		}
	case ":reset":
		s.ip = interpreter.New()
	case ":tokens":
		tokens, err := lexer.Tokenize(arg)
		if err != nil {
			fmt.Fprintln(s.stderr, err)
			return false
		}
		for _, tok := range tokens {
			fmt.Fprintln(s.stdout, tok)
		}
	case ":ast":
		prog, err := parser.ParseSource(arg)
		if err != nil {
			fmt.Fprintln(s.stderr, err)
			return false
		}
		fmt.Fprint(s.stdout, prog.Dump())
	default:
		if strings.HasPrefix(cmd, ":") {
			fmt.Fprintf(s.stderr, "unknown command %q, try :help\n", cmd)
			return false
		}
		s.run(input)
	}
	return false
}

// run executes a line. When the line ends with an expression statement, its value is printed.
func (s *session) run(input string) {
	prog, err := parser.ParseSource(input)
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return
	}

	var last ast.Expr
	if n := len(prog.Statements); n > 0 {
		if stmt, ok := prog.Statements[n-1].(ast.ExpressionStmt); ok {
			last = stmt.Expression
			prog.Statements = prog.Statements[:n-1]
		}
	}

	if err := s.ip.Run(prog); err != nil {
		fmt.Fprintln(s.stderr, err)
		return
	}
	if last == nil {
		return
	}
	v, err := s.ip.Eval(last)
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return
	}
	fmt.Fprintln(s.stdout, v)
}

func runREPL(cfg config, stdout, stderr io.Writer) int {
	logger := log.New(stderr, appName+": ", 0)

	line := liner.NewLiner()
	defer func() { _ = line.Close() }() // Best effort.
	line.SetCtrlCAborts(true)

	if cfg.history != "" {
		if f, err := os.Open(cfg.history); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				logger.Printf("read history %q: %s.", cfg.history, err)
			}
			_ = f.Close()
		}
		defer saveHistory(line, cfg.history, logger)
	}

	fmt.Fprintf(stdout, "%s REPL, :help for commands, Ctrl+D exits.\n", appName)
	sess := newSession(stdout, stderr)
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(stdout)
				return 0
			}
			logger.Printf("prompt: %s.", err)
			return 1
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if sess.eval(input) {
			return 0
		}
	}
}

func saveHistory(line *liner.State, path string, logger *log.Logger) {
	f, err := os.Create(path)
	if err != nil {
		logger.Printf("save history %q: %s.", path, err)
		return
	}
	defer func() { _ = f.Close() }() // Best effort.
	if _, err := line.WriteHistory(f); err != nil {
		logger.Printf("save history %q: %s.", path, err)
	}
}
