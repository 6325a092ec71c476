package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

const historyFile = ".pseudocu_history"

type config struct {
	path    string // Source file, empty in REPL mode.
	format  string
	tokens  bool
	ast     bool
	debug   bool
	repl    bool
	history string
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func defaultHistoryPath() string {
	if v := os.Getenv("PSEUDOCU_HISTORY"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// parseConfig parses the command line. When ok is false, the caller must exit with exitCode.
func parseConfig(args []string, stderr io.Writer) (cfg config, exitCode int, ok bool) {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags] <file>\n  %s -repl\n\nFlags:\n", appName, appName)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.format, "format", envOr("PSEUDOCU_FORMAT", formatText), "output format of the final bindings: text, json or yaml (env PSEUDOCU_FORMAT)")
	fs.BoolVar(&cfg.tokens, "tokens", false, "print the tokens and exit")
	fs.BoolVar(&cfg.ast, "ast", false, "print the parsed program and exit")
	fs.BoolVar(&cfg.debug, "debug", false, "log the syntax tree")
	fs.BoolVar(&cfg.repl, "repl", false, "start an interactive session")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, 0, false
		}
		return cfg, 2, false
	}

	if !slices.Contains(formats, cfg.format) {
		fmt.Fprintf(stderr, "%s: unknown format %q\n", appName, cfg.format)
		return cfg, 2, false
	}

	if cfg.repl {
		if fs.NArg() != 0 {
			fmt.Fprintf(stderr, "%s: -repl takes no file\n", appName)
			return cfg, 2, false
		}
		cfg.history = defaultHistoryPath()
		return cfg, 0, true
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, 2, false
	}
	cfg.path = fs.Arg(0)
	return cfg, 0, true
}
