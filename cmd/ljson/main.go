// Command ljson parses and reformats JSON text.
//
// Stable ABI:
//
//	ljson parse [--quiet] [file|-]
//	ljson format [file|-]
//	ljson --help
//	ljson --version
//
// Exit codes: 0 (success), 2 (input/usage/parse error), 10 (internal/IO).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"

	"github.com/latticeforge/ljson/ljerr"
	"github.com/latticeforge/ljson/ljparse"
	"github.com/latticeforge/ljson/ljstringify"
)

const (
	exitSuccess = 0
	exitUsage   = 2
	exitInput   = 2
	exitInternal = 10
)

func main() {
	logger := log.NewLogger(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, logger log.Logger) int {
	if len(args) == 1 {
		switch args[0] {
		case "--help", "-h":
			_ = writeGlobalHelp(stdout)
			return exitSuccess
		case "--version":
			_ = writeLine(stdout, "ljson "+version)
			return exitSuccess
		}
	}

	if len(args) == 0 {
		_ = writeGlobalHelp(stderr)
		return exitUsage
	}

	switch args[0] {
	case "parse":
		return cmdParse(args[1:], stdin, stdout, logger)
	case "format":
		return cmdFormat(args[1:], stdin, stdout, stderr, logger)
	default:
		_ = writef(stderr, "unknown command: %s\n", args[0])
		_ = writeGlobalHelp(stderr)
		return exitUsage
	}
}

type flags struct {
	quiet bool
	help  bool
}

func parseFlags(args []string) (flags, []string, error) {
	var f flags
	var positional []string
	consumeAsPositional := false
	for _, arg := range args {
		if consumeAsPositional {
			positional = append(positional, arg)
			continue
		}
		switch arg {
		case "--quiet", "-q":
			f.quiet = true
		case "--help", "-h":
			f.help = true
		case "--":
			consumeAsPositional = true
		case "-":
			positional = append(positional, arg)
		default:
			if strings.HasPrefix(arg, "-") {
				return flags{}, nil, fmt.Errorf("unknown option: %s", arg)
			}
			positional = append(positional, arg)
		}
	}
	return f, positional, nil
}

// cmdParse validates that the input is well-formed JSON and reports the
// outcome via exit code and, unless --quiet, a status line.
func cmdParse(args []string, stdin io.Reader, stdout io.Writer, logger log.Logger) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		logger.Error("parse flags", "err", err)
		return exitUsage
	}
	if fl.help {
		_ = writeLine(stdout, "usage: ljson parse [--quiet] [file|-]")
		return exitSuccess
	}
	if len(positional) > 1 {
		logger.Error("multiple input files specified")
		return exitUsage
	}

	input, err := readInput(positional, stdin)
	if err != nil {
		logger.Error("read input", "err", err)
		return exitInput
	}

	if _, err := ljparse.Parse(input); err != nil {
		var lerr *ljerr.Error
		if errors.As(err, &lerr) {
			logger.Info("rejected input", "code", lerr.Code.String(), "offset", lerr.Offset)
		}
		_ = writef(stdout, "error: %v\n", err)
		return exitInput
	}

	if !fl.quiet {
		_ = writeLine(stdout, "ok")
	}
	return exitSuccess
}

// cmdFormat parses the input and re-emits it in the library's canonical
// compact serialization.
func cmdFormat(args []string, stdin io.Reader, stdout, stderr io.Writer, logger log.Logger) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		logger.Error("parse flags", "err", err)
		return exitUsage
	}
	if fl.help {
		_ = writeLine(stdout, "usage: ljson format [file|-]")
		return exitSuccess
	}
	if len(positional) > 1 {
		logger.Error("multiple input files specified")
		return exitUsage
	}

	input, err := readInput(positional, stdin)
	if err != nil {
		logger.Error("read input", "err", err)
		return exitInput
	}

	v, err := ljparse.Parse(input)
	if err != nil {
		logger.Info("rejected input", "err", err)
		_ = writef(stderr, "error: %v\n", err)
		return exitInput
	}

	out, err := ljstringify.Stringify(v)
	if err != nil {
		logger.Error("stringify", "err", err)
		return exitInternal
	}
	if _, err := stdout.Write(out); err != nil {
		logger.Error("write output", "err", err)
		return exitInternal
	}
	return exitSuccess
}

func readInput(positional []string, stdin io.Reader) ([]byte, error) {
	if len(positional) == 0 || positional[0] == "-" {
		return io.ReadAll(stdin)
	}
	f, err := os.Open(positional[0])
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", positional[0], err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func writeGlobalHelp(w io.Writer) error {
	if err := writeLine(w, "usage: ljson <parse|format> [options] [file|-]"); err != nil {
		return err
	}
	if err := writeLine(w, "       ljson --help"); err != nil {
		return err
	}
	if err := writeLine(w, "       ljson --version"); err != nil {
		return err
	}
	return writeLine(w, "commands: parse, format")
}

func writeLine(w io.Writer, msg string) error {
	return writef(w, "%s\n", msg)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

var version = "v0.0.0-dev"
