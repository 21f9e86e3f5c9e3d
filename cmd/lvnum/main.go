// SPDX-License-Identifier: MIT

// Command lvnum evaluates numeric operations from the command line.
//
//	lvnum add 2 3+4i           # one call, arguments as separate words
//	echo 'multiply([[1, 2], [3, 4]], 2)' | lvnum
//	lvnum                      # interactive prompt on a terminal
//
// Each input line is `op(arg, ...)` or `op arg`; see parseLiteral for the
// literal syntax.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/katalvlaran/lvnum"
	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/value"
)

const version = "lvnum 0.1.0"

//nolint:gochecknoglobals
var usage = `lvnum

Usage:
  lvnum [options] <op> [<arg>...]
  lvnum [options]
  lvnum -l | --list
  lvnum -h | --help
  lvnum --version

Arguments:
  <op>   Operation name, e.g. add, multiply, equal.
  <arg>  Operand literal: 3, 1.25d, 1+4i, 3/4, true, null, "s", "5 cm",
         [[1, 2], [3, 4]], matrix[[1, 2]], sparse[[1, 0], [0, 2]].

Options:
  -e, --epsilon=<eps>  Relative comparison tolerance [default: 1e-14].
  -d, --digits=<n>     Max significant digits promoted to BigNumber [default: 15].
  -P, --precision=<n>  Significant digits of inexact BigNumber results [default: 19].
  -p, --predictable    Never escape to Complex (sqrt(-4) is NaN).
  -k, --kind           Print the kind of every result.
  -l, --list           List operations and exit.
  -h, --help           Display this help.
  --version            Print version.

Without <op>, lines are read from stdin: interactively when stdin is a
terminal, in batch otherwise. Blank lines and lines starting with # are
skipped.
`

// errUsage marks an option value outside its documented range.
var errUsage = errors.New("lvnum: invalid option")

type options struct {
	cfg      []config.Option
	op       string
	args     []string
	showKind bool
	list     bool
}

func main() {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit, OptionsFirst: true}
	os.Exit(run(parser, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()), os.Stdin, os.Stdout, os.Stderr))
}

func run(parser *docopt.Parser, argv []string, interactive bool, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseOptions(parser, argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	e := lvnum.New(o.cfg...)
	s := &session{engine: e, out: stdout, errOut: stderr, showKind: o.showKind}

	switch {
	case o.list:
		s.list()
		return 0
	case o.op != "":
		if !s.callWords(o.op, o.args) {
			return 1
		}
		return 0
	case interactive:
		if err := s.prompt(); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}
	if !s.batch(stdin) {
		return 1
	}
	return 0
}

func parseOptions(parser *docopt.Parser, argv []string) (*options, error) {
	opts, err := parser.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}
	o := &options{}

	eps, err := opts.Float64("--epsilon")
	if err != nil || eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("--epsilon: %w", errUsage)
	}
	digits, err := opts.Int("--digits")
	if err != nil || digits < 1 || digits > 17 {
		return nil, fmt.Errorf("--digits must be in [1, 17]: %w", errUsage)
	}
	precision, err := opts.Int("--precision")
	if err != nil || precision < 1 || precision > config.MaxPrecision {
		return nil, fmt.Errorf("--precision must be in [1, %d]: %w", config.MaxPrecision, errUsage)
	}
	predictable, _ := opts.Bool("--predictable")
	o.cfg = []config.Option{
		config.WithEpsilon(eps),
		config.WithBigNumberDigits(digits),
		config.WithPrecision(precision),
		config.WithPredictable(predictable),
	}

	o.showKind, _ = opts.Bool("--kind")
	o.list, _ = opts.Bool("--list")
	o.op, _ = opts.String("<op>")
	o.args, _ = opts["<arg>"].([]string)
	return o, nil
}

// session evaluates calls against one engine and reports to two writers.
type session struct {
	engine   *lvnum.Engine
	out      io.Writer
	errOut   io.Writer
	showKind bool
}

func (s *session) list() {
	for _, name := range s.engine.Operations() {
		fmt.Fprintln(s.out, name)
	}
}

// callWords runs op with one literal per word.
func (s *session) callWords(op string, words []string) bool {
	args := make([]value.Value, 0, len(words))
	for _, w := range words {
		v, err := parseLiteral(s.engine, w)
		if err != nil {
			fmt.Fprintln(s.errOut, err)
			return false
		}
		args = append(args, v)
	}
	return s.call(op, args)
}

// line evaluates one input line. Blank and comment lines succeed silently.
func (s *session) line(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return true
	}
	if text == "?" {
		s.list()
		return true
	}
	op, args, err := parseCall(s.engine, text)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return false
	}
	return s.call(op, args)
}

func (s *session) call(op string, args []value.Value) bool {
	v, err := s.engine.Call(op, args...)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return false
	}
	if s.showKind {
		fmt.Fprintf(s.out, "%s\t%s\n", v, v.Kind())
		return true
	}
	fmt.Fprintln(s.out, v)
	return true
}

// batch evaluates every line of r and reports whether all succeeded.
// Evaluation continues past failing lines.
func (s *session) batch(r io.Reader) bool {
	ok := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !s.line(sc.Text()) {
			ok = false
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(s.errOut, err)
		return false
	}
	return ok
}

// prompt runs the interactive loop until EOF. Ctrl-C abandons the current line.
func (s *session) prompt() error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	for {
		text, err := cli.Prompt("> ")
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		default:
			return err
		}
		if strings.TrimSpace(text) != "" {
			cli.AppendHistory(text)
		}
		s.line(text)
	}
}
