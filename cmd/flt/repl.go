package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/flt"
)

// lineReader is the line editor the REPL reads from. *liner.State implements
// it.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

var _ lineReader = (*liner.State)(nil)

const helpText = `Enter an expression to print its syntax tree.

Commands:
  :help                  show this help
  :quit, :exit           leave
  :format [debug|infix]  show or set the tree output format
  :stats <expr>          show the size and depth of an expression's tree
`

type repl struct {
	cfg  Config
	in   lineReader
	out  io.Writer
	errw io.Writer

	errStyle  lipgloss.Style
	hintStyle lipgloss.Style
}

func newREPL(cfg Config, in lineReader, out, errw io.Writer) *repl {
	r := &repl{
		cfg:       cfg,
		in:        in,
		out:       out,
		errw:      errw,
		errStyle:  lipgloss.NewStyle(),
		hintStyle: lipgloss.NewStyle(),
	}
	if cfg.Color {
		// Styles render for the error writer, so redirected output stays
		// plain.
		re := lipgloss.NewRenderer(errw)
		r.errStyle = re.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		r.hintStyle = re.NewStyle().Foreground(lipgloss.Color("11"))
	}
	return r
}

// run reads and handles lines until the user quits. Interrupting the prompt
// and reaching the end of input both end the loop without error.
func (r *repl) run() error {
	for {
		line, err := r.in.Prompt(r.cfg.Prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(r.out, "\nExiting.")
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.in.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if r.command(line) {
				return nil
			}
			continue
		}
		r.parse(line)
		fmt.Fprintln(r.out)
	}
}

// parse parses one line and prints the tree or the error.
func (r *repl) parse(line string) {
	e, ok := r.parseLine(line)
	if !ok {
		return
	}
	switch r.cfg.Format {
	case formatInfix:
		fmt.Fprintln(r.out, e.String())
	default:
		fmt.Fprintln(r.out, flt.Debug(e))
	}
}

// parseLine parses a whole line. Text after the expression is an error.
func (r *repl) parseLine(line string) (flt.Expr, bool) {
	e, rest, err := flt.Parse(line, flt.MaxDepth(r.cfg.MaxDepth))
	if err != nil {
		col := 0
		var perr *flt.Error
		if errors.As(err, &perr) {
			col = perr.Column(line)
		}
		r.report(line, col, err.Error())
		return nil, false
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		// rest is a suffix of line, so its start is easy to find.
		col := utf8.RuneCountInString(line[:len(line)-len(rest)]) + 1
		r.report(line, col, fmt.Sprintf("unexpected input after expression: %q", rest))
		return nil, false
	}
	return e, true
}

// report prints a parse error with a marker under the column it occurred at,
// if col is positive.
func (r *repl) report(line string, col int, msg string) {
	fmt.Fprintln(r.errw, r.errStyle.Render("parse error:")+" "+msg)
	if col > 0 {
		fmt.Fprintln(r.errw, "  "+line)
		fmt.Fprintln(r.errw, "  "+strings.Repeat(" ", col-1)+r.hintStyle.Render("^"))
	}
}

// command runs a REPL command. The result is whether the REPL should exit.
func (r *repl) command(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(name) {
	case ":help":
		fmt.Fprint(r.out, helpText)
	case ":quit", ":exit":
		return true
	case ":format":
		switch arg {
		case "":
			fmt.Fprintln(r.out, r.cfg.Format)
		case formatDebug, formatInfix:
			r.cfg.Format = arg
		default:
			fmt.Fprintf(r.errw, "unknown format %q (want %q or %q)\n", arg, formatDebug, formatInfix)
		}
	case ":stats":
		if arg == "" {
			fmt.Fprintln(r.errw, "usage: :stats <expr>")
			return false
		}
		e, ok := r.parseLine(arg)
		if !ok {
			return false
		}
		var nodes, groups int
		flt.Walk(e, func(n flt.Expr) bool {
			nodes++
			if _, ok := n.(flt.Group); ok {
				groups++
			}
			return true
		})
		fmt.Fprintf(r.out, "nodes: %d\ngroups: %d\ndepth: %d\n", nodes, groups, flt.Depth(e))
	default:
		fmt.Fprintf(r.errw, "unknown command %s; try :help\n", name)
	}
	return false
}
