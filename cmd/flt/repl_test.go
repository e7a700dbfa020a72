package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/flt"
)

// script is a lineReader that returns fixed lines, then err.
type script struct {
	lines   []string
	err     error
	prompts []string
	history []string
}

func (s *script) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *script) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Color = false
	cfg.HistoryFile = ""
	return cfg
}

func runScript(t *testing.T, cfg Config, s *script) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	err := newREPL(cfg, s, &out, &errw).run()
	return out.String(), errw.String(), err
}

func TestREPLPrintsTree(t *testing.T) {
	s := &script{lines: []string{"1 + 2 * 3"}, err: io.EOF}
	out, errs, err := runScript(t, testConfig(), s)
	assert.NoError(t, err)
	assert.Equal(t, "", errs)
	e, _, _ := flt.Parse("1 + 2 * 3")
	assert.Equal(t, flt.Debug(e)+"\n\n", out)
	assert.Equal(t, []string{"1 + 2 * 3"}, s.history)
	assert.Equal(t, []string{"> ", "> "}, s.prompts)
}

func TestREPLInfix(t *testing.T) {
	cfg := testConfig()
	cfg.Format = formatInfix
	s := &script{lines: []string{"  (1+2)*3  "}, err: io.EOF}
	out, _, err := runScript(t, cfg, s)
	assert.NoError(t, err)
	assert.Equal(t, "(1 + 2) * 3\n\n", out)
	assert.Equal(t, []string{"(1+2)*3"}, s.history)
}

func TestREPLSkipsBlankLines(t *testing.T) {
	s := &script{lines: []string{"", "   ", "\t"}, err: io.EOF}
	out, errs, err := runScript(t, testConfig(), s)
	assert.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, "", errs)
	assert.Zero(t, len(s.history))
	assert.Equal(t, 4, len(s.prompts))
}

func TestREPLErrors(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		msg   string
		caret string
	}{
		{"unclosed", "(1 + 2", "parse error: 6: open bracket with no close bracket at 0", "        ^"},
		{"end", "1 +", "parse error: 3: unexpected end of input", "     ^"},
		{"token", "1 & 2", `parse error: 2: unexpected token "&"`, "    ^"},
		{"number", ".", `parse error: 0: invalid number "."`, "  ^"},
		{"trailing", "1 + 2 extra", `parse error: unexpected input after expression: "extra"`, "        ^"},
		{"trailingclose", "(1))", `parse error: unexpected input after expression: ")"`, "     ^"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := &script{lines: []string{c.line}, err: io.EOF}
			out, errs, err := runScript(t, testConfig(), s)
			assert.NoError(t, err)
			assert.Equal(t, "\n", out)
			lines := strings.Split(strings.TrimSuffix(errs, "\n"), "\n")
			if len(lines) != 3 {
				t.Fatalf("want 3 lines of error output, got %q", errs)
			}
			assert.True(t, strings.HasPrefix(lines[0], c.msg), "%q does not start with %q", lines[0], c.msg)
			assert.Equal(t, "  "+c.line, lines[1])
			assert.Equal(t, c.caret, lines[2])
		})
	}
}

func TestREPLMaxDepth(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDepth = 2
	s := &script{lines: []string{"(((1)))", "((1))"}, err: io.EOF}
	out, errs, err := runScript(t, cfg, s)
	assert.NoError(t, err)
	assert.Contains(t, errs, "nested too deeply")
	assert.Contains(t, out, "Group")
}

func TestREPLExit(t *testing.T) {
	cases := []struct {
		name string
		err  error
		out  string
		fail bool
	}{
		{"eof", io.EOF, "", false},
		{"interrupt", liner.ErrPromptAborted, "\nExiting.\n", false},
		{"other", errors.New("terminal exploded"), "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, _, err := runScript(t, testConfig(), &script{err: c.err})
			assert.Equal(t, c.out, out)
			if c.fail {
				assert.IsError(t, err, c.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestREPLCommands(t *testing.T) {
	s := &script{
		lines: []string{
			":help",
			":format",
			":format infix",
			":format",
			"-(1)",
			":format sexpr",
			":stats (1 + 2) * -3",
			":stats",
			":stats 1 +",
			":bogus",
			":QUIT",
			"1",
		},
		err: io.EOF,
	}
	out, errs, err := runScript(t, testConfig(), s)
	assert.NoError(t, err)
	assert.Contains(t, out, ":stats <expr>")
	assert.Contains(t, out, "debug\n")
	assert.Contains(t, out, "infix\n")
	assert.Contains(t, out, "-(1)\n\n")
	assert.Contains(t, out, "nodes: 7\ngroups: 1\ndepth: 4\n")
	assert.Contains(t, errs, `unknown format "sexpr"`)
	assert.Contains(t, errs, "usage: :stats")
	assert.Contains(t, errs, "unexpected end of input")
	assert.Contains(t, errs, "unknown command :bogus")
	// :QUIT ends the loop before the last line.
	assert.Equal(t, 1, len(s.lines))
}

func TestREPLColor(t *testing.T) {
	cfg := testConfig()
	cfg.Color = true
	_, errs, err := runScript(t, cfg, &script{lines: []string{"1 &"}, err: io.EOF})
	assert.NoError(t, err)
	assert.Contains(t, errs, "parse error:")
	assert.Contains(t, errs, "^")
}
