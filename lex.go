package flt

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
	// tokenWord is a run of text that has no meaning in an expression, such as
	// a word following one. It is not an error for the lexer to produce it.
	tokenWord
	// tokenInvalid is a punctuation or symbol rune that is not an operator.
	tokenInvalid
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenWord:
		return "Word"
	case tokenInvalid:
		return "Invalid"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// input is a position in the source text. Parsing functions receive an input
// and return a new one rather than advancing a shared cursor, so every offset
// they see is relative to the whole source.
type input struct {
	src string
	off int
}

// rest returns the unconsumed text.
func (in input) rest() string {
	return in.src[in.off:]
}

// skipSpace returns in advanced past any leading whitespace.
func (in input) skipSpace() input {
	for in.off < len(in.src) {
		r, sz := utf8.DecodeRuneInString(in.src[in.off:])
		if !unicode.IsSpace(r) {
			break
		}
		in.off += sz
	}
	return in
}

// next scans the next token and returns the input following it. The token at
// the end of the input is tokenEOF, and scanning past it keeps returning
// tokenEOF. The only lexical error is a malformed number.
func next(in input) (lexToken, input, error) {
	in = in.skipSpace()
	tok := lexToken{pos: in.off}
	if in.off >= len(in.src) {
		tok.kind = tokenEOF
		return tok, in, nil
	}
	r, sz := utf8.DecodeRuneInString(in.src[in.off:])
	switch {
	case '0' <= r && r <= '9', r == '.':
		return scanNum(in)
	case strings.ContainsRune(Operators, r):
		tok.kind = tokenOp
	case r == '(':
		tok.kind = tokenOpen
	case r == ')':
		tok.kind = tokenClose
	case unicode.IsPunct(r), unicode.IsSymbol(r), r == utf8.RuneError && sz == 1:
		tok.kind = tokenInvalid
	default:
		w, rest := scanWord(in)
		return w, rest, nil
	}
	tok.text = in.src[in.off : in.off+sz]
	in.off += sz
	return tok, in, nil
}

// scanNum scans a number. Numbers are a run of digits and dots. The run must
// contain at least one digit and at most one dot, and if there is a dot,
// digits must follow it. Whitespace ends a number.
func scanNum(in input) (lexToken, input, error) {
	tok := lexToken{kind: tokenNum, pos: in.off}
	var dig, dot, frac bool
	end := in.off
	for end < len(in.src) {
		c := in.src[end]
		if c == '.' {
			if dot {
				// Consume the rest of the run so that it shows up in the
				// error message.
				for end < len(in.src) && (isdigit(in.src[end]) || in.src[end] == '.') {
					end++
				}
				tok.text = in.src[in.off:end]
				return tok, in, numError(tok.text, in.off, "extra decimal point")
			}
			dot = true
		} else if isdigit(c) {
			if dot {
				frac = true
			} else {
				dig = true
			}
		} else {
			break
		}
		end++
	}
	tok.text = in.src[in.off:end]
	switch {
	case !dig && !frac:
		return tok, in, numError(tok.text, in.off, "no digits")
	case dot && !frac:
		return tok, in, numError(tok.text, in.off, "no digits after decimal point")
	}
	in.off = end
	return tok, in, nil
}

// scanWord scans a word token: everything up to the next whitespace or rune
// that the lexer recognizes on its own.
func scanWord(in input) (lexToken, input) {
	tok := lexToken{kind: tokenWord, pos: in.off}
	end := in.off
	for end < len(in.src) {
		r, sz := utf8.DecodeRuneInString(in.src[end:])
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || r == utf8.RuneError {
			break
		}
		end += sz
	}
	tok.text = in.src[in.off:end]
	in.off = end
	return tok, in
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// number converts a number token to its value. The token's syntax is already
// checked, so the only error ParseFloat can give is ErrRange, which comes with
// +Inf for literals too large to represent. Literals too small round to zero.
func number(tok lexToken) float64 {
	v, _ := strconv.ParseFloat(tok.text, 64)
	return v
}

func numError(text string, pos int, why string) *Error {
	return &Error{Kind: InvalidNumber, Pos: pos, Text: text, Open: -1, why: why}
}
