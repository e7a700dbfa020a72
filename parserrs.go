package flt

import (
	"strconv"
	"unicode/utf8"
)

// ErrorKind classifies a parse error. Each kind is itself an error, so that
// errors.Is(err, UnclosedGroup) reports whether err is an unclosed group.
type ErrorKind int8

const (
	// UnexpectedEnd means the input ended where a term was required, e.g.
	// after an operator or an open bracket.
	UnexpectedEnd ErrorKind = iota + 1
	// InvalidNumber means a numeric literal is malformed, e.g. a lone "." or
	// "1.2.3".
	InvalidNumber
	// UnclosedGroup means an open bracket and its subexpression were not
	// followed by a close bracket.
	UnclosedGroup
	// UnexpectedToken means a token cannot begin or continue an expression in
	// the position where it appears.
	UnexpectedToken
	// TooDeep means the input nests more deeply than allowed by MaxDepth.
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case InvalidNumber:
		return "InvalidNumber"
	case UnclosedGroup:
		return "UnclosedGroup"
	case UnexpectedToken:
		return "UnexpectedToken"
	case TooDeep:
		return "TooDeep"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) Error() string {
	switch k {
	case UnexpectedEnd:
		return "unexpected end of input"
	case InvalidNumber:
		return "invalid number"
	case UnclosedGroup:
		return "open bracket with no close bracket"
	case UnexpectedToken:
		return "unexpected token"
	case TooDeep:
		return "expression nested too deeply"
	default:
		return k.String()
	}
}

// Error is an error parsing an expression. Every error returned by Parse is an
// *Error.
type Error struct {
	// Kind is the kind of error.
	Kind ErrorKind
	// Pos is the byte offset in the parsed text at which the error was
	// detected.
	Pos int
	// Text is the token at Pos, or the empty string at the end of the input.
	Text string
	// Open is the byte offset of the open bracket for UnclosedGroup errors
	// and -1 for all others.
	Open int

	// why is extra detail for the message.
	why string
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	switch err.Kind {
	case UnexpectedEnd:
		if err.why != "" {
			msg += ", expected " + err.why
		}
	case InvalidNumber:
		msg += " " + strconv.Quote(err.Text)
		if err.why != "" {
			msg += ": " + err.why
		}
	case UnclosedGroup:
		msg += " at " + strconv.Itoa(err.Open)
		if err.Text != "" {
			msg += ", found " + strconv.Quote(err.Text)
		}
	case UnexpectedToken:
		msg += " " + strconv.Quote(err.Text)
		if err.why != "" {
			msg += ", expected " + err.why
		}
	case TooDeep:
		if err.why != "" {
			msg += " (" + err.why + ")"
		}
	}
	return errpos(err.Pos, msg)
}

// Is reports whether target is the error's kind.
func (err *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == err.Kind
}

// Column returns the one-based column in runes of the error within src, which
// should be the text given to Parse.
func (err *Error) Column(src string) int {
	pos := err.Pos
	if pos > len(src) {
		pos = len(src)
	}
	return utf8.RuneCountInString(src[:pos]) + 1
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// unexpected creates an error for tok appearing where it cannot.
func unexpected(tok lexToken, want string) *Error {
	if tok.kind == tokenEOF {
		return &Error{Kind: UnexpectedEnd, Pos: tok.pos, Open: -1, why: want}
	}
	return &Error{Kind: UnexpectedToken, Pos: tok.pos, Text: tok.text, Open: -1, why: want}
}

var (
	_ error = (*Error)(nil)
	_ error = UnexpectedEnd
)
