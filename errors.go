package scanvalue

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPattern   = errors.New("empty bytearray pattern")
	ErrBadWildcard    = errors.New("wildcard marker must be two characters")
	ErrTagUnavailable = errors.New("tag not carried by user value")
	ErrNotNumeric     = errors.New("user value is not numeric")
)

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseSyntax
	ParseRange
	ParseTokenLength
	ParseHexDigit
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseSyntax:
		return "invalid syntax"
	case ParseRange:
		return "out of range"
	case ParseTokenLength:
		return "token is not two characters"
	case ParseHexDigit:
		return "bad hex digit"
	default:
		return "invalid"
	}
}

// ParseError reports a literal or pattern that could not be parsed.
type ParseError struct {
	Kind  ParseErrKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("parse %q: %s", e.Input, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func parseErr(kind ParseErrKind, input string, err error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Err: err}
}
