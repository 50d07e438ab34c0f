package scanvalue

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultWildcard is the pattern token that matches any byte.
const DefaultWildcard = "??"

// ParseInt parses a signed 64-bit integer literal. Leading whitespace is
// skipped and the base follows the 0x / 0 prefix; 0b and 0o are rejected.
// The result carries every integer tag whose range holds the value; u64 and
// s64 are always set.
func ParseInt(text string) (*UserValue, error) {
	n, err := parseInt64(trimLeftSpace(text))
	if err != nil {
		return nil, err
	}
	u := &UserValue{}
	u.classifyInt(n)
	return u, nil
}

// ParseFloat parses a floating point literal and sets f32 and f64.
func ParseFloat(text string) (*UserValue, error) {
	f, err := parseFloat64(trimLeftSpace(text))
	if err != nil {
		return nil, err
	}
	u := &UserValue{}
	u.setFloat(f)
	return u, nil
}

// ParseNumber tries ParseInt, then ParseFloat. An integer literal also gets
// f32 and f64. A float literal also gets every integer tag whose range holds
// it, with the integer value truncated toward zero: "5.5" is a u8 of 5.
func ParseNumber(text string) (*UserValue, error) {
	if u, err := ParseInt(text); err == nil {
		u.setFloat(float64(u.Int64))
		u.Float32 = float32(u.Int64)
		return u, nil
	}
	u, err := ParseFloat(text)
	if err != nil {
		return nil, err
	}
	u.classifyFloat(u.Float64)
	return u, nil
}

// ParsePattern parses bytearray tokens such as ["AB", "??", "00"] using
// DefaultWildcard.
func ParsePattern(tokens []string) (*UserValue, error) {
	return ParsePatternWildcard(tokens, DefaultWildcard)
}

// ParsePatternWildcard parses bytearray tokens with a custom two-character
// wildcard marker. Each other token must be exactly two hex digits.
func ParsePatternWildcard(tokens []string, wildcard string) (*UserValue, error) {
	if len(wildcard) != 2 {
		return nil, parseErr(ParseInvalid, wildcard, ErrBadWildcard)
	}
	if len(tokens) == 0 {
		return nil, parseErr(ParseEmpty, "", ErrEmptyPattern)
	}
	bytes := make([]byte, len(tokens))
	wildcards := make([]Wildcard, len(tokens))
	for i, tok := range tokens {
		if len(tok) != 2 {
			return nil, parseErr(ParseTokenLength, tok, nil)
		}
		if tok == wildcard {
			wildcards[i] = WildcardAny
			continue
		}
		if !isHexDigit(tok[0]) || !isHexDigit(tok[1]) {
			return nil, parseErr(ParseHexDigit, tok, nil)
		}
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, parseErr(ParseHexDigit, tok, err)
		}
		bytes[i] = byte(b)
		wildcards[i] = WildcardFixed
	}
	u := &UserValue{Bytes: bytes, Wildcards: wildcards}
	u.Flags.Length = uint(len(tokens))
	return u, nil
}

// ParseString wraps a non-empty search string.
func ParseString(text string) (*UserValue, error) {
	if text == "" {
		return nil, parseErr(ParseEmpty, text, nil)
	}
	u := &UserValue{Text: text}
	u.Flags.Length = uint(len(text))
	return u, nil
}

func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, parseErr(ParseEmpty, s, nil)
	}
	// strconv allows digit separators and 0b/0o prefixes with base 0; scan
	// literals do not.
	if strings.ContainsRune(s, '_') || hasBinOctPrefix(s) {
		return 0, parseErr(ParseSyntax, s, nil)
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, numError(s, err)
	}
	return n, nil
}

func parseFloat64(s string) (float64, error) {
	if s == "" {
		return 0, parseErr(ParseEmpty, s, nil)
	}
	if strings.ContainsRune(s, '_') {
		return 0, parseErr(ParseSyntax, s, nil)
	}
	lexical := s
	if isHexLiteral(s) && !strings.ContainsAny(s, "pP") {
		lexical += "p0"
	}
	f, err := strconv.ParseFloat(lexical, 64)
	if err != nil {
		return 0, numError(s, err)
	}
	if f == 0 && hasNonZeroSignificand(s) {
		return 0, parseErr(ParseRange, s, strconv.ErrRange)
	}
	return f, nil
}

func numError(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return parseErr(ParseRange, s, strconv.ErrRange)
	}
	return parseErr(ParseSyntax, s, nil)
}

func trimLeftSpace(s string) string {
	return strings.TrimLeft(s, " \t\n\v\f\r")
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hasBinOctPrefix(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && strings.IndexByte("bBoO", s[1]) >= 0
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// hasNonZeroSignificand reports whether the mantissa of a float literal has a
// non-zero digit, so a zero result means the value underflowed.
func hasNonZeroSignificand(s string) bool {
	s = strings.TrimLeft(s, "+-")
	hex := isHexLiteral(s)
	stop := "eE"
	if hex {
		s = s[2:]
		stop = "pP"
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(stop, c) >= 0 {
			break
		}
		if c == '0' || c == '.' {
			continue
		}
		if ('1' <= c && c <= '9') || (hex && isHexDigit(c)) {
			return true
		}
	}
	return false
}
