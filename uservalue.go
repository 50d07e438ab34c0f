package scanvalue

import "math"

// Wildcard marks whether a pattern element must match exactly.
type Wildcard uint8

const (
	WildcardFixed Wildcard = iota
	WildcardAny
)

// UserKind is the shape a UserValue was parsed into.
type UserKind int

const (
	KindEmpty UserKind = iota
	KindNumeric
	KindPattern
	KindString
)

func (k UserKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindPattern:
		return "bytearray"
	case KindString:
		return "string"
	default:
		return "empty"
	}
}

// UserValue is a parsed search literal. Exactly one shape is populated:
// numeric (Flags plus canonical Int64/Float32/Float64), pattern (Bytes and
// Wildcards of Flags.Length elements) or string (Text).
type UserValue struct {
	Flags Flags

	Int64   int64
	Float32 float32
	Float64 float64

	Bytes     []byte
	Wildcards []Wildcard

	Text string
}

// Kind reports which shape u holds.
func (u *UserValue) Kind() UserKind {
	switch {
	case u.Wildcards != nil:
		return KindPattern
	case u.Text != "":
		return KindString
	case !u.Flags.Empty():
		return KindNumeric
	default:
		return KindEmpty
	}
}

// Reset zeroes u.
func (u *UserValue) Reset() {
	*u = UserValue{}
}

// Release drops the pattern arrays of a bytearray value and leaves it empty.
// Numeric and string values are left untouched. Calling it twice is harmless.
func (u *UserValue) Release() {
	if u.Kind() != KindPattern {
		return
	}
	u.Bytes = nil
	u.Wildcards = nil
	u.Flags.Length = 0
}

// bits returns the canonical representation of u under t, as raw little-endian bits.
func (u *UserValue) bits(t Tag) uint64 {
	switch t {
	case TagF32:
		return uint64(math.Float32bits(u.Float32))
	case TagF64:
		return math.Float64bits(u.Float64)
	default:
		return uint64(u.Int64)
	}
}

// Matches reports whether b starts with the pattern held by u.
func (u *UserValue) Matches(b []byte) bool {
	if u.Kind() != KindPattern || uint(len(b)) < u.Flags.Length {
		return false
	}
	for i := uint(0); i < u.Flags.Length; i++ {
		if u.Wildcards[i] == WildcardFixed && b[i] != u.Bytes[i] {
			return false
		}
	}
	return true
}

func (u *UserValue) classifyInt(n int64) {
	u.Flags.U8 = n >= 0 && n < 1<<8
	u.Flags.S8 = n >= -(1<<7) && n < 1<<7
	u.Flags.U16 = n >= 0 && n < 1<<16
	u.Flags.S16 = n >= -(1<<15) && n < 1<<15
	u.Flags.U32 = n >= 0 && n < 1<<32
	u.Flags.S32 = n >= -(1<<31) && n < 1<<31
	u.Flags.U64 = true
	u.Flags.S64 = true
	u.Int64 = n
}

// classifyFloat tests the integer intervals against f itself, so 255.5 is a
// valid u8 (255) while -128.5 is not a valid s8.
func (u *UserValue) classifyFloat(f float64) {
	u.Flags.U8 = f >= 0 && f < 1<<8
	u.Flags.S8 = f >= -(1<<7) && f < 1<<7
	u.Flags.U16 = f >= 0 && f < 1<<16
	u.Flags.S16 = f >= -(1<<15) && f < 1<<15
	u.Flags.U32 = f >= 0 && f < 1<<32
	u.Flags.S32 = f >= -(1<<31) && f < 1<<31
	u.Flags.U64 = true
	u.Flags.S64 = true
	u.Int64 = truncInt64(f)
}

func (u *UserValue) setFloat(f float64) {
	u.Flags.F32 = true
	u.Flags.F64 = true
	u.Float32 = float32(f)
	u.Float64 = f
}

// truncInt64 truncates toward zero. Values in [2^63, 2^64) keep their exact
// u64 bits, so the s64 reading wraps. Beyond that range it saturates; NaN
// yields 0.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1<<64:
		return math.MaxInt64
	case f >= 1<<63:
		return int64(uint64(f))
	case f < -(1 << 63):
		return math.MinInt64
	}
	return int64(f)
}
