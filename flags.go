package scanvalue

import (
	"reflect"

	"github.com/rawbytedev/scanvalue/internal/common"
)

// Tag names one numeric interpretation of a value's bytes.
type Tag int

const (
	TagU8 Tag = iota
	TagS8
	TagU16
	TagS16
	TagU32
	TagS32
	TagU64
	TagS64
	TagF32
	TagF64
)

// AllTags lists every tag in declaration order.
var AllTags = []Tag{TagU8, TagS8, TagU16, TagS16, TagU32, TagS32, TagU64, TagS64, TagF32, TagF64}

var tagKinds = [...]reflect.Kind{
	TagU8:  reflect.Uint8,
	TagS8:  reflect.Int8,
	TagU16: reflect.Uint16,
	TagS16: reflect.Int16,
	TagU32: reflect.Uint32,
	TagS32: reflect.Int32,
	TagU64: reflect.Uint64,
	TagS64: reflect.Int64,
	TagF32: reflect.Float32,
	TagF64: reflect.Float64,
}

var tagNames = [...]string{
	TagU8: "u8", TagS8: "s8", TagU16: "u16", TagS16: "s16", TagU32: "u32",
	TagS32: "s32", TagU64: "u64", TagS64: "s64", TagF32: "f32", TagF64: "f64",
}

func (t Tag) valid() bool { return t >= TagU8 && t <= TagF64 }

// String returns the stable short code of the tag, e.g. "u16".
func (t Tag) String() string {
	if !t.valid() {
		return "unknown"
	}
	return tagNames[t]
}

// Kind returns the Go kind the tag reads as.
func (t Tag) Kind() reflect.Kind {
	if !t.valid() {
		return reflect.Invalid
	}
	return tagKinds[t]
}

// Width returns the tag's width in bytes.
func (t Tag) Width() int { return common.FixedSize(t.Kind()) }

// Signed reports whether the tag is a signed integer.
func (t Tag) Signed() bool { return common.IsSignedKind(t.Kind()) }

// Float reports whether the tag is a floating point type.
func (t Tag) Float() bool { return common.IsFloatKind(t.Kind()) }

// Flags records which interpretations of a value are currently valid.
// Several tags may hold at once over the same bytes.
type Flags struct {
	U8, S8   bool
	U16, S16 bool
	U32, S32 bool
	U64, S64 bool
	F32, F64 bool

	// Length is the element count of string and bytearray values.
	// Numeric values ignore it.
	Length uint
}

func (f *Flags) field(t Tag) *bool {
	switch t {
	case TagU8:
		return &f.U8
	case TagS8:
		return &f.S8
	case TagU16:
		return &f.U16
	case TagS16:
		return &f.S16
	case TagU32:
		return &f.U32
	case TagS32:
		return &f.S32
	case TagU64:
		return &f.U64
	case TagS64:
		return &f.S64
	case TagF32:
		return &f.F32
	case TagF64:
		return &f.F64
	}
	return nil
}

// Has reports whether t is set.
func (f Flags) Has(t Tag) bool {
	p := f.field(t)
	return p != nil && *p
}

// Set marks t as a valid interpretation.
func (f *Flags) Set(t Tag) {
	if p := f.field(t); p != nil {
		*p = true
	}
}

// Clear removes t.
func (f *Flags) Clear(t Tag) {
	if p := f.field(t); p != nil {
		*p = false
	}
}

// Tags returns the set tags in declaration order.
func (f Flags) Tags() []Tag {
	var out []Tag
	for _, t := range AllTags {
		if f.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Empty reports whether no numeric tag is set.
func (f Flags) Empty() bool {
	for _, t := range AllTags {
		if f.Has(t) {
			return false
		}
	}
	return true
}

// Intersect keeps only the tags set in both f and other. Length is kept from f.
func (f Flags) Intersect(other Flags) Flags {
	out := Flags{Length: f.Length}
	for _, t := range AllTags {
		if f.Has(t) && other.Has(t) {
			out.Set(t)
		}
	}
	return out
}

// FlagsOf builds a flag set with the given tags.
func FlagsOf(tags ...Tag) Flags {
	var f Flags
	for _, t := range tags {
		f.Set(t)
	}
	return f
}
