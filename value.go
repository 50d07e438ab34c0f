package scanvalue

import (
	"fmt"
	"math"

	"github.com/rawbytedev/scanvalue/internal/common"
)

// ValueSize is the capacity of a Value's buffer in bytes.
const ValueSize = 8

// Value is a concrete scanned value. Every tag set in Flags reads the same
// little-endian buffer at its own width.
type Value struct {
	Flags Flags
	buf   [ValueSize]byte
}

// ValueFromBytes loads up to ValueSize raw bytes, as read from memory, into a Value.
func ValueFromBytes(b []byte, flags Flags) Value {
	v := Value{Flags: flags}
	copy(v.buf[:], b)
	return v
}

// Bytes returns a copy of the underlying buffer.
func (v *Value) Bytes() []byte {
	out := make([]byte, ValueSize)
	copy(out, v.buf[:])
	return out
}

// Copy duplicates src into dst, flags and buffer.
func Copy(dst, src *Value) {
	*dst = *src
}

func (v *Value) bits(t Tag) uint64 {
	return common.GetFixed(v.buf[:], t.Kind())
}

func (v *Value) setBits(t Tag, x uint64) {
	common.PutFixed(v.buf[:], t.Kind(), x)
}

func (v *Value) U8() uint8       { return uint8(v.bits(TagU8)) }
func (v *Value) S8() int8        { return int8(v.bits(TagS8)) }
func (v *Value) U16() uint16     { return uint16(v.bits(TagU16)) }
func (v *Value) S16() int16      { return int16(v.bits(TagS16)) }
func (v *Value) U32() uint32     { return uint32(v.bits(TagU32)) }
func (v *Value) S32() int32      { return int32(v.bits(TagS32)) }
func (v *Value) U64() uint64     { return v.bits(TagU64) }
func (v *Value) S64() int64      { return int64(v.bits(TagS64)) }
func (v *Value) F32() float32    { return math.Float32frombits(uint32(v.bits(TagF32))) }
func (v *Value) F64() float64    { return math.Float64frombits(v.bits(TagF64)) }
func (v *Value) SetU8(x uint8)   { v.setBits(TagU8, uint64(x)) }
func (v *Value) SetS8(x int8)    { v.setBits(TagS8, uint64(x)) }
func (v *Value) SetU16(x uint16) { v.setBits(TagU16, uint64(x)) }
func (v *Value) SetS16(x int16)  { v.setBits(TagS16, uint64(x)) }
func (v *Value) SetU32(x uint32) { v.setBits(TagU32, uint64(x)) }
func (v *Value) SetS32(x int32)  { v.setBits(TagS32, uint64(x)) }
func (v *Value) SetU64(x uint64) { v.setBits(TagU64, x) }
func (v *Value) SetS64(x int64)  { v.setBits(TagS64, uint64(x)) }
func (v *Value) SetF32(x float32) {
	v.setBits(TagF32, uint64(math.Float32bits(x)))
}
func (v *Value) SetF64(x float64) {
	v.setBits(TagF64, math.Float64bits(x))
}

// Project writes src into dst under every tag already set in dst.Flags.
// The caller picks the subset; asking for a tag src was not parsed with
// fails with ErrTagUnavailable and leaves dst unchanged.
func Project(dst *Value, src *UserValue) error {
	if src.Kind() != KindNumeric {
		return ErrNotNumeric
	}
	want := dst.Flags.Tags()
	for _, t := range want {
		if !src.Flags.Has(t) {
			return fmt.Errorf("project %s: %w", t, ErrTagUnavailable)
		}
	}
	// Tags are written in declaration order; callers mixing integer and float
	// tags get the float bits.
	for _, t := range want {
		dst.setBits(t, src.bits(t))
	}
	return nil
}

// MaxWidthBytes reports how many bytes v occupies under the given scan type.
func (v *Value) MaxWidthBytes(mode ScanDataType) int {
	return MaxWidthBytes(v.Flags, mode)
}

func (v Value) String() string {
	return Format(v)
}
