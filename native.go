package scanvalue

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Native reads v as the integer type T, picking the fixed-width accessor that
// matches T's size and signedness on the current platform. It panics for a
// width with no accessor, which no supported platform has.
func Native[T constraints.Integer](v *Value) T {
	var zero T
	signed := zero-1 < zero
	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return T(v.S8())
		}
		return T(v.U8())
	case 2:
		if signed {
			return T(v.S16())
		}
		return T(v.U16())
	case 4:
		if signed {
			return T(v.S32())
		}
		return T(v.U32())
	case 8:
		if signed {
			return T(v.S64())
		}
		return T(v.U64())
	}
	panic(fmt.Sprintf("scanvalue: no fixed-width accessor for %d-byte integer", unsafe.Sizeof(zero)))
}

// GetSChar and GetUChar read v as a C char (one byte), GetSShort and
// GetUShort as a C short (two bytes), and GetSLongLong and GetULongLong as a
// C long long (eight bytes). These widths are the same on every platform Go
// supports.
func GetSChar(v *Value) int8       { return Native[int8](v) }
func GetUChar(v *Value) uint8      { return Native[uint8](v) }
func GetSShort(v *Value) int16     { return Native[int16](v) }
func GetUShort(v *Value) uint16    { return Native[uint16](v) }
func GetSLongLong(v *Value) int64  { return Native[int64](v) }
func GetULongLong(v *Value) uint64 { return Native[uint64](v) }

// GetSInt and GetUInt read v at the platform width of int.
func GetSInt(v *Value) int  { return Native[int](v) }
func GetUInt(v *Value) uint { return Native[uint](v) }

// GetUintptr reads v at pointer width.
func GetUintptr(v *Value) uintptr { return Native[uintptr](v) }
