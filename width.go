package scanvalue

import (
	"fmt"
	"strings"
)

// ScanDataType is the kind of data a scan looks for. It is owned by the
// surrounding scanner configuration; this package only reads it.
type ScanDataType int

const (
	AnyNumber ScanDataType = iota
	AnyInteger
	AnyFloat
	Integer8
	Integer16
	Integer32
	Integer64
	Float32
	Float64
	ByteArray
	String
)

var scanDataTypeNames = [...]string{
	AnyNumber:  "anynumber",
	AnyInteger: "anyint",
	AnyFloat:   "anyfloat",
	Integer8:   "int8",
	Integer16:  "int16",
	Integer32:  "int32",
	Integer64:  "int64",
	Float32:    "float32",
	Float64:    "float64",
	ByteArray:  "bytearray",
	String:     "string",
}

func (t ScanDataType) String() string {
	if t < AnyNumber || t > String {
		return fmt.Sprintf("ScanDataType(%d)", int(t))
	}
	return scanDataTypeNames[t]
}

// ParseScanDataType maps a configuration name such as "int32" to its ScanDataType.
func ParseScanDataType(name string) (ScanDataType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range scanDataTypeNames {
		if n == name {
			return ScanDataType(i), nil
		}
	}
	return AnyNumber, fmt.Errorf("unknown scan data type %q", name)
}

// IsNumeric reports whether t scans numbers rather than strings or bytearrays.
func (t ScanDataType) IsNumeric() bool {
	return t != ByteArray && t != String
}

// DefaultFlags returns the tags a scan of type t can match.
func (t ScanDataType) DefaultFlags() Flags {
	switch t {
	case AnyNumber:
		return FlagsOf(AllTags...)
	case AnyInteger:
		return FlagsOf(TagU8, TagS8, TagU16, TagS16, TagU32, TagS32, TagU64, TagS64)
	case AnyFloat:
		return FlagsOf(TagF32, TagF64)
	case Integer8:
		return FlagsOf(TagU8, TagS8)
	case Integer16:
		return FlagsOf(TagU16, TagS16)
	case Integer32:
		return FlagsOf(TagU32, TagS32)
	case Integer64:
		return FlagsOf(TagU64, TagS64)
	case Float32:
		return FlagsOf(TagF32)
	case Float64:
		return FlagsOf(TagF64)
	}
	return Flags{}
}

// MaxWidthBytes returns the bytes needed to compare a value with the given
// flags. String and bytearray scans use flags.Length; numeric scans use the
// widest set tag, or 0 when none is set.
func MaxWidthBytes(flags Flags, mode ScanDataType) int {
	if !mode.IsNumeric() {
		return int(flags.Length)
	}
	switch {
	case flags.U64 || flags.S64 || flags.F64:
		return 8
	case flags.U32 || flags.S32 || flags.F32:
		return 4
	case flags.U16 || flags.S16:
		return 2
	case flags.U8 || flags.S8:
		return 1
	default:
		return 0
	}
}
