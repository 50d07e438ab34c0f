package common

import (
	"encoding/binary"
	"reflect"
)

// IsFixedKind reports whether k is a fixed-size numeric kind a scan value can carry.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size numeric kinds.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// IsSignedKind reports whether k is a signed integer kind.
func IsSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// IsFloatKind reports whether k is a floating point kind.
func IsFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// PutFixed writes the low FixedSize(k) bytes of bits into b in little-endian order.
// Bytes of b past that width are left untouched. b must hold at least that many bytes.
func PutFixed(b []byte, k reflect.Kind, bits uint64) {
	if !IsFixedKind(k) {
		panic("unsupported fixed kind: " + k.String())
	}
	switch FixedSize(k) {
	case 1:
		b[0] = byte(bits)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(bits))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(bits))
	case 8:
		binary.LittleEndian.PutUint64(b, bits)
	}
}

// GetFixed reads FixedSize(k) little-endian bytes from b, zero-extended to 64 bits.
func GetFixed(b []byte, k reflect.Kind) uint64 {
	if !IsFixedKind(k) {
		panic("unsupported fixed kind: " + k.String())
	}
	switch FixedSize(k) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	}
	return binary.LittleEndian.Uint64(b)
}
