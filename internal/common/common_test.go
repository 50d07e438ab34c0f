package common

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSize(t *testing.T) {
	cases := map[reflect.Kind]int{
		reflect.Uint8: 1, reflect.Int8: 1,
		reflect.Uint16: 2, reflect.Int16: 2,
		reflect.Uint32: 4, reflect.Int32: 4, reflect.Float32: 4,
		reflect.Uint64: 8, reflect.Int64: 8, reflect.Float64: 8,
		reflect.String: -1, reflect.Bool: -1,
	}
	for k, want := range cases {
		assert.Equal(t, want, FixedSize(k), k.String())
		assert.Equal(t, want > 0, IsFixedKind(k), k.String())
	}
}

func TestPutFixedLeavesHighBytes(t *testing.T) {
	b := []byte{0, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	PutFixed(b, reflect.Uint8, 0x1FF)
	require.Equal(t, []byte{0xFF, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}, b)
	PutFixed(b, reflect.Int16, 0x0102)
	require.Equal(t, []byte{0x02, 0x01, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}, b)
}

func TestGetFixedRoundTrip(t *testing.T) {
	kinds := []reflect.Kind{reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64}
	condition := func(x uint64) bool {
		b := make([]byte, 8)
		for _, k := range kinds {
			PutFixed(b, k, x)
			mask := uint64(1)<<(8*uint(FixedSize(k))) - 1
			if FixedSize(k) == 8 {
				mask = ^uint64(0)
			}
			if GetFixed(b, k) != x&mask {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestPutFixedUnsupported(t *testing.T) {
	assert.Panics(t, func() { PutFixed(make([]byte, 8), reflect.String, 1) })
	assert.Panics(t, func() { GetFixed(make([]byte, 8), reflect.Bool) })
	assert.PanicsWithValue(t, "unsupported fixed kind: int", func() { PutFixed(make([]byte, 8), reflect.Int, 1) })
	assert.PanicsWithValue(t, "unsupported fixed kind: uintptr", func() { GetFixed(make([]byte, 8), reflect.Uintptr) })
}
