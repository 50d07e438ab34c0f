package scanvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNativeAccessors(t *testing.T) {
	var v Value
	v.SetS64(-2)

	assert.Equal(t, int8(-2), GetSChar(&v))
	assert.Equal(t, uint8(0xFE), GetUChar(&v))
	assert.Equal(t, int16(-2), GetSShort(&v))
	assert.Equal(t, uint16(0xFFFE), GetUShort(&v))
	assert.Equal(t, -2, GetSInt(&v))
	assert.Equal(t, ^uint(1), GetUInt(&v))
	assert.Equal(t, int64(-2), GetSLongLong(&v))
	assert.Equal(t, ^uint64(1), GetULongLong(&v))
	assert.Equal(t, ^uintptr(1), GetUintptr(&v))
}

func TestNativeMatchesFixedWidth(t *testing.T) {
	var v Value
	v.SetU64(0x8000_0000_8000_8080)

	assert.Equal(t, v.S8(), Native[int8](&v))
	assert.Equal(t, v.U16(), Native[uint16](&v))
	assert.Equal(t, v.S32(), Native[int32](&v))
	assert.Equal(t, v.U32(), Native[uint32](&v))
	assert.Equal(t, v.S64(), Native[int64](&v))

	type handle uint16
	assert.Equal(t, handle(0x8080), Native[handle](&v))
}
