package scanvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatIntegers(t *testing.T) {
	u64 := Value{Flags: FlagsOf(TagU64)}
	u64.SetU64(1234)

	both32 := Value{Flags: FlagsOf(TagU32, TagS32)}
	both32.SetS32(-5)

	s16 := Value{Flags: FlagsOf(TagS16)}
	s16.SetS16(-5)

	mixed := Value{Flags: FlagsOf(TagU8, TagS64)}
	mixed.SetS64(-1)

	small := Value{Flags: FlagsOf(TagU8, TagS8, TagU16)}
	small.SetU16(200)

	s8 := Value{Flags: FlagsOf(TagS8)}
	s8.SetS8(-128)

	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"u64", u64, "1234, [I64u ]"},
		{"unsigned preferred", both32, "4294967291, [I32 ]"},
		{"s16", s16, "-5, [I16s ]"},
		{"widest wins", mixed, "-1, [I64s I8u ]"},
		{"narrow mix", small, "200, [I16u I8 ]"},
		{"s8", s8, "-128, [I8s ]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.v), c.name)
	}
}

func TestFormatFloats(t *testing.T) {
	cases := []struct {
		f64  float64
		want string
	}{
		{1234.5678, "1234.57, [F64 ]"},
		{5, "5, [F64 ]"},
		{1e20, "1e+20, [F64 ]"},
		{0.00001, "1e-05, [F64 ]"},
		{math.Inf(1), "inf, [F64 ]"},
		{math.Inf(-1), "-inf, [F64 ]"},
		{math.NaN(), "nan, [F64 ]"},
	}
	for _, c := range cases {
		v := Value{Flags: FlagsOf(TagF64)}
		v.SetF64(c.f64)
		assert.Equal(t, c.want, Format(v))
	}

	f32 := Value{Flags: FlagsOf(TagF32)}
	f32.SetF32(0.1)
	assert.Equal(t, "0.1, [F32 ]", Format(f32))

	both := Value{Flags: FlagsOf(TagF32, TagF64)}
	both.SetF64(2.5)
	assert.Equal(t, "2.5, [F64 F32 ]", Format(both))
}

func TestFormatAnnotationOrder(t *testing.T) {
	v := Value{Flags: FlagsOf(AllTags...)}
	v.SetU64(5)
	assert.Equal(t, "5, [I64 I32 I16 I8 F64 F32 ]", Format(v))
	assert.Equal(t, "5, [I64 I32 I16 I8 F64 F32 ]", v.String())
}

func TestFormatFallback(t *testing.T) {
	assert.Equal(t, "unknown, [unknown]", Format(Value{}))
	assert.Equal(t, Fallback, Format(Value{Flags: Flags{Length: 3}}))
}

func TestFormatNCapacity(t *testing.T) {
	v := Value{Flags: FlagsOf(TagU64)}
	v.SetU64(1234)
	// "1234, [I64u ]" is 13 bytes
	assert.Equal(t, "1234, [I64u ]", FormatN(v, 15))
	assert.Equal(t, "unknown, [unk", FormatN(v, 14))
	assert.Equal(t, Fallback, FormatN(Value{}, 64))
	assert.Equal(t, "unkn", FormatN(Value{}, 5))
	assert.Equal(t, "", FormatN(v, 1))
	assert.Equal(t, "", FormatN(v, 0))
	assert.Equal(t, "", FormatN(v, -3))
}

func TestFormatLogsInternalFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Format(Value{})
	require.Equal(t, 1, logs.FilterMessage("BUG: value has no type").Len())

	v := Value{Flags: FlagsOf(TagU8)}
	FormatN(v, 3)
	require.Equal(t, 1, logs.FilterMessage("formatted value does not fit").Len())
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.Equal(t, Fallback, Format(Value{}))
}
