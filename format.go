package scanvalue

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Fallback is what Format prints for a value it cannot render.
const Fallback = "unknown, [unknown]"

// Format renders v as "<value>, [<types>]", e.g. "1234, [I64u ]".
// It never fails: a value without tags renders as Fallback.
func Format(v Value) string {
	out, ok := format(&v)
	if !ok {
		return Fallback
	}
	return out
}

// FormatN is Format bounded by a destination of capacity bytes, one of which
// is reserved for a terminator. Output that does not fit is replaced by
// Fallback, itself cut to the capacity.
func FormatN(v Value, capacity int) string {
	out, ok := format(&v)
	if ok && len(out) < capacity-1 {
		return out
	}
	if ok {
		Logger().Debug("formatted value does not fit",
			zap.Int("length", len(out)), zap.Int("capacity", capacity))
	}
	if capacity <= 0 {
		return ""
	}
	if capacity-1 < len(Fallback) {
		return Fallback[:capacity-1]
	}
	return Fallback
}

func format(v *Value) (string, bool) {
	types := annotation(v.Flags)
	if len(types) <= 2 {
		Logger().Debug("BUG: value has no type", zap.Any("flags", v.Flags))
		return "", false
	}
	text, ok := formatNumber(v)
	if !ok {
		Logger().Debug("BUG: no formatting found", zap.Any("flags", v.Flags))
		return "", false
	}
	return text + ", " + types, true
}

// annotation lists the active tags, widest integer first then floats.
func annotation(f Flags) string {
	var b strings.Builder
	b.WriteByte('[')
	intCode(&b, "I64", f.U64, f.S64)
	intCode(&b, "I32", f.U32, f.S32)
	intCode(&b, "I16", f.U16, f.S16)
	intCode(&b, "I8", f.U8, f.S8)
	if f.F64 {
		b.WriteString("F64 ")
	}
	if f.F32 {
		b.WriteString("F32 ")
	}
	b.WriteByte(']')
	return b.String()
}

func intCode(b *strings.Builder, code string, unsigned, signed bool) {
	switch {
	case unsigned && signed:
		b.WriteString(code + " ")
	case unsigned:
		b.WriteString(code + "u ")
	case signed:
		b.WriteString(code + "s ")
	}
}

func formatNumber(v *Value) (string, bool) {
	f := v.Flags
	width, unsigned := 0, false
	switch {
	case f.U64:
		width, unsigned = 8, true
	case f.S64:
		width = 8
	case f.U32:
		width, unsigned = 4, true
	case f.S32:
		width = 4
	case f.U16:
		width, unsigned = 2, true
	case f.S16:
		width = 2
	case f.U8:
		width, unsigned = 1, true
	case f.S8:
		width = 1
	}
	switch {
	case width > 0:
		return formatInteger(v, width, unsigned), true
	case f.F64:
		return formatFloat(v.F64()), true
	case f.F32:
		return formatFloat(float64(v.F32())), true
	}
	return "", false
}

// formatInteger reads v through the native integer type of the given width.
func formatInteger(v *Value, width int, unsigned bool) string {
	switch {
	case width == 8:
		if unsigned {
			return strconv.FormatUint(GetULongLong(v), 10)
		}
		return strconv.FormatInt(GetSLongLong(v), 10)
	case width == strconv.IntSize/8:
		if unsigned {
			return strconv.FormatUint(uint64(GetUInt(v)), 10)
		}
		return strconv.FormatInt(int64(GetSInt(v)), 10)
	case width == 4:
		if unsigned {
			return strconv.FormatUint(uint64(Native[uint32](v)), 10)
		}
		return strconv.FormatInt(int64(Native[int32](v)), 10)
	case width == 2:
		if unsigned {
			return strconv.FormatUint(uint64(GetUShort(v)), 10)
		}
		return strconv.FormatInt(int64(GetSShort(v)), 10)
	default:
		if unsigned {
			return strconv.FormatUint(uint64(GetUChar(v)), 10)
		}
		return strconv.FormatInt(int64(GetSChar(v)), 10)
	}
}

// formatFloat matches printf %g: six significant digits, lowercase inf/nan.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
