package scanvalue

import "testing"

func BenchmarkParseNumberInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseNumber("0x7fff")
	}
}

func BenchmarkParseNumberFloat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ParseNumber("1234.5678")
	}
}

func BenchmarkParsePattern(b *testing.B) {
	tokens := []string{"DE", "AD", "??", "EF", "00", "??", "7F", "45"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		u, _ := ParsePattern(tokens)
		u.Release()
	}
}

func BenchmarkFormat(b *testing.B) {
	v := Value{Flags: FlagsOf(TagU32, TagS32, TagF32)}
	v.SetU32(123456)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Format(v)
	}
}

func BenchmarkProject(b *testing.B) {
	u, _ := ParseNumber("42")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := Value{Flags: FlagsOf(TagU8, TagS8, TagU16, TagS16)}
		_ = Project(&v, u)
	}
}
