// Package scanvalue models scalar values that may hold several numeric
// interpretations at once, as a memory scanner sees them.
//
// A scan cannot tell whether four bytes in memory are a uint32, an int32 or a
// float32, and a search literal such as "5" is a valid u8 as much as a float64.
// Value keeps one 8-byte little-endian buffer plus a Flags record naming every
// interpretation still believed valid. UserValue is the parsed search side:
// either a numeric literal with canonical int64/float32/float64 storage, a
// bytearray pattern with wildcards, or a plain string.
//
// Parsers (ParseInt, ParseFloat, ParseNumber, ParsePattern, ParseString) never
// leave a partially filled result behind; Format never fails and falls back to
// "unknown, [unknown]".
package scanvalue
