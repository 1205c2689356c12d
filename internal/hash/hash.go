// Package hash implements the name hash Qt's resource compiler uses to
// order a directory's children, the same bespoke hash exposed by
// Qt's internal qt_hash() helper. Lookup correctness in the resolver
// depends bit-for-bit on this function matching the writer's.
package hash

import "unicode/utf16"

// Hash computes the 28-bit hash of key, starting from the given chaining
// value (pass 0 for a fresh hash). It walks the UTF-16 code units of key
// in source order.
func Hash(key string, chained uint32) uint32 {
	result := chained
	for _, c := range utf16.Encode([]rune(key)) {
		result = (result << 4) + uint32(c)
		result ^= (result & 0xf0000000) >> 23
		result &= 0x0fffffff
	}
	return result
}
