// Package theme resolves stable, seeded picks from the visual theme catalog.
package theme

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Resolve maps seed parts and a variation index onto [0, catalogSize).
//
// The parts and index are concatenated and hashed with a 31-multiplier
// rolling hash over UTF-16 code units in 32-bit arithmetic, so the result is
// a pure function of its inputs.
func Resolve(seedParts []string, variationIndex, catalogSize int) int {
	if catalogSize <= 0 {
		return 0
	}
	h := int64(Hash(strings.Join(seedParts, "") + strconv.Itoa(variationIndex)))
	if h < 0 {
		h = -h
	}
	return int(h % int64(catalogSize))
}

// Hash is the 32-bit rolling string hash used by Resolve.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}
