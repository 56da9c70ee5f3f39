// Package hash provides the identity hash used for styled definitions.
package hash

import (
	"strconv"
	"unicode/utf16"
)

// Prefix is prepended to every hash so the result is a valid CSS class name.
const Prefix = "tw-"

// Cyrb32 returns a short, selector-safe hash of value: "tw-" followed by the
// base36 form of a 32-bit multiply-xor hash over the UTF-16 code units of
// value, consumed from the last unit to the first.
//
// The output matches twind's hash, so identifiers are interchangeable with
// those twind emits for the same input.
func Cyrb32(value string) string {
	units := utf16.Encode([]rune(value))

	h := uint32(9)
	for i := len(units) - 1; i >= 0; i-- {
		h = (h ^ uint32(units[i])) * 0x5f356495
	}

	return Prefix + strconv.FormatUint(uint64(h^(h>>9)), 36)
}
