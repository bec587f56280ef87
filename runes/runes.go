// Package runes contains some generally useful operations on runes.
package runes

import (
	"unicode/utf8"
)

// First returns the first rune of s. If the string is empty or not proper
// UTF-8, returns false.
func First(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size < 2 {
		return 0, false
	}
	return r, true
}
