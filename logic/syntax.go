package logic

import (
	"github.com/rulekit/rulekit/runes"
)

// IsAtomFirst reports whether ch may start an atom identifier.
func IsAtomFirst(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsAtomChar reports whether ch may appear in an atom identifier after the
// first character.
func IsAtomChar(ch rune) bool {
	return IsAtomFirst(ch) || (ch >= '0' && ch <= '9')
}

// IsAtomName reports whether text is a valid atom identifier, that is,
// matches [A-Za-z_][A-Za-z0-9_]*. Atom names are ASCII-only; the operator
// keywords NOT, AND, OR and XOR are valid names here, since keyword
// recognition is the lexer's concern.
func IsAtomName(text string) bool {
	ch, ok := runes.First(text)
	if !ok || !IsAtomFirst(ch) {
		return false
	}
	for _, ch := range text {
		if !IsAtomChar(ch) {
			return false
		}
	}
	return true
}
