package parser

import (
	"fmt"
	"unicode"

	"github.com/rulekit/rulekit/logic"
)

// TokenKind identifies the kind of a lexed token.
type TokenKind int

const (
	TokenAtom TokenKind = iota
	TokenNot
	TokenAnd
	TokenOr
	TokenXor
	TokenImplies
	TokenIff
	TokenLParen
	TokenRParen
	TokenEOF
)

var tokenKindNames = map[TokenKind]string{
	TokenAtom:    "atom",
	TokenNot:     "NOT",
	TokenAnd:     "AND",
	TokenOr:      "OR",
	TokenXor:     "XOR",
	TokenImplies: "'->'",
	TokenIff:     "'<->'",
	TokenLParen:  "'('",
	TokenRParen:  "')'",
	TokenEOF:     "end of formula",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical element of a formula. Tokens are immutable once
// produced.
type Token struct {
	Kind TokenKind
	// Text is the token as written, e.g. "&" for an AND token. Empty for EOF.
	Text string
	// Pos is the rune offset of the token in the input.
	Pos int
}

// LexError contains data about a character that cannot start any valid token.
type LexError struct {
	Pos  int
	Char rune
}

func (err *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", err.Char, err.Pos)
}

// Keyword operators, matched case-insensitively as whole identifiers. Any
// other identifier is an atom.
var keywords = map[string]TokenKind{
	"NOT": TokenNot,
	"AND": TokenAnd,
	"OR":  TokenOr,
	"XOR": TokenXor,
}

// Tokenize converts a formula string into a list of tokens, ending with an
// EOF token. Whitespace separates tokens and is discarded.
//
// The multi-character operators are matched greedily: "<->" is tried before
// "->", so a bare '<' or '-' that doesn't complete an operator is a
// *LexError.
func Tokenize(text string) ([]Token, error) {
	rs := []rune(text)
	var tokens []Token
	i := 0
	for i < len(rs) {
		ch := rs[i]
		switch {
		case unicode.IsSpace(ch):
			i++
		case ch == '(':
			tokens = append(tokens, Token{TokenLParen, "(", i})
			i++
		case ch == ')':
			tokens = append(tokens, Token{TokenRParen, ")", i})
			i++
		case ch == '~':
			tokens = append(tokens, Token{TokenNot, "~", i})
			i++
		case ch == '&':
			tokens = append(tokens, Token{TokenAnd, "&", i})
			i++
		case ch == '|':
			tokens = append(tokens, Token{TokenOr, "|", i})
			i++
		case ch == '<':
			if !hasPrefix(rs[i:], "<->") {
				return nil, &LexError{i, ch}
			}
			tokens = append(tokens, Token{TokenIff, "<->", i})
			i += 3
		case ch == '-':
			if !hasPrefix(rs[i:], "->") {
				return nil, &LexError{i, ch}
			}
			tokens = append(tokens, Token{TokenImplies, "->", i})
			i += 2
		case logic.IsAtomFirst(ch):
			start := i
			for i < len(rs) && logic.IsAtomChar(rs[i]) {
				i++
			}
			ident := string(rs[start:i])
			kind := TokenAtom
			if k, ok := keywords[upper(ident)]; ok {
				kind = k
			}
			tokens = append(tokens, Token{kind, ident, start})
		default:
			return nil, &LexError{i, ch}
		}
	}
	return append(tokens, Token{TokenEOF, "", len(rs)}), nil
}

func hasPrefix(rs []rune, prefix string) bool {
	for i, ch := range []rune(prefix) {
		if i >= len(rs) || rs[i] != ch {
			return false
		}
	}
	return true
}

// upper is an ASCII-only strings.ToUpper: atom identifiers can't contain
// non-ASCII letters, so Unicode case folding is unnecessary.
func upper(s string) string {
	bs := []byte(s)
	for i, b := range bs {
		if b >= 'a' && b <= 'z' {
			bs[i] = b - 'a' + 'A'
		}
	}
	return string(bs)
}
