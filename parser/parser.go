// Package parser implements the lexer and recursive-descent parser for the
// propositional formula syntax.
//
// The grammar, from loosest to tightest binding power:
//
//	iff     := implies ( '<->' implies )*
//	implies := xor ( '->' xor )*
//	xor     := or ( XOR or )*
//	or      := and ( OR and )*
//	and     := not ( AND not )*
//	not     := NOT not | primary
//	primary := ATOM | '(' iff ')'
//
// All binary operators are left-associative, so "A -> B -> C" parses as
// "(A -> B) -> C". Operator keywords are case-insensitive and have the
// symbolic aliases '~' (NOT), '&' (AND) and '|' (OR).
package parser

import (
	"fmt"

	"github.com/rulekit/rulekit/logic"
)

// ParseError contains data about a grammar violation.
type ParseError struct {
	// Pos is the rune offset where the violation was detected.
	Pos int
	// Expected describes the token class the grammar required.
	Expected string
	// Found is the offending token as written, or "end of formula".
	Found string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("at position %d: expected %s, found %s", err.Pos, err.Expected, err.Found)
}

// Parse parses text into a formula. It fails with a *LexError or *ParseError
// on malformed input; no partial formula is ever returned.
func Parse(text string) (logic.Formula, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token list, as produced by Tokenize, into a formula.
// The whole list must form a single formula: trailing tokens after a complete
// expression are a *ParseError.
func ParseTokens(tokens []Token) (logic.Formula, error) {
	p := &parser{tokens: tokens}
	f, err := p.iff()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, &ParseError{tok.Pos, "end of formula", found(tok)}
	}
	return f, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{TokenEOF, "", p.pos}
	}
	return p.tokens[p.pos]
}

// accept consumes the current token if it has the given kind.
func (p *parser) accept(kind TokenKind) bool {
	if p.current().Kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return Token{}, &ParseError{tok.Pos, kind.String(), found(tok)}
	}
	p.pos++
	return tok, nil
}

func found(tok Token) string {
	if tok.Kind == TokenEOF {
		return "end of formula"
	}
	return fmt.Sprintf("%q", tok.Text)
}

// binary parses a left-associative chain of a single operator over the next
// tighter level.
func (p *parser) binary(op TokenKind, next func() (logic.Formula, error), combine func(left, right logic.Formula) logic.Formula) (logic.Formula, error) {
	f, err := next()
	if err != nil {
		return nil, err
	}
	for p.accept(op) {
		right, err := next()
		if err != nil {
			return nil, err
		}
		f = combine(f, right)
	}
	return f, nil
}

func (p *parser) iff() (logic.Formula, error) {
	return p.binary(TokenIff, p.implies, func(l, r logic.Formula) logic.Formula { return logic.NewIff(l, r) })
}

func (p *parser) implies() (logic.Formula, error) {
	return p.binary(TokenImplies, p.xor, func(l, r logic.Formula) logic.Formula { return logic.NewImplies(l, r) })
}

func (p *parser) xor() (logic.Formula, error) {
	return p.binary(TokenXor, p.or, func(l, r logic.Formula) logic.Formula { return logic.NewXor(l, r) })
}

func (p *parser) or() (logic.Formula, error) {
	return p.binary(TokenOr, p.and, func(l, r logic.Formula) logic.Formula { return logic.NewOr(l, r) })
}

func (p *parser) and() (logic.Formula, error) {
	return p.binary(TokenAnd, p.not, func(l, r logic.Formula) logic.Formula { return logic.NewAnd(l, r) })
}

func (p *parser) not() (logic.Formula, error) {
	if p.accept(TokenNot) {
		operand, err := p.not()
		if err != nil {
			return nil, err
		}
		return logic.NewNot(operand), nil
	}
	return p.primary()
}

func (p *parser) primary() (logic.Formula, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenAtom:
		p.pos++
		return logic.Atom{Name: tok.Text}, nil
	case TokenLParen:
		p.pos++
		f, err := p.iff()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, &ParseError{tok.Pos, "atom or '('", found(tok)}
}
