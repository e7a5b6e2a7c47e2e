package astparser

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/identkeyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/keyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/token"
)

func (p *Parser) read() token.Token {
	return p.tokenizer.Read()
}

func (p *Parser) peekToken() token.Token {
	return p.tokenizer.Peek()
}

func (p *Parser) peek() keyword.Keyword {
	return p.tokenizer.Peek().Keyword
}

// lookahead returns the token one past the current one. Its only caller is
// the description/keyword dispatch in parseTypeSystemDefinition.
func (p *Parser) lookahead() token.Token {
	return p.tokenizer.Lookahead()
}

func (p *Parser) peekEquals(key keyword.Keyword) bool {
	return p.peek() == key
}

func (p *Parser) peekEqualsIdentKey(identKey identkeyword.IdentKeyword) bool {
	next := p.peekToken()
	if next.Keyword != keyword.IDENT {
		return false
	}
	return identkeyword.KeywordFromLiteral(next.Literal) == identKey
}

// expectToken consumes and returns the current token if it has the given
// kind, otherwise it raises a syntax error. Punctuators and EOF match by
// identity; IDENT and the scalar kinds match any token of their class since
// payloads vary.
func (p *Parser) expectToken(key keyword.Keyword) token.Token {
	next := p.read()
	if next.Keyword != key {
		p.errSyntax(next, key.String())
	}
	return next
}

// expectKeyword consumes the current token, which must be an IDENT whose
// literal is the given word.
func (p *Parser) expectKeyword(identKey identkeyword.IdentKeyword) token.Token {
	next := p.read()
	if next.Keyword != keyword.IDENT || identkeyword.KeywordFromLiteral(next.Literal) != identKey {
		p.errSyntax(next, identKey.String())
	}
	return next
}

// expectOptionalToken consumes and returns the current token only on a kind
// match. No match means no consumption and no error.
func (p *Parser) expectOptionalToken(key keyword.Keyword) (token.Token, bool) {
	if p.err != nil || !p.peekEquals(key) {
		return token.Token{}, false
	}
	return p.read(), true
}

func (p *Parser) expectOptionalKeyword(identKey identkeyword.IdentKeyword) (token.Token, bool) {
	if p.err != nil || !p.peekEqualsIdentKey(identKey) {
		return token.Token{}, false
	}
	return p.read(), true
}

func (p *Parser) errSyntax(got token.Token, expected string) {
	if p.err != nil {
		return
	}
	p.err = ErrSyntax{
		Source:   p.source,
		Got:      got,
		Expected: expected,
	}
}

func (p *Parser) errUnexpectedToken(got token.Token) {
	if p.err != nil {
		return
	}
	p.err = ErrUnexpectedToken{
		Source: p.source,
		Got:    got,
	}
}

// The three bracketed-list shapes. Every delimited production in the
// grammar maps to exactly one of them; the difference between many and
// anyOf is whether the closing check runs after or before each item, which
// is what decides whether the list may be empty.

// many requires the opening token and at least one item.
func many[T any](p *Parser, open, close keyword.Keyword, parse func() T) (token.Token, []T) {
	openToken := p.expectToken(open)
	nodes := make([]T, 0, 4)
	for {
		if p.err != nil {
			return openToken, nil
		}
		nodes = append(nodes, parse())
		if p.err != nil {
			return openToken, nil
		}
		if _, ok := p.expectOptionalToken(close); ok {
			return openToken, nodes
		}
	}
}

// optionalMany returns an empty list without consuming anything when the
// opening token is absent; once opened it behaves like many.
func optionalMany[T any](p *Parser, open, close keyword.Keyword, parse func() T) (token.Token, []T) {
	openToken, ok := p.expectOptionalToken(open)
	if !ok {
		return openToken, []T{}
	}
	nodes := make([]T, 0, 4)
	for {
		if p.err != nil {
			return openToken, nil
		}
		nodes = append(nodes, parse())
		if p.err != nil {
			return openToken, nil
		}
		if _, ok := p.expectOptionalToken(close); ok {
			return openToken, nodes
		}
	}
}

// anyOf requires the opening token and allows zero items.
func anyOf[T any](p *Parser, open, close keyword.Keyword, parse func() T) (token.Token, []T) {
	openToken := p.expectToken(open)
	nodes := make([]T, 0, 4)
	for {
		if p.err != nil {
			return openToken, nil
		}
		if _, ok := p.expectOptionalToken(close); ok {
			return openToken, nodes
		}
		nodes = append(nodes, parse())
	}
}
