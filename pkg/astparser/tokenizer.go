package astparser

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/keyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/token"
)

// Tokenizer takes a raw input and turns it into a set of tokens. Tokens are
// materialized upfront; the grammar needs at most one token of lookahead and
// never touches the lexer again after Tokenize returns.
type Tokenizer struct {
	lexer        *lexer.Lexer
	tokens       []token.Token
	maxTokens    int
	currentToken int
	skipComments bool
}

// NewTokenizer returns a new tokenizer
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		tokens:       make([]token.Token, 0, 64),
		lexer:        lexer.NewLexer(),
		skipComments: true,
	}
}

// Tokenize lexes the whole source. The terminating EOF token is kept so its
// position (the end of input) survives into error reporting. The first
// lexical error aborts and is returned as is.
func (t *Tokenizer) Tokenize(source string) error {
	t.lexer.SetInput(source)
	t.tokens = t.tokens[:0]
	t.maxTokens = 0
	t.currentToken = -1

	for {
		next, err := t.lexer.Read()
		if err != nil {
			return err
		}
		if t.skipComments && next.Keyword == keyword.COMMENT {
			continue
		}
		t.tokens = append(t.tokens, next)
		if next.Keyword == keyword.EOF {
			t.maxTokens = len(t.tokens)
			return nil
		}
	}
}

// Read - increments currentToken index and returns the now-current token.
// Once the stream is exhausted it keeps returning the EOF token.
func (t *Tokenizer) Read() token.Token {
	if t.maxTokens == 0 {
		return token.Token{Keyword: keyword.EOF}
	}
	if t.currentToken+1 < t.maxTokens {
		t.currentToken++
	}
	return t.tokens[t.currentToken]
}

// Peek - returns the token next to currentToken without advancing.
func (t *Tokenizer) Peek() token.Token {
	return t.peek(0)
}

// Lookahead - returns the token one past Peek without advancing. This is
// the stream's entire lookahead surface; the grammar never needs more.
func (t *Tokenizer) Lookahead() token.Token {
	return t.peek(1)
}

func (t *Tokenizer) peek(skip int) token.Token {
	if t.maxTokens == 0 {
		return token.Token{Keyword: keyword.EOF}
	}
	nextIndex := t.currentToken + 1 + skip
	if nextIndex > t.maxTokens-1 {
		nextIndex = t.maxTokens - 1
	}
	return t.tokens[nextIndex]
}
