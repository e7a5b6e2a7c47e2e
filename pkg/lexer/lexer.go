// Package lexer turns a GraphQL source string into tokens.
package lexer

import (
	"fmt"

	"github.com/wundergraph/graphql-syntax/pkg/lexer/keyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/runes"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/token"
)

// Lexer reads a source string byte by byte and emits tokens. Literals are
// views into the input string, never copies.
type Lexer struct {
	input         string
	inputPosition int
	line          int
	char          int
	prev          byte
}

// Error is a lexical error. The parser treats the first one as fatal.
type Error struct {
	Message  string
	Position position.Position
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at position %s", e.Message, e.Position)
}

func NewLexer() *Lexer {
	return &Lexer{}
}

// SetInput sets a new source and resets all position state.
func (l *Lexer) SetInput(input string) {
	l.input = input
	l.inputPosition = 0
	l.line = 0
	l.char = 0
	l.prev = 0
}

// Read emits the next token. At the end of input it returns an EOF token
// positioned at len(input); reading past that keeps returning EOF.
func (l *Lexer) Read() (token.Token, error) {
	l.skipIgnored()

	pos := l.position()

	next := l.peekByte()
	switch next {
	case runes.EOF:
		return token.Token{Keyword: keyword.EOF, TextPosition: pos}, nil
	case runes.HASHTAG:
		return l.readComment(pos), nil
	case runes.QUOTE:
		return l.readString(pos)
	case runes.DOT:
		return l.readSpread(pos)
	case runes.COLON:
		return l.readPunctuator(keyword.COLON, pos), nil
	case runes.BANG:
		return l.readPunctuator(keyword.BANG, pos), nil
	case runes.DOLLAR:
		return l.readPunctuator(keyword.DOLLAR, pos), nil
	case runes.AT:
		return l.readPunctuator(keyword.AT, pos), nil
	case runes.PIPE:
		return l.readPunctuator(keyword.PIPE, pos), nil
	case runes.EQUALS:
		return l.readPunctuator(keyword.EQUALS, pos), nil
	case runes.AND:
		return l.readPunctuator(keyword.AND, pos), nil
	case runes.LPAREN:
		return l.readPunctuator(keyword.LPAREN, pos), nil
	case runes.RPAREN:
		return l.readPunctuator(keyword.RPAREN, pos), nil
	case runes.LBRACK:
		return l.readPunctuator(keyword.LBRACK, pos), nil
	case runes.RBRACK:
		return l.readPunctuator(keyword.RBRACK, pos), nil
	case runes.LBRACE:
		return l.readPunctuator(keyword.LBRACE, pos), nil
	case runes.RBRACE:
		return l.readPunctuator(keyword.RBRACE, pos), nil
	}

	if next == runes.SUB || byteIsDigit(next) {
		return l.readNumber(pos)
	}

	if byteIsIdentStart(next) {
		return l.readIdent(pos), nil
	}

	l.advance()
	return token.Token{TextPosition: pos}, Error{
		Message:  fmt.Sprintf("unexpected character %q", next),
		Position: pos,
	}
}

func (l *Lexer) position() position.Position {
	return position.Position{
		Offset: l.inputPosition,
		Line:   l.line,
		Char:   l.char,
	}
}

func (l *Lexer) peekByte() byte {
	if l.inputPosition < len(l.input) {
		return l.input[l.inputPosition]
	}
	return runes.EOF
}

func (l *Lexer) peekEquals(equals string) bool {
	end := l.inputPosition + len(equals)
	if end > len(l.input) {
		return false
	}
	return l.input[l.inputPosition:end] == equals
}

func (l *Lexer) advance() byte {
	b := l.input[l.inputPosition]
	l.inputPosition++

	switch b {
	case runes.LINETERMINATOR:
		if l.prev == runes.CARRIAGERETURN {
			// \r\n already counted at the \r
			break
		}
		l.line++
		l.char = 0
	case runes.CARRIAGERETURN:
		l.line++
		l.char = 0
	default:
		l.char++
	}

	l.prev = b
	return b
}

func (l *Lexer) swallowAmount(amount int) {
	for i := 0; i < amount; i++ {
		l.advance()
	}
}

func (l *Lexer) skipIgnored() {
	for {
		switch l.peekByte() {
		case runes.SPACE, runes.TAB, runes.COMMA, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			l.advance()
		case 0xEF:
			// byte order mark
			if !l.peekEquals("\xEF\xBB\xBF") {
				return
			}
			l.swallowAmount(3)
		default:
			return
		}
	}
}

func (l *Lexer) readPunctuator(key keyword.Keyword, pos position.Position) token.Token {
	l.advance()
	return token.Token{Keyword: key, TextPosition: pos}
}

func (l *Lexer) readIdent(pos position.Position) token.Token {
	start := l.inputPosition
	for byteIsIdent(l.peekByte()) {
		l.advance()
	}
	return token.Token{
		Keyword:      keyword.IDENT,
		Literal:      l.input[start:l.inputPosition],
		TextPosition: pos,
	}
}

func (l *Lexer) readComment(pos position.Position) token.Token {
	l.advance()
	start := l.inputPosition
	for {
		switch l.peekByte() {
		case runes.EOF, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			return token.Token{
				Keyword:      keyword.COMMENT,
				Literal:      l.input[start:l.inputPosition],
				TextPosition: pos,
			}
		default:
			l.advance()
		}
	}
}

func (l *Lexer) readSpread(pos position.Position) (token.Token, error) {
	if !l.peekEquals("...") {
		l.advance()
		return token.Token{TextPosition: pos}, Error{
			Message:  "invalid '.', expected spread '...'",
			Position: pos,
		}
	}
	l.swallowAmount(3)
	return token.Token{Keyword: keyword.SPREAD, TextPosition: pos}, nil
}

func (l *Lexer) readNumber(pos position.Position) (token.Token, error) {
	start := l.inputPosition

	if l.peekByte() == runes.SUB {
		l.advance()
	}

	if !byteIsDigit(l.peekByte()) {
		return token.Token{TextPosition: pos}, Error{
			Message:  "invalid number, expected digit",
			Position: l.position(),
		}
	}

	if l.advance() == '0' && byteIsDigit(l.peekByte()) {
		return token.Token{TextPosition: pos}, Error{
			Message:  "invalid number, unexpected digit after 0",
			Position: l.position(),
		}
	}
	for byteIsDigit(l.peekByte()) {
		l.advance()
	}

	key := keyword.INTEGER

	if l.peekByte() == runes.DOT {
		l.advance()
		if !byteIsDigit(l.peekByte()) {
			return token.Token{TextPosition: pos}, Error{
				Message:  "invalid float, expected digit after dot",
				Position: l.position(),
			}
		}
		for byteIsDigit(l.peekByte()) {
			l.advance()
		}
		key = keyword.FLOAT
	}

	if b := l.peekByte(); b == 'e' || b == 'E' {
		l.advance()
		if b := l.peekByte(); b == runes.SUB || b == runes.PLUS {
			l.advance()
		}
		if !byteIsDigit(l.peekByte()) {
			return token.Token{TextPosition: pos}, Error{
				Message:  "invalid float, expected digit in exponent",
				Position: l.position(),
			}
		}
		for byteIsDigit(l.peekByte()) {
			l.advance()
		}
		key = keyword.FLOAT
	}

	return token.Token{
		Keyword:      key,
		Literal:      l.input[start:l.inputPosition],
		TextPosition: pos,
	}, nil
}

func (l *Lexer) readString(pos position.Position) (token.Token, error) {
	l.advance()

	if l.peekEquals(`""`) {
		l.swallowAmount(2)
		return l.readBlockString(pos)
	}

	return l.readSingleLineString(pos)
}

// readSingleLineString carries the literal raw, escape sequences included.
// Escape interpretation is the consumer's business, not the token stream's.
func (l *Lexer) readSingleLineString(pos position.Position) (token.Token, error) {
	start := l.inputPosition
	escaped := false

	for {
		switch l.peekByte() {
		case runes.EOF, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			return token.Token{TextPosition: pos}, Error{
				Message:  "unterminated string",
				Position: pos,
			}
		case runes.QUOTE:
			l.advance()
			if escaped {
				escaped = false
				continue
			}
			return token.Token{
				Keyword:      keyword.STRING,
				Literal:      l.input[start : l.inputPosition-1],
				TextPosition: pos,
			}, nil
		case runes.BACKSLASH:
			l.advance()
			escaped = !escaped
		default:
			l.advance()
			escaped = false
		}
	}
}

func (l *Lexer) readBlockString(pos position.Position) (token.Token, error) {
	start := l.inputPosition
	escaped := false

	for {
		switch l.peekByte() {
		case runes.EOF:
			return token.Token{TextPosition: pos}, Error{
				Message:  "unterminated block string",
				Position: pos,
			}
		case runes.QUOTE:
			l.advance()
			if escaped {
				escaped = false
				continue
			}
			if l.peekEquals(`""`) {
				end := l.inputPosition - 1
				l.swallowAmount(2)
				return token.Token{
					Keyword:      keyword.BLOCKSTRING,
					Literal:      l.input[start:end],
					TextPosition: pos,
				}, nil
			}
		case runes.BACKSLASH:
			l.advance()
			escaped = !escaped
		default:
			l.advance()
			escaped = false
		}
	}
}

func byteIsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func byteIsIdentStart(b byte) bool {
	return b == runes.UNDERSCORE ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func byteIsIdent(b byte) bool {
	return byteIsIdentStart(b) || byteIsDigit(b)
}
