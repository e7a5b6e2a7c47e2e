package lexer

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/jensneuse/diffview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/graphql-syntax/pkg/lexer/keyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
	"github.com/wundergraph/graphql-syntax/pkg/testing/goldie"
)

func TestLexer_Read(t *testing.T) {

	type checkFunc func(lex *Lexer, i int)

	run := func(inStr string, checks ...checkFunc) {
		lex := NewLexer()
		lex.SetInput(inStr)
		for i := range checks {
			checks[i](lex, i+1)
		}
	}

	mustRead := func(k keyword.Keyword, wantLiteral string) checkFunc {
		return func(lex *Lexer, i int) {
			tok, err := lex.Read()
			if err != nil {
				panic(fmt.Errorf("mustRead: %w [check: %d]", err, i))
			}
			if k != tok.Keyword {
				panic(fmt.Errorf("mustRead: want(keyword): %s, got: %s [check: %d]", k, tok, i))
			}
			if wantLiteral != tok.Literal {
				panic(fmt.Errorf("mustRead: want(literal): %q, got: %q [check: %d]", wantLiteral, tok.Literal, i))
			}
		}
	}

	mustReadAt := func(k keyword.Keyword, wantLiteral string, at position.Position) checkFunc {
		return func(lex *Lexer, i int) {
			tok, err := lex.Read()
			if err != nil {
				panic(fmt.Errorf("mustReadAt: %w [check: %d]", err, i))
			}
			if k != tok.Keyword || wantLiteral != tok.Literal {
				panic(fmt.Errorf("mustReadAt: want: %s %q, got: %s [check: %d]", k, wantLiteral, tok, i))
			}
			if at != tok.TextPosition {
				panic(fmt.Errorf("mustReadAt: want(position): %+v, got: %+v [check: %d]", at, tok.TextPosition, i))
			}
		}
	}

	mustErr := func() checkFunc {
		return func(lex *Lexer, i int) {
			tok, err := lex.Read()
			if err == nil {
				panic(fmt.Errorf("mustErr: want error, got: %s [check: %d]", tok, i))
			}
		}
	}

	t.Run("empty input", func(t *testing.T) {
		run("",
			mustReadAt(keyword.EOF, "", position.Position{Offset: 0, Line: 0, Char: 0}),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("punctuators", func(t *testing.T) {
		run("! $ ( ) [ ] { } : = @ | & ...",
			mustRead(keyword.BANG, ""),
			mustRead(keyword.DOLLAR, ""),
			mustRead(keyword.LPAREN, ""),
			mustRead(keyword.RPAREN, ""),
			mustRead(keyword.LBRACK, ""),
			mustRead(keyword.RBRACK, ""),
			mustRead(keyword.LBRACE, ""),
			mustRead(keyword.RBRACE, ""),
			mustRead(keyword.COLON, ""),
			mustRead(keyword.EQUALS, ""),
			mustRead(keyword.AT, ""),
			mustRead(keyword.PIPE, ""),
			mustRead(keyword.AND, ""),
			mustRead(keyword.SPREAD, ""),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("single dot is not a spread", func(t *testing.T) {
		run(".", mustErr())
	})
	t.Run("two dots are not a spread", func(t *testing.T) {
		run("..", mustErr())
	})
	t.Run("ident", func(t *testing.T) {
		run("foo _foo foo123 _123 __typename",
			mustRead(keyword.IDENT, "foo"),
			mustRead(keyword.IDENT, "_foo"),
			mustRead(keyword.IDENT, "foo123"),
			mustRead(keyword.IDENT, "_123"),
			mustRead(keyword.IDENT, "__typename"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("keywords are plain idents", func(t *testing.T) {
		run("query on true null fragment",
			mustRead(keyword.IDENT, "query"),
			mustRead(keyword.IDENT, "on"),
			mustRead(keyword.IDENT, "true"),
			mustRead(keyword.IDENT, "null"),
			mustRead(keyword.IDENT, "fragment"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("integers", func(t *testing.T) {
		run("0 4 123 -7 -0",
			mustRead(keyword.INTEGER, "0"),
			mustRead(keyword.INTEGER, "4"),
			mustRead(keyword.INTEGER, "123"),
			mustRead(keyword.INTEGER, "-7"),
			mustRead(keyword.INTEGER, "-0"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("floats", func(t *testing.T) {
		run("1.5 -1.5 0.0 1e10 1E10 1.5e-3 -1.5E+3",
			mustRead(keyword.FLOAT, "1.5"),
			mustRead(keyword.FLOAT, "-1.5"),
			mustRead(keyword.FLOAT, "0.0"),
			mustRead(keyword.FLOAT, "1e10"),
			mustRead(keyword.FLOAT, "1E10"),
			mustRead(keyword.FLOAT, "1.5e-3"),
			mustRead(keyword.FLOAT, "-1.5E+3"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("incomplete float", func(t *testing.T) {
		run("1.", mustErr())
	})
	t.Run("incomplete exponent", func(t *testing.T) {
		run("1e", mustErr())
	})
	t.Run("minus without digits", func(t *testing.T) {
		run("-", mustErr())
	})
	t.Run("leading zero", func(t *testing.T) {
		run("00", mustErr())
	})
	t.Run("strings", func(t *testing.T) {
		run(`"foo" "foo bar" ""`,
			mustRead(keyword.STRING, "foo"),
			mustRead(keyword.STRING, "foo bar"),
			mustRead(keyword.STRING, ""),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("string with escaped quote", func(t *testing.T) {
		run(`"foo \" bar"`,
			mustRead(keyword.STRING, `foo \" bar`),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("string with escaped backslash", func(t *testing.T) {
		run(`"foo\\"`,
			mustRead(keyword.STRING, `foo\\`),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("unterminated string", func(t *testing.T) {
		run(`"foo`, mustErr())
	})
	t.Run("string must not span lines", func(t *testing.T) {
		run("\"foo\nbar\"", mustErr())
	})
	t.Run("block string", func(t *testing.T) {
		run(`"""foo "bar" baz"""`,
			mustRead(keyword.BLOCKSTRING, `foo "bar" baz`),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("block string spanning lines", func(t *testing.T) {
		run("\"\"\"foo\nbar\"\"\"",
			mustRead(keyword.BLOCKSTRING, "foo\nbar"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("unterminated block string", func(t *testing.T) {
		run(`"""foo`, mustErr())
	})
	t.Run("comment", func(t *testing.T) {
		run("# a comment\nfoo",
			mustRead(keyword.COMMENT, " a comment"),
			mustRead(keyword.IDENT, "foo"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("comment with multi byte characters", func(t *testing.T) {
		run("# héllö wörld\nfoo",
			mustRead(keyword.COMMENT, " héllö wörld"),
			mustRead(keyword.IDENT, "foo"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("commas are insignificant", func(t *testing.T) {
		run("a,b,,c",
			mustRead(keyword.IDENT, "a"),
			mustRead(keyword.IDENT, "b"),
			mustRead(keyword.IDENT, "c"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("byte order mark is ignored", func(t *testing.T) {
		run("\xEF\xBB\xBFfoo",
			mustRead(keyword.IDENT, "foo"),
			mustRead(keyword.EOF, ""),
		)
	})
	t.Run("unexpected character", func(t *testing.T) {
		run("?", mustErr())
	})
	t.Run("positions on a single line", func(t *testing.T) {
		run("{ node }",
			mustReadAt(keyword.LBRACE, "", position.Position{Offset: 0, Line: 0, Char: 0}),
			mustReadAt(keyword.IDENT, "node", position.Position{Offset: 2, Line: 0, Char: 2}),
			mustReadAt(keyword.RBRACE, "", position.Position{Offset: 7, Line: 0, Char: 7}),
			mustReadAt(keyword.EOF, "", position.Position{Offset: 8, Line: 0, Char: 8}),
		)
	})
	t.Run("positions across lines", func(t *testing.T) {
		run("{\n  node\n}",
			mustReadAt(keyword.LBRACE, "", position.Position{Offset: 0, Line: 0, Char: 0}),
			mustReadAt(keyword.IDENT, "node", position.Position{Offset: 4, Line: 1, Char: 2}),
			mustReadAt(keyword.RBRACE, "", position.Position{Offset: 9, Line: 2, Char: 0}),
			mustReadAt(keyword.EOF, "", position.Position{Offset: 10, Line: 2, Char: 1}),
		)
	})
	t.Run("carriage return line feed counts one line", func(t *testing.T) {
		run("{\r\nnode\r\n}",
			mustReadAt(keyword.LBRACE, "", position.Position{Offset: 0, Line: 0, Char: 0}),
			mustReadAt(keyword.IDENT, "node", position.Position{Offset: 3, Line: 1, Char: 0}),
			mustReadAt(keyword.RBRACE, "", position.Position{Offset: 9, Line: 2, Char: 0}),
			mustReadAt(keyword.EOF, "", position.Position{Offset: 10, Line: 2, Char: 1}),
		)
	})
	t.Run("multi byte string literal keeps byte offsets", func(t *testing.T) {
		run(`{ f(s: "😀") }`,
			mustReadAt(keyword.LBRACE, "", position.Position{Offset: 0, Line: 0, Char: 0}),
			mustReadAt(keyword.IDENT, "f", position.Position{Offset: 2, Line: 0, Char: 2}),
			mustReadAt(keyword.LPAREN, "", position.Position{Offset: 3, Line: 0, Char: 3}),
			mustReadAt(keyword.IDENT, "s", position.Position{Offset: 4, Line: 0, Char: 4}),
			mustReadAt(keyword.COLON, "", position.Position{Offset: 5, Line: 0, Char: 5}),
			mustReadAt(keyword.STRING, "😀", position.Position{Offset: 7, Line: 0, Char: 7}),
			mustReadAt(keyword.RPAREN, "", position.Position{Offset: 13, Line: 0, Char: 13}),
			mustReadAt(keyword.RBRACE, "", position.Position{Offset: 15, Line: 0, Char: 15}),
			mustReadAt(keyword.EOF, "", position.Position{Offset: 16, Line: 0, Char: 16}),
		)
	})
}

func TestLexer_SetInputResetsState(t *testing.T) {
	lex := NewLexer()
	lex.SetInput("first")
	tok, err := lex.Read()
	require.NoError(t, err)
	assert.Equal(t, "first", tok.Literal)

	lex.SetInput("second")
	tok, err = lex.Read()
	require.NoError(t, err)
	assert.Equal(t, "second", tok.Literal)
	assert.Equal(t, 0, tok.TextPosition.Offset)
}

type lexedToken struct {
	Keyword  string `json:"keyword"`
	Literal  string `json:"literal,omitempty"`
	Offset   int    `json:"offset"`
	Position string `json:"position"`
}

func TestLexerRegressions(t *testing.T) {

	lex := NewLexer()
	lex.SetInput(`{ node(id: 4) { id, name } }`)

	var total []lexedToken
	for {
		tok, err := lex.Read()
		require.NoError(t, err)

		total = append(total, lexedToken{
			Keyword:  tok.Keyword.String(),
			Literal:  tok.Literal,
			Offset:   tok.TextPosition.Offset,
			Position: tok.TextPosition.String(),
		})

		if tok.Keyword == keyword.EOF {
			break
		}
	}

	data, err := json.MarshalIndent(total, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	goldie.Assert(t, "shorthand_query_lexed", data)
	if t.Failed() {

		fixture, err := os.ReadFile("./fixtures/shorthand_query_lexed.golden")
		if err != nil {
			t.Fatal(err)
		}

		diffview.NewGoland().DiffViewBytes("shorthand_query_lexed", fixture, data)
	}
}
