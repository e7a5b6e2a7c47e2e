// Package token holds the positioned token emitted by the lexer.
package token

import (
	"fmt"

	"github.com/wundergraph/graphql-syntax/pkg/lexer/keyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

// Token is one lexical unit. Literal is a view into the source string and is
// only set for the payload-carrying kinds (IDENT, the scalar class and
// COMMENT).
type Token struct {
	Keyword      keyword.Keyword
	Literal      string
	TextPosition position.Position
}

func (t Token) String() string {
	if t.Literal != "" {
		return fmt.Sprintf("%s(%q)", t.Keyword, t.Literal)
	}
	return t.Keyword.String()
}
