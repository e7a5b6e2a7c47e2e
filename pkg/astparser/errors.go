package astparser

import (
	"fmt"

	"github.com/wundergraph/graphql-syntax/pkg/lexer/token"
)

// ErrSyntax is raised when a specific token or keyword was required and
// something else was found. Got carries the offending token including its
// start position; Expected is a token kind name or a keyword literal.
type ErrSyntax struct {
	Source   string
	Got      token.Token
	Expected string
}

func (e ErrSyntax) Error() string {
	return fmt.Sprintf("Syntax error. Got token %s instead of %s at position %d:%d",
		e.Got, e.Expected, e.Got.TextPosition.Line+1, e.Got.TextPosition.Char+1)
}

// ErrUnexpectedToken is raised from dispatch positions where no single
// expectation was active.
type ErrUnexpectedToken struct {
	Source string
	Got    token.Token
}

func (e ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("Syntax error. Unexpected token %s at position %d:%d",
		e.Got, e.Got.TextPosition.Line+1, e.Got.TextPosition.Char+1)
}
