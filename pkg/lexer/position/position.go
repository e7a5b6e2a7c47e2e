// Package position describes a location in a GraphQL source.
package position

import "fmt"

// Position identifies a byte offset in the input together with its zero-based
// line and character coordinates. Rendering is 1-based, matching editors.
type Position struct {
	Offset int
	Line   int
	Char   int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Char+1)
}
