package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

// SelectionSet is the non-empty body of an operation, field or fragment.
type SelectionSet struct {
	Position   position.Position
	Selections []Selection
}

func (*SelectionSet) NodeKind() NodeKind { return NodeKindSelectionSet }

// Field is a single selection. Alias is nil unless the source used the
// 'alias: name' form; SelectionSet is nil for leaf fields.
type Field struct {
	Position     position.Position
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (*Field) NodeKind() NodeKind { return NodeKindField }
func (*Field) selectionNode()     {}

type Argument struct {
	Position position.Position
	Name     *Name
	Value    Value
}

func (*Argument) NodeKind() NodeKind { return NodeKindArgument }
