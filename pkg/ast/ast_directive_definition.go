package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

// DirectiveDefinition declares a directive, its argument surface and the
// locations it may attach to. Locations are Name nodes whose values are
// members of the fixed directive location set.
type DirectiveDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
}

func (*DirectiveDefinition) NodeKind() NodeKind { return NodeKindDirectiveDefinition }
func (*DirectiveDefinition) definitionNode()    {}
