package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type InputObjectTypeDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

func (*InputObjectTypeDefinition) NodeKind() NodeKind { return NodeKindInputObjectTypeDefinition }
func (*InputObjectTypeDefinition) definitionNode()    {}
