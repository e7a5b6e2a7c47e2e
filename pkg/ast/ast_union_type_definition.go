package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type UnionTypeDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
}

func (*UnionTypeDefinition) NodeKind() NodeKind { return NodeKindUnionTypeDefinition }
func (*UnionTypeDefinition) definitionNode()    {}
