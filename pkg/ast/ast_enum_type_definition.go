package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type EnumTypeDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

func (*EnumTypeDefinition) NodeKind() NodeKind { return NodeKindEnumTypeDefinition }
func (*EnumTypeDefinition) definitionNode()    {}

type EnumValueDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

func (*EnumValueDefinition) NodeKind() NodeKind { return NodeKindEnumValueDefinition }
