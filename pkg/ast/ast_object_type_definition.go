package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type ObjectTypeDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (*ObjectTypeDefinition) NodeKind() NodeKind { return NodeKindObjectTypeDefinition }
func (*ObjectTypeDefinition) definitionNode()    {}

type FieldDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

func (*FieldDefinition) NodeKind() NodeKind { return NodeKindFieldDefinition }

type InputValueDefinition struct {
	Position     position.Position
	Description  *StringValue
	Name         *Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (*InputValueDefinition) NodeKind() NodeKind { return NodeKindInputValueDefinition }
