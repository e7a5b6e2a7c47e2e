package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type InterfaceTypeDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (*InterfaceTypeDefinition) NodeKind() NodeKind { return NodeKindInterfaceTypeDefinition }
func (*InterfaceTypeDefinition) definitionNode()    {}
