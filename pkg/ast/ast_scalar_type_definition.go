package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type ScalarTypeDefinition struct {
	Position    position.Position
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

func (*ScalarTypeDefinition) NodeKind() NodeKind { return NodeKindScalarTypeDefinition }
func (*ScalarTypeDefinition) definitionNode()    {}
