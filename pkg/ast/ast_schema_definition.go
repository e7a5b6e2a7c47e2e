package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type SchemaDefinition struct {
	Position       position.Position
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (*SchemaDefinition) NodeKind() NodeKind { return NodeKindSchemaDefinition }
func (*SchemaDefinition) definitionNode()    {}

type OperationTypeDefinition struct {
	Position  position.Position
	Operation OperationType
	Type      *NamedType
}

func (*OperationTypeDefinition) NodeKind() NodeKind { return NodeKindOperationTypeDefinition }
