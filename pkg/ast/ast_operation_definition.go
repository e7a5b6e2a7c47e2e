package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

// OperationDefinition is a query, mutation or subscription. The shorthand
// form (a document starting with '{') yields Operation = query, a nil Name
// and empty variable definition and directive lists.
type OperationDefinition struct {
	Position            position.Position
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (*OperationDefinition) NodeKind() NodeKind { return NodeKindOperationDefinition }
func (*OperationDefinition) definitionNode()    {}

type VariableDefinition struct {
	Position     position.Position
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (*VariableDefinition) NodeKind() NodeKind { return NodeKindVariableDefinition }

type Variable struct {
	Position position.Position
	Name     *Name
}

func (*Variable) NodeKind() NodeKind { return NodeKindVariable }
func (*Variable) valueNode()         {}
