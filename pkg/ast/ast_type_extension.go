package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

// Type system extensions. Each mirrors its definition counterpart without a
// description; the parser guarantees at least one extending clause is
// present.

type SchemaExtension struct {
	Position       position.Position
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (*SchemaExtension) NodeKind() NodeKind { return NodeKindSchemaExtension }
func (*SchemaExtension) definitionNode()    {}

type ScalarTypeExtension struct {
	Position   position.Position
	Name       *Name
	Directives []*Directive
}

func (*ScalarTypeExtension) NodeKind() NodeKind { return NodeKindScalarTypeExtension }
func (*ScalarTypeExtension) definitionNode()    {}

type ObjectTypeExtension struct {
	Position   position.Position
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (*ObjectTypeExtension) NodeKind() NodeKind { return NodeKindObjectTypeExtension }
func (*ObjectTypeExtension) definitionNode()    {}

type InterfaceTypeExtension struct {
	Position   position.Position
	Name       *Name
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (*InterfaceTypeExtension) NodeKind() NodeKind { return NodeKindInterfaceTypeExtension }
func (*InterfaceTypeExtension) definitionNode()    {}

type UnionTypeExtension struct {
	Position   position.Position
	Name       *Name
	Directives []*Directive
	Types      []*NamedType
}

func (*UnionTypeExtension) NodeKind() NodeKind { return NodeKindUnionTypeExtension }
func (*UnionTypeExtension) definitionNode()    {}

type EnumTypeExtension struct {
	Position   position.Position
	Name       *Name
	Directives []*Directive
	Values     []*EnumValueDefinition
}

func (*EnumTypeExtension) NodeKind() NodeKind { return NodeKindEnumTypeExtension }
func (*EnumTypeExtension) definitionNode()    {}

type InputObjectTypeExtension struct {
	Position   position.Position
	Name       *Name
	Directives []*Directive
	Fields     []*InputValueDefinition
}

func (*InputObjectTypeExtension) NodeKind() NodeKind { return NodeKindInputObjectTypeExtension }
func (*InputObjectTypeExtension) definitionNode()    {}
