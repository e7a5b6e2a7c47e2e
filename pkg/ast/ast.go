// Package ast defines the GraphQL document tree produced by astparser.
//
// Unlike index-based document stores, every node here is a tagged variant
// owning exactly the child slots its kind requires. Nodes are immutable after
// construction and hold no references back to the token stream; name and
// string payloads are views of the source string, int and float payloads are
// converted numbers.
package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type NodeKind int

const (
	NodeKindUndefined NodeKind = iota
	NodeKindDocument
	NodeKindOperationDefinition
	NodeKindVariableDefinition
	NodeKindSelectionSet
	NodeKindField
	NodeKindArgument
	NodeKindFragmentSpread
	NodeKindFragmentDefinition
	NodeKindInlineFragment
	NodeKindVariable
	NodeKindIntValue
	NodeKindFloatValue
	NodeKindStringValue
	NodeKindBooleanValue
	NodeKindNullValue
	NodeKindEnumValue
	NodeKindListValue
	NodeKindObjectValue
	NodeKindObjectField
	NodeKindDirective
	NodeKindName
	NodeKindNamedType
	NodeKindListType
	NodeKindNonNullType
	NodeKindSchemaDefinition
	NodeKindOperationTypeDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindFieldDefinition
	NodeKindInputValueDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindEnumValueDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindDirectiveDefinition
	NodeKindSchemaExtension
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension
)

// String returns the stable wire identifier of the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeKindDocument:
		return "Document"
	case NodeKindOperationDefinition:
		return "OperationDefinition"
	case NodeKindVariableDefinition:
		return "VariableDefinition"
	case NodeKindSelectionSet:
		return "SelectionSet"
	case NodeKindField:
		return "Field"
	case NodeKindArgument:
		return "Argument"
	case NodeKindFragmentSpread:
		return "FragmentSpread"
	case NodeKindFragmentDefinition:
		return "FragmentDefinition"
	case NodeKindInlineFragment:
		return "InlineFragment"
	case NodeKindVariable:
		return "Variable"
	case NodeKindIntValue:
		return "IntValue"
	case NodeKindFloatValue:
		return "FloatValue"
	case NodeKindStringValue:
		return "StringValue"
	case NodeKindBooleanValue:
		return "BooleanValue"
	case NodeKindNullValue:
		return "NullValue"
	case NodeKindEnumValue:
		return "EnumValue"
	case NodeKindListValue:
		return "ListValue"
	case NodeKindObjectValue:
		return "ObjectValue"
	case NodeKindObjectField:
		return "ObjectField"
	case NodeKindDirective:
		return "Directive"
	case NodeKindName:
		return "Name"
	case NodeKindNamedType:
		return "NamedType"
	case NodeKindListType:
		return "ListType"
	case NodeKindNonNullType:
		return "NonNullType"
	case NodeKindSchemaDefinition:
		return "SchemaDefinition"
	case NodeKindOperationTypeDefinition:
		return "OperationTypeDefinition"
	case NodeKindScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeKindObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeKindFieldDefinition:
		return "FieldDefinition"
	case NodeKindInputValueDefinition:
		return "InputValueDefinition"
	case NodeKindInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeKindUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeKindEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeKindEnumValueDefinition:
		return "EnumValueDefinition"
	case NodeKindInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeKindDirectiveDefinition:
		return "DirectiveDefinition"
	case NodeKindSchemaExtension:
		return "SchemaExtension"
	case NodeKindScalarTypeExtension:
		return "ScalarTypeExtension"
	case NodeKindObjectTypeExtension:
		return "ObjectTypeExtension"
	case NodeKindInterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case NodeKindUnionTypeExtension:
		return "UnionTypeExtension"
	case NodeKindEnumTypeExtension:
		return "EnumTypeExtension"
	case NodeKindInputObjectTypeExtension:
		return "InputObjectTypeExtension"
	default:
		return "Undefined"
	}
}

// Node is implemented by every tree node.
type Node interface {
	NodeKind() NodeKind
}

// Definition is any top-level construct in a document.
type Definition interface {
	Node
	definitionNode()
}

// Selection is a field, fragment spread or inline fragment.
type Selection interface {
	Node
	selectionNode()
}

// Value is any value literal, including variables.
type Value interface {
	Node
	valueNode()
}

// Type is a named, list or non-null type reference.
type Type interface {
	Node
	typeNode()
}

type OperationType int

const (
	OperationTypeUndefined OperationType = iota
	OperationTypeQuery
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "undefined"
	}
}

// Document is the root of every parse result. Definitions is never empty.
type Document struct {
	Position    position.Position
	Definitions []Definition
}

func (*Document) NodeKind() NodeKind { return NodeKindDocument }

// Name is an identifier. Words the grammar uses as keywords are valid names
// everywhere a name is permitted; the single exception ("on" as a fragment
// name) is enforced by the parser, not here.
type Name struct {
	Position position.Position
	Value    string
}

func (*Name) NodeKind() NodeKind { return NodeKindName }
