package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type IntValue struct {
	Position position.Position
	Value    int64
}

func (*IntValue) NodeKind() NodeKind { return NodeKindIntValue }
func (*IntValue) valueNode()         {}

type FloatValue struct {
	Position position.Position
	Value    float64
}

func (*FloatValue) NodeKind() NodeKind { return NodeKindFloatValue }
func (*FloatValue) valueNode()         {}

// StringValue carries the raw literal content. Block is set for the
// triple-quoted form; block string indentation handling is left to consumers.
type StringValue struct {
	Position position.Position
	Value    string
	Block    bool
}

func (*StringValue) NodeKind() NodeKind { return NodeKindStringValue }
func (*StringValue) valueNode()         {}

type BooleanValue struct {
	Position position.Position
	Value    bool
}

func (*BooleanValue) NodeKind() NodeKind { return NodeKindBooleanValue }
func (*BooleanValue) valueNode()         {}

type NullValue struct {
	Position position.Position
}

func (*NullValue) NodeKind() NodeKind { return NodeKindNullValue }
func (*NullValue) valueNode()         {}

type EnumValue struct {
	Position position.Position
	Value    string
}

func (*EnumValue) NodeKind() NodeKind { return NodeKindEnumValue }
func (*EnumValue) valueNode()         {}

type ListValue struct {
	Position position.Position
	Values   []Value
}

func (*ListValue) NodeKind() NodeKind { return NodeKindListValue }
func (*ListValue) valueNode()         {}

type ObjectValue struct {
	Position position.Position
	Fields   []*ObjectField
}

func (*ObjectValue) NodeKind() NodeKind { return NodeKindObjectValue }
func (*ObjectValue) valueNode()         {}

type ObjectField struct {
	Position position.Position
	Name     *Name
	Value    Value
}

func (*ObjectField) NodeKind() NodeKind { return NodeKindObjectField }
