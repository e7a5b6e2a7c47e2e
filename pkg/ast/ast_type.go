package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type NamedType struct {
	Position position.Position
	Name     *Name
}

func (*NamedType) NodeKind() NodeKind { return NodeKindNamedType }
func (*NamedType) typeNode()          {}

type ListType struct {
	Position position.Position
	Type     Type
}

func (*ListType) NodeKind() NodeKind { return NodeKindListType }
func (*ListType) typeNode()          {}

// NonNullType wraps a named or list type. Type is never itself a
// NonNullType; '!!' does not parse.
type NonNullType struct {
	Position position.Position
	Type     Type
}

func (*NonNullType) NodeKind() NodeKind { return NodeKindNonNullType }
func (*NonNullType) typeNode()          {}
