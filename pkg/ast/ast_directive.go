package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

type Directive struct {
	Position  position.Position
	Name      *Name
	Arguments []*Argument
}

func (*Directive) NodeKind() NodeKind { return NodeKindDirective }
