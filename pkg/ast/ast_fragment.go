package ast

import (
	"github.com/wundergraph/graphql-syntax/pkg/lexer/position"
)

// FragmentSpread is '...Name'. The name is never the word "on"; that form
// parses as an inline fragment type condition instead.
type FragmentSpread struct {
	Position   position.Position
	Name       *Name
	Directives []*Directive
}

func (*FragmentSpread) NodeKind() NodeKind { return NodeKindFragmentSpread }
func (*FragmentSpread) selectionNode()     {}

// InlineFragment is '... on Type { ... }'. TypeCondition is nil when the
// spread carries no 'on' clause.
type InlineFragment struct {
	Position      position.Position
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*InlineFragment) NodeKind() NodeKind { return NodeKindInlineFragment }
func (*InlineFragment) selectionNode()     {}

type FragmentDefinition struct {
	Position      position.Position
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (*FragmentDefinition) NodeKind() NodeKind { return NodeKindFragmentDefinition }
func (*FragmentDefinition) definitionNode()    {}
