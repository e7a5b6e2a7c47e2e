package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkDocument() *Document {
	return &Document{
		Definitions: []Definition{
			&OperationDefinition{
				Operation: OperationTypeQuery,
				Name:      &Name{Value: "q"},
				VariableDefinitions: []*VariableDefinition{
					{
						Variable: &Variable{Name: &Name{Value: "id"}},
						Type:     &NonNullType{Type: &NamedType{Name: &Name{Value: "ID"}}},
					},
				},
				Directives: []*Directive{},
				SelectionSet: &SelectionSet{
					Selections: []Selection{
						&Field{
							Name:       &Name{Value: "node"},
							Arguments:  []*Argument{},
							Directives: []*Directive{},
						},
					},
				},
			},
		},
	}
}

func TestWalk(t *testing.T) {

	t.Run("visits depth first in slot order", func(t *testing.T) {
		var kinds []string
		Walk(walkDocument(), func(n Node) bool {
			kinds = append(kinds, n.NodeKind().String())
			return true
		})

		assert.Equal(t, []string{
			"Document",
			"OperationDefinition",
			"Name",
			"VariableDefinition",
			"Variable",
			"Name",
			"NonNullType",
			"NamedType",
			"Name",
			"SelectionSet",
			"Field",
			"Name",
		}, kinds)
	})

	t.Run("returning false skips children", func(t *testing.T) {
		var kinds []string
		Walk(walkDocument(), func(n Node) bool {
			kinds = append(kinds, n.NodeKind().String())
			_, isSelectionSet := n.(*SelectionSet)
			return !isSelectionSet
		})

		assert.Equal(t, []string{
			"Document",
			"OperationDefinition",
			"Name",
			"VariableDefinition",
			"Variable",
			"Name",
			"NonNullType",
			"NamedType",
			"Name",
			"SelectionSet",
		}, kinds)
	})

	t.Run("nil root is a no op", func(t *testing.T) {
		Walk(nil, func(Node) bool {
			t.Fatal("must not be called")
			return false
		})
	})
}
