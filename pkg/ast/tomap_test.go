package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestToMap(t *testing.T) {

	t.Run("field with alias and argument", func(t *testing.T) {
		field := &Field{
			Alias: &Name{Value: "renamed"},
			Name:  &Name{Value: "profilePic"},
			Arguments: []*Argument{
				{
					Name:  &Name{Value: "size"},
					Value: &IntValue{Value: 64},
				},
			},
			Directives: []*Directive{},
		}

		want := map[string]interface{}{
			"kind":  "Field",
			"alias": map[string]interface{}{"kind": "Name", "value": "renamed"},
			"name":  map[string]interface{}{"kind": "Name", "value": "profilePic"},
			"arguments": []interface{}{
				map[string]interface{}{
					"kind":  "Argument",
					"name":  map[string]interface{}{"kind": "Name", "value": "size"},
					"value": map[string]interface{}{"kind": "IntValue", "value": int64(64)},
				},
			},
			"directives":    []interface{}{},
			"selection_set": nil,
		}

		if diff := cmp.Diff(want, ToMap(field)); diff != "" {
			t.Fatalf("projection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent optionals project to nil, empty lists stay present", func(t *testing.T) {
		operation := &OperationDefinition{
			Operation:           OperationTypeSubscription,
			VariableDefinitions: []*VariableDefinition{},
			Directives:          []*Directive{},
			SelectionSet: &SelectionSet{
				Selections: []Selection{
					&Field{Name: &Name{Value: "ticks"}, Arguments: []*Argument{}, Directives: []*Directive{}},
				},
			},
		}

		projected := ToMap(operation)
		assert.Equal(t, "subscription", projected["operation"])
		assert.Nil(t, projected["name"])
		assert.Equal(t, []interface{}{}, projected["variable_definitions"])
		assert.Equal(t, []interface{}{}, projected["directives"])
	})

	t.Run("null value carries only its kind", func(t *testing.T) {
		assert.Equal(t, map[string]interface{}{"kind": "NullValue"}, ToMap(&NullValue{}))
	})

	t.Run("directive definition", func(t *testing.T) {
		definition := &DirectiveDefinition{
			Name:       &Name{Value: "delegate"},
			Arguments:  []*InputValueDefinition{},
			Repeatable: true,
			Locations:  []*Name{{Value: "FIELD"}},
		}

		want := map[string]interface{}{
			"kind":        "DirectiveDefinition",
			"description": nil,
			"name":        map[string]interface{}{"kind": "Name", "value": "delegate"},
			"arguments":   []interface{}{},
			"repeatable":  true,
			"locations": []interface{}{
				map[string]interface{}{"kind": "Name", "value": "FIELD"},
			},
		}

		if diff := cmp.Diff(want, ToMap(definition)); diff != "" {
			t.Fatalf("projection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extensions mirror their definitions without a description", func(t *testing.T) {
		extension := &EnumTypeExtension{
			Name:       &Name{Value: "Site"},
			Directives: []*Directive{},
			Values: []*EnumValueDefinition{
				{Name: &Name{Value: "VR"}, Directives: []*Directive{}},
			},
		}

		projected := ToMap(extension)
		assert.Equal(t, "EnumTypeExtension", projected["kind"])
		_, hasDescription := projected["description"]
		assert.False(t, hasDescription)
	})
}
