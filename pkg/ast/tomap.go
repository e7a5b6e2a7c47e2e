package ast

// ToMap projects a node to its canonical mapping form: the kind's wire
// identifier under "kind" plus the grammar-mandated slots, with child nodes
// projected recursively. List slots are always present, absent optionals are
// nil. This is the single projection used for structural assertions; the
// tree itself stays strongly typed.
func ToMap(n Node) map[string]interface{} {
	switch n := n.(type) {
	case *Document:
		return kindMap(n, map[string]interface{}{
			"definitions": mapList(n.Definitions),
		})
	case *OperationDefinition:
		return kindMap(n, map[string]interface{}{
			"operation":            n.Operation.String(),
			"name":                 mapOptional(n.Name, n.Name == nil),
			"variable_definitions": mapList(n.VariableDefinitions),
			"directives":           mapList(n.Directives),
			"selection_set":        ToMap(n.SelectionSet),
		})
	case *VariableDefinition:
		return kindMap(n, map[string]interface{}{
			"variable":      ToMap(n.Variable),
			"type":          ToMap(n.Type),
			"default_value": mapOptional(n.DefaultValue, n.DefaultValue == nil),
			"directives":    mapList(n.Directives),
		})
	case *Variable:
		return kindMap(n, map[string]interface{}{
			"name": ToMap(n.Name),
		})
	case *SelectionSet:
		return kindMap(n, map[string]interface{}{
			"selections": mapList(n.Selections),
		})
	case *Field:
		return kindMap(n, map[string]interface{}{
			"alias":         mapOptional(n.Alias, n.Alias == nil),
			"name":          ToMap(n.Name),
			"arguments":     mapList(n.Arguments),
			"directives":    mapList(n.Directives),
			"selection_set": mapOptional(n.SelectionSet, n.SelectionSet == nil),
		})
	case *Argument:
		return kindMap(n, map[string]interface{}{
			"name":  ToMap(n.Name),
			"value": ToMap(n.Value),
		})
	case *FragmentSpread:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"directives": mapList(n.Directives),
		})
	case *InlineFragment:
		return kindMap(n, map[string]interface{}{
			"type_condition": mapOptional(n.TypeCondition, n.TypeCondition == nil),
			"directives":     mapList(n.Directives),
			"selection_set":  ToMap(n.SelectionSet),
		})
	case *FragmentDefinition:
		return kindMap(n, map[string]interface{}{
			"name":           ToMap(n.Name),
			"type_condition": ToMap(n.TypeCondition),
			"directives":     mapList(n.Directives),
			"selection_set":  ToMap(n.SelectionSet),
		})
	case *IntValue:
		return kindMap(n, map[string]interface{}{
			"value": n.Value,
		})
	case *FloatValue:
		return kindMap(n, map[string]interface{}{
			"value": n.Value,
		})
	case *StringValue:
		return kindMap(n, map[string]interface{}{
			"value": n.Value,
		})
	case *BooleanValue:
		return kindMap(n, map[string]interface{}{
			"value": n.Value,
		})
	case *NullValue:
		return kindMap(n, map[string]interface{}{})
	case *EnumValue:
		return kindMap(n, map[string]interface{}{
			"value": n.Value,
		})
	case *ListValue:
		return kindMap(n, map[string]interface{}{
			"values": mapList(n.Values),
		})
	case *ObjectValue:
		return kindMap(n, map[string]interface{}{
			"fields": mapList(n.Fields),
		})
	case *ObjectField:
		return kindMap(n, map[string]interface{}{
			"name":  ToMap(n.Name),
			"value": ToMap(n.Value),
		})
	case *Directive:
		return kindMap(n, map[string]interface{}{
			"name":      ToMap(n.Name),
			"arguments": mapList(n.Arguments),
		})
	case *Name:
		return kindMap(n, map[string]interface{}{
			"value": n.Value,
		})
	case *NamedType:
		return kindMap(n, map[string]interface{}{
			"name": ToMap(n.Name),
		})
	case *ListType:
		return kindMap(n, map[string]interface{}{
			"type": ToMap(n.Type),
		})
	case *NonNullType:
		return kindMap(n, map[string]interface{}{
			"type": ToMap(n.Type),
		})
	case *SchemaDefinition:
		return kindMap(n, map[string]interface{}{
			"directives":      mapList(n.Directives),
			"operation_types": mapList(n.OperationTypes),
		})
	case *OperationTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"operation": n.Operation.String(),
			"type":      ToMap(n.Type),
		})
	case *ScalarTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"directives":  mapList(n.Directives),
		})
	case *ObjectTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"interfaces":  mapList(n.Interfaces),
			"directives":  mapList(n.Directives),
			"fields":      mapList(n.Fields),
		})
	case *FieldDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"arguments":   mapList(n.Arguments),
			"type":        ToMap(n.Type),
			"directives":  mapList(n.Directives),
		})
	case *InputValueDefinition:
		return kindMap(n, map[string]interface{}{
			"description":   mapOptional(n.Description, n.Description == nil),
			"name":          ToMap(n.Name),
			"type":          ToMap(n.Type),
			"default_value": mapOptional(n.DefaultValue, n.DefaultValue == nil),
			"directives":    mapList(n.Directives),
		})
	case *InterfaceTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"directives":  mapList(n.Directives),
			"fields":      mapList(n.Fields),
		})
	case *UnionTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"directives":  mapList(n.Directives),
			"types":       mapList(n.Types),
		})
	case *EnumTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"directives":  mapList(n.Directives),
			"values":      mapList(n.Values),
		})
	case *EnumValueDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"directives":  mapList(n.Directives),
		})
	case *InputObjectTypeDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"directives":  mapList(n.Directives),
			"fields":      mapList(n.Fields),
		})
	case *DirectiveDefinition:
		return kindMap(n, map[string]interface{}{
			"description": mapOptional(n.Description, n.Description == nil),
			"name":        ToMap(n.Name),
			"arguments":   mapList(n.Arguments),
			"repeatable":  n.Repeatable,
			"locations":   mapList(n.Locations),
		})
	case *SchemaExtension:
		return kindMap(n, map[string]interface{}{
			"directives":      mapList(n.Directives),
			"operation_types": mapList(n.OperationTypes),
		})
	case *ScalarTypeExtension:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"directives": mapList(n.Directives),
		})
	case *ObjectTypeExtension:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"interfaces": mapList(n.Interfaces),
			"directives": mapList(n.Directives),
			"fields":     mapList(n.Fields),
		})
	case *InterfaceTypeExtension:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"directives": mapList(n.Directives),
			"fields":     mapList(n.Fields),
		})
	case *UnionTypeExtension:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"directives": mapList(n.Directives),
			"types":      mapList(n.Types),
		})
	case *EnumTypeExtension:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"directives": mapList(n.Directives),
			"values":     mapList(n.Values),
		})
	case *InputObjectTypeExtension:
		return kindMap(n, map[string]interface{}{
			"name":       ToMap(n.Name),
			"directives": mapList(n.Directives),
			"fields":     mapList(n.Fields),
		})
	default:
		return nil
	}
}

func kindMap(n Node, slots map[string]interface{}) map[string]interface{} {
	slots["kind"] = n.NodeKind().String()
	return slots
}

func mapList[T Node](nodes []T) []interface{} {
	out := make([]interface{}, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ToMap(n))
	}
	return out
}

// mapOptional keeps typed-nil pointers from leaking into the projection as
// non-nil interfaces.
func mapOptional(n Node, absent bool) interface{} {
	if absent {
		return nil
	}
	return ToMap(n)
}
