package ast

// Walk traverses the tree rooted at n in depth-first pre-order, calling
// visit for each node. If visit returns false the node's children are
// skipped. Child order follows the grammar's slot order.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}

	switch n := n.(type) {
	case *Document:
		walkList(n.Definitions, visit)
	case *OperationDefinition:
		walkOptional(n.Name, n.Name == nil, visit)
		walkList(n.VariableDefinitions, visit)
		walkList(n.Directives, visit)
		Walk(n.SelectionSet, visit)
	case *VariableDefinition:
		Walk(n.Variable, visit)
		Walk(n.Type, visit)
		walkOptional(n.DefaultValue, n.DefaultValue == nil, visit)
		walkList(n.Directives, visit)
	case *Variable:
		Walk(n.Name, visit)
	case *SelectionSet:
		walkList(n.Selections, visit)
	case *Field:
		walkOptional(n.Alias, n.Alias == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Arguments, visit)
		walkList(n.Directives, visit)
		walkOptional(n.SelectionSet, n.SelectionSet == nil, visit)
	case *Argument:
		Walk(n.Name, visit)
		Walk(n.Value, visit)
	case *FragmentSpread:
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
	case *InlineFragment:
		walkOptional(n.TypeCondition, n.TypeCondition == nil, visit)
		walkList(n.Directives, visit)
		Walk(n.SelectionSet, visit)
	case *FragmentDefinition:
		Walk(n.Name, visit)
		Walk(n.TypeCondition, visit)
		walkList(n.Directives, visit)
		Walk(n.SelectionSet, visit)
	case *ListValue:
		walkList(n.Values, visit)
	case *ObjectValue:
		walkList(n.Fields, visit)
	case *ObjectField:
		Walk(n.Name, visit)
		Walk(n.Value, visit)
	case *Directive:
		Walk(n.Name, visit)
		walkList(n.Arguments, visit)
	case *NamedType:
		Walk(n.Name, visit)
	case *ListType:
		Walk(n.Type, visit)
	case *NonNullType:
		Walk(n.Type, visit)
	case *SchemaDefinition:
		walkList(n.Directives, visit)
		walkList(n.OperationTypes, visit)
	case *OperationTypeDefinition:
		Walk(n.Type, visit)
	case *ScalarTypeDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
	case *ObjectTypeDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Interfaces, visit)
		walkList(n.Directives, visit)
		walkList(n.Fields, visit)
	case *FieldDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Arguments, visit)
		Walk(n.Type, visit)
		walkList(n.Directives, visit)
	case *InputValueDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		Walk(n.Type, visit)
		walkOptional(n.DefaultValue, n.DefaultValue == nil, visit)
		walkList(n.Directives, visit)
	case *InterfaceTypeDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Fields, visit)
	case *UnionTypeDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Types, visit)
	case *EnumTypeDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Values, visit)
	case *EnumValueDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
	case *InputObjectTypeDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Fields, visit)
	case *DirectiveDefinition:
		walkOptional(n.Description, n.Description == nil, visit)
		Walk(n.Name, visit)
		walkList(n.Arguments, visit)
		walkList(n.Locations, visit)
	case *SchemaExtension:
		walkList(n.Directives, visit)
		walkList(n.OperationTypes, visit)
	case *ScalarTypeExtension:
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
	case *ObjectTypeExtension:
		Walk(n.Name, visit)
		walkList(n.Interfaces, visit)
		walkList(n.Directives, visit)
		walkList(n.Fields, visit)
	case *InterfaceTypeExtension:
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Fields, visit)
	case *UnionTypeExtension:
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Types, visit)
	case *EnumTypeExtension:
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Values, visit)
	case *InputObjectTypeExtension:
		Walk(n.Name, visit)
		walkList(n.Directives, visit)
		walkList(n.Fields, visit)
	}
}

func walkList[T Node](nodes []T, visit func(Node) bool) {
	for _, n := range nodes {
		Walk(n, visit)
	}
}

func walkOptional(n Node, absent bool, visit func(Node) bool) {
	if absent {
		return
	}
	Walk(n, visit)
}
