package ast

// DirectiveLocation is one of the fixed set of positions a directive
// definition may name after 'on'.
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota
	ExecutableDirectiveLocationQuery
	ExecutableDirectiveLocationMutation
	ExecutableDirectiveLocationSubscription
	ExecutableDirectiveLocationField
	ExecutableDirectiveLocationFragmentDefinition
	ExecutableDirectiveLocationFragmentSpread
	ExecutableDirectiveLocationInlineFragment
	ExecutableDirectiveLocationVariableDefinition
	TypeSystemDirectiveLocationSchema
	TypeSystemDirectiveLocationScalar
	TypeSystemDirectiveLocationObject
	TypeSystemDirectiveLocationFieldDefinition
	TypeSystemDirectiveLocationArgumentDefinition
	TypeSystemDirectiveLocationInterface
	TypeSystemDirectiveLocationUnion
	TypeSystemDirectiveLocationEnum
	TypeSystemDirectiveLocationEnumValue
	TypeSystemDirectiveLocationInputObject
	TypeSystemDirectiveLocationInputFieldDefinition
)

var directiveLocations = map[string]DirectiveLocation{
	"QUERY":                  ExecutableDirectiveLocationQuery,
	"MUTATION":               ExecutableDirectiveLocationMutation,
	"SUBSCRIPTION":           ExecutableDirectiveLocationSubscription,
	"FIELD":                  ExecutableDirectiveLocationField,
	"FRAGMENT_DEFINITION":    ExecutableDirectiveLocationFragmentDefinition,
	"FRAGMENT_SPREAD":        ExecutableDirectiveLocationFragmentSpread,
	"INLINE_FRAGMENT":        ExecutableDirectiveLocationInlineFragment,
	"VARIABLE_DEFINITION":    ExecutableDirectiveLocationVariableDefinition,
	"SCHEMA":                 TypeSystemDirectiveLocationSchema,
	"SCALAR":                 TypeSystemDirectiveLocationScalar,
	"OBJECT":                 TypeSystemDirectiveLocationObject,
	"FIELD_DEFINITION":       TypeSystemDirectiveLocationFieldDefinition,
	"ARGUMENT_DEFINITION":    TypeSystemDirectiveLocationArgumentDefinition,
	"INTERFACE":              TypeSystemDirectiveLocationInterface,
	"UNION":                  TypeSystemDirectiveLocationUnion,
	"ENUM":                   TypeSystemDirectiveLocationEnum,
	"ENUM_VALUE":             TypeSystemDirectiveLocationEnumValue,
	"INPUT_OBJECT":           TypeSystemDirectiveLocationInputObject,
	"INPUT_FIELD_DEFINITION": TypeSystemDirectiveLocationInputFieldDefinition,
}

// DirectiveLocationFromLiteral returns the location named by a literal, or
// DirectiveLocationUnknown. A name outside the set is a syntax error in the
// parser, never a silent entry in the locations list.
func DirectiveLocationFromLiteral(literal string) DirectiveLocation {
	return directiveLocations[literal]
}
