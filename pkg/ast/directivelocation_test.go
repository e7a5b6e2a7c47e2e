package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectiveLocationFromLiteral(t *testing.T) {
	known := []string{
		"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION",
		"FRAGMENT_SPREAD", "INLINE_FRAGMENT", "VARIABLE_DEFINITION", "SCHEMA",
		"SCALAR", "OBJECT", "FIELD_DEFINITION", "ARGUMENT_DEFINITION",
		"INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT",
		"INPUT_FIELD_DEFINITION",
	}

	for _, literal := range known {
		assert.NotEqual(t, DirectiveLocationUnknown, DirectiveLocationFromLiteral(literal), literal)
	}

	assert.Equal(t, DirectiveLocationUnknown, DirectiveLocationFromLiteral("FIELDS"))
	assert.Equal(t, DirectiveLocationUnknown, DirectiveLocationFromLiteral("query"))
	assert.Equal(t, DirectiveLocationUnknown, DirectiveLocationFromLiteral(""))
}
