package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyword_Classes(t *testing.T) {
	scalars := []Keyword{STRING, BLOCKSTRING, INTEGER, FLOAT}
	for _, k := range scalars {
		assert.True(t, k.IsScalarValue(), k.String())
	}

	for _, k := range []Keyword{EOF, IDENT, LBRACE, SPREAD, DOLLAR, AT} {
		assert.False(t, k.IsScalarValue(), k.String())
	}

	assert.True(t, STRING.IsStringValue())
	assert.True(t, BLOCKSTRING.IsStringValue())
	assert.False(t, INTEGER.IsStringValue())
}
