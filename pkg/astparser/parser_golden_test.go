package astparser

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jensneuse/diffview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/wundergraph/graphql-syntax/pkg/ast"
	"github.com/wundergraph/graphql-syntax/pkg/testing/goldie"
)

// The canonical mapping of a parsed document is pinned as a golden fixture;
// any change to node slots or their projection shows up as a diff here.
func TestParse_ShorthandQueryGolden(t *testing.T) {
	doc, err := ParseGraphqlDocumentString(`{ node(id: 4) { id, name } }`)
	require.NoError(t, err)

	data, err := json.MarshalIndent(ast.ToMap(doc), "", "  ")
	require.NoError(t, err)

	goldie.Assert(t, "shorthand_query_ast", data)
	if t.Failed() {

		fixture, err := os.ReadFile("./fixtures/shorthand_query_ast.golden")
		require.NoError(t, err)

		diffview.NewGoland().DiffViewBytes("shorthand_query_ast", fixture, data)
	}

	assert.Equal(t, "query", gjson.GetBytes(data, "definitions.0.operation").String())
	assert.Equal(t, "node", gjson.GetBytes(data, "definitions.0.selection_set.selections.0.name.value").String())
	assert.Equal(t, int64(4), gjson.GetBytes(data, "definitions.0.selection_set.selections.0.arguments.0.value.value").Int())
	assert.Equal(t, gjson.Null, gjson.GetBytes(data, "definitions.0.name").Type)
}
