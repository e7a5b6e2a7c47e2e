// Package unsafeparser is for testing purposes only when error handling is
// overhead and panics are ok
package unsafeparser

import (
	"os"

	"github.com/wundergraph/graphql-syntax/pkg/ast"
	"github.com/wundergraph/graphql-syntax/pkg/astparser"
)

func ParseGraphqlDocumentString(input string) *ast.Document {
	doc, err := astparser.ParseGraphqlDocumentString(input)
	if err != nil {
		panic(err)
	}
	return doc
}

func ParseGraphqlDocumentFile(filePath string) *ast.Document {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	return ParseGraphqlDocumentString(string(fileBytes))
}
