// Package graphqlsyntax is a library to parse the GraphQL query and schema
// definition languages into a typed syntax tree.
//
// The parser core lives in pkg/astparser, the tree in pkg/ast and the
// tokenization layers in pkg/lexer. A parse either yields a document
// satisfying the tree invariants or a single positioned syntax error;
// there is no recovery and no partial result.
package graphqlsyntax
