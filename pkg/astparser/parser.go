// Package astparser is a recursive-descent parser over the token stream,
// producing the tagged-variant tree in pkg/ast. It is fail-fast: the first
// syntactic anomaly aborts the parse and no partial tree escapes.
package astparser

import (
	"strconv"

	"github.com/wundergraph/graphql-syntax/pkg/ast"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/identkeyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/keyword"
	"github.com/wundergraph/graphql-syntax/pkg/lexer/token"
)

type Parser struct {
	tokenizer *Tokenizer
	source    string
	err       error
}

// NewParser returns a parser whose tokenizer is reused across Parse calls.
// A Parser must not be shared between goroutines; independent invocations
// each get their own.
func NewParser() *Parser {
	return &Parser{
		tokenizer: NewTokenizer(),
	}
}

// ParseGraphqlDocumentString parses an entire document.
func ParseGraphqlDocumentString(source string) (*ast.Document, error) {
	return NewParser().Parse(source)
}

// ParseValue parses a single non-const value literal. The whole input must
// be consumed.
func ParseValue(source string) (ast.Value, error) {
	p := NewParser()
	if err := p.reset(source); err != nil {
		return nil, err
	}
	value := p.parseValueLiteral(false)
	p.expectToken(keyword.EOF)
	if p.err != nil {
		return nil, p.err
	}
	return value, nil
}

// ParseType parses a single type reference. The whole input must be
// consumed.
func ParseType(source string) (ast.Type, error) {
	p := NewParser()
	if err := p.reset(source); err != nil {
		return nil, err
	}
	t := p.parseTypeReference()
	p.expectToken(keyword.EOF)
	if p.err != nil {
		return nil, p.err
	}
	return t, nil
}

func (p *Parser) Parse(source string) (*ast.Document, error) {
	if err := p.reset(source); err != nil {
		return nil, err
	}
	doc := p.parseDocument()
	if p.err != nil {
		return nil, p.err
	}
	return doc, nil
}

func (p *Parser) reset(source string) error {
	p.source = source
	p.err = nil
	return p.tokenizer.Tokenize(source)
}

func (p *Parser) parseDocument() *ast.Document {
	doc := &ast.Document{
		Definitions: make([]ast.Definition, 0, 8),
	}

	for {
		if p.err != nil {
			return nil
		}
		next := p.peekToken()
		if next.Keyword == keyword.EOF {
			if len(doc.Definitions) == 0 {
				p.errUnexpectedToken(next)
				return nil
			}
			return doc
		}
		definition := p.parseDefinition()
		if p.err != nil {
			return nil
		}
		doc.Definitions = append(doc.Definitions, definition)
	}
}

func (p *Parser) parseDefinition() ast.Definition {
	next := p.peekToken()
	switch {
	case next.Keyword == keyword.LBRACE:
		return p.parseOperationDefinition()
	case next.Keyword == keyword.IDENT:
		switch identkeyword.KeywordFromLiteral(next.Literal) {
		case identkeyword.QUERY, identkeyword.MUTATION, identkeyword.SUBSCRIPTION:
			return p.parseOperationDefinition()
		case identkeyword.FRAGMENT:
			return p.parseFragmentDefinition()
		case identkeyword.SCHEMA, identkeyword.SCALAR, identkeyword.TYPE, identkeyword.INTERFACE,
			identkeyword.UNION, identkeyword.ENUM, identkeyword.INPUT, identkeyword.DIRECTIVE:
			return p.parseTypeSystemDefinition()
		case identkeyword.EXTEND:
			return p.parseTypeSystemExtension()
		}
	case next.Keyword.IsStringValue():
		return p.parseTypeSystemDefinition()
	}
	p.errUnexpectedToken(p.read())
	return nil
}

func (p *Parser) parseOperationDefinition() *ast.OperationDefinition {
	start := p.peekToken().TextPosition

	if p.peekEquals(keyword.LBRACE) {
		return &ast.OperationDefinition{
			Position:            start,
			Operation:           ast.OperationTypeQuery,
			VariableDefinitions: []*ast.VariableDefinition{},
			Directives:          []*ast.Directive{},
			SelectionSet:        p.parseSelectionSet(),
		}
	}

	operation := p.parseOperationType()

	var name *ast.Name
	if p.peekEquals(keyword.IDENT) {
		name = p.parseName()
	}

	_, variableDefinitions := optionalMany(p, keyword.LPAREN, keyword.RPAREN, p.parseVariableDefinition)

	return &ast.OperationDefinition{
		Position:            start,
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          p.parseDirectives(false),
		SelectionSet:        p.parseSelectionSet(),
	}
}

func (p *Parser) parseOperationType() ast.OperationType {
	operationType := p.read()
	if operationType.Keyword == keyword.IDENT {
		switch identkeyword.KeywordFromLiteral(operationType.Literal) {
		case identkeyword.QUERY:
			return ast.OperationTypeQuery
		case identkeyword.MUTATION:
			return ast.OperationTypeMutation
		case identkeyword.SUBSCRIPTION:
			return ast.OperationTypeSubscription
		}
	}
	p.errUnexpectedToken(operationType)
	return ast.OperationTypeUndefined
}

func (p *Parser) parseName() *ast.Name {
	name := p.expectToken(keyword.IDENT)
	return &ast.Name{
		Position: name.TextPosition,
		Value:    name.Literal,
	}
}

func (p *Parser) parseVariableDefinition() *ast.VariableDefinition {
	variable := p.parseVariable()
	p.expectToken(keyword.COLON)

	variableDefinition := &ast.VariableDefinition{
		Position: variable.Position,
		Variable: variable,
		Type:     p.parseTypeReference(),
	}

	if _, ok := p.expectOptionalToken(keyword.EQUALS); ok {
		variableDefinition.DefaultValue = p.parseValueLiteral(true)
	}
	variableDefinition.Directives = p.parseDirectives(true)

	return variableDefinition
}

func (p *Parser) parseVariable() *ast.Variable {
	dollar := p.expectToken(keyword.DOLLAR)
	return &ast.Variable{
		Position: dollar.TextPosition,
		Name:     p.parseName(),
	}
}

func (p *Parser) parseSelectionSet() *ast.SelectionSet {
	open, selections := many(p, keyword.LBRACE, keyword.RBRACE, p.parseSelection)
	return &ast.SelectionSet{
		Position:   open.TextPosition,
		Selections: selections,
	}
}

func (p *Parser) parseSelection() ast.Selection {
	if p.peekEquals(keyword.SPREAD) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *Parser) parseField() *ast.Field {
	nameOrAlias := p.parseName()

	field := &ast.Field{
		Position: nameOrAlias.Position,
	}

	if _, ok := p.expectOptionalToken(keyword.COLON); ok {
		field.Alias = nameOrAlias
		field.Name = p.parseName()
	} else {
		field.Name = nameOrAlias
	}

	field.Arguments = p.parseArguments(false)
	field.Directives = p.parseDirectives(false)
	if p.peekEquals(keyword.LBRACE) {
		field.SelectionSet = p.parseSelectionSet()
	}

	return field
}

func (p *Parser) parseArguments(isConst bool) []*ast.Argument {
	_, arguments := optionalMany(p, keyword.LPAREN, keyword.RPAREN, func() *ast.Argument {
		return p.parseArgument(isConst)
	})
	return arguments
}

func (p *Parser) parseArgument(isConst bool) *ast.Argument {
	name := p.parseName()
	p.expectToken(keyword.COLON)
	return &ast.Argument{
		Position: name.Position,
		Name:     name,
		Value:    p.parseValueLiteral(isConst),
	}
}

// parseFragment parses everything behind a spread. 'on' binds to an inline
// fragment type condition; any other name is a fragment spread; anything
// else is an inline fragment without a type condition.
func (p *Parser) parseFragment() ast.Selection {
	spread := p.expectToken(keyword.SPREAD)

	if _, ok := p.expectOptionalKeyword(identkeyword.ON); ok {
		return &ast.InlineFragment{
			Position:      spread.TextPosition,
			TypeCondition: p.parseNamedType(),
			Directives:    p.parseDirectives(false),
			SelectionSet:  p.parseSelectionSet(),
		}
	}

	if p.peekEquals(keyword.IDENT) {
		return &ast.FragmentSpread{
			Position:   spread.TextPosition,
			Name:       p.parseFragmentName(),
			Directives: p.parseDirectives(false),
		}
	}

	return &ast.InlineFragment{
		Position:     spread.TextPosition,
		Directives:   p.parseDirectives(false),
		SelectionSet: p.parseSelectionSet(),
	}
}

// parseFragmentName parses a name that must not be the word "on".
func (p *Parser) parseFragmentName() *ast.Name {
	if p.peekEqualsIdentKey(identkeyword.ON) {
		p.errUnexpectedToken(p.read())
		return nil
	}
	return p.parseName()
}

func (p *Parser) parseFragmentDefinition() *ast.FragmentDefinition {
	fragment := p.expectKeyword(identkeyword.FRAGMENT)
	name := p.parseFragmentName()
	p.expectKeyword(identkeyword.ON)
	return &ast.FragmentDefinition{
		Position:      fragment.TextPosition,
		Name:          name,
		TypeCondition: p.parseNamedType(),
		Directives:    p.parseDirectives(false),
		SelectionSet:  p.parseSelectionSet(),
	}
}

// parseValueLiteral dispatches on the current token. isConst forbids
// variables; a dollar in const position is a syntax error.
func (p *Parser) parseValueLiteral(isConst bool) ast.Value {
	next := p.peekToken()
	switch next.Keyword {
	case keyword.LBRACK:
		return p.parseListValue(isConst)
	case keyword.LBRACE:
		return p.parseObjectValue(isConst)
	case keyword.INTEGER:
		return p.parseIntValue()
	case keyword.FLOAT:
		return p.parseFloatValue()
	case keyword.STRING, keyword.BLOCKSTRING:
		return p.parseStringValue()
	case keyword.IDENT:
		return p.parseIdentValue()
	case keyword.DOLLAR:
		if !isConst {
			return p.parseVariable()
		}
	}
	p.errUnexpectedToken(p.read())
	return nil
}

func (p *Parser) parseListValue(isConst bool) *ast.ListValue {
	open, values := anyOf(p, keyword.LBRACK, keyword.RBRACK, func() ast.Value {
		return p.parseValueLiteral(isConst)
	})
	return &ast.ListValue{
		Position: open.TextPosition,
		Values:   values,
	}
}

func (p *Parser) parseObjectValue(isConst bool) *ast.ObjectValue {
	open, fields := anyOf(p, keyword.LBRACE, keyword.RBRACE, func() *ast.ObjectField {
		return p.parseObjectField(isConst)
	})
	return &ast.ObjectValue{
		Position: open.TextPosition,
		Fields:   fields,
	}
}

func (p *Parser) parseObjectField(isConst bool) *ast.ObjectField {
	name := p.parseName()
	p.expectToken(keyword.COLON)
	return &ast.ObjectField{
		Position: name.Position,
		Name:     name,
		Value:    p.parseValueLiteral(isConst),
	}
}

func (p *Parser) parseIntValue() *ast.IntValue {
	intToken := p.expectToken(keyword.INTEGER)
	value, err := strconv.ParseInt(intToken.Literal, 10, 64)
	if err != nil {
		p.errUnexpectedToken(intToken)
		return nil
	}
	return &ast.IntValue{
		Position: intToken.TextPosition,
		Value:    value,
	}
}

func (p *Parser) parseFloatValue() *ast.FloatValue {
	floatToken := p.expectToken(keyword.FLOAT)
	value, err := strconv.ParseFloat(floatToken.Literal, 64)
	if err != nil {
		p.errUnexpectedToken(floatToken)
		return nil
	}
	return &ast.FloatValue{
		Position: floatToken.TextPosition,
		Value:    value,
	}
}

func (p *Parser) parseStringValue() *ast.StringValue {
	str := p.read()
	if !str.Keyword.IsStringValue() {
		p.errUnexpectedToken(str)
		return nil
	}
	return &ast.StringValue{
		Position: str.TextPosition,
		Value:    str.Literal,
		Block:    str.Keyword == keyword.BLOCKSTRING,
	}
}

// parseIdentValue turns true/false into BooleanValue, null into NullValue
// and every other name into an EnumValue.
func (p *Parser) parseIdentValue() ast.Value {
	ident := p.expectToken(keyword.IDENT)
	switch identkeyword.KeywordFromLiteral(ident.Literal) {
	case identkeyword.TRUE:
		return &ast.BooleanValue{Position: ident.TextPosition, Value: true}
	case identkeyword.FALSE:
		return &ast.BooleanValue{Position: ident.TextPosition, Value: false}
	case identkeyword.NULL:
		return &ast.NullValue{Position: ident.TextPosition}
	default:
		return &ast.EnumValue{Position: ident.TextPosition, Value: ident.Literal}
	}
}

func (p *Parser) parseDirectives(isConst bool) []*ast.Directive {
	directives := make([]*ast.Directive, 0, 2)
	for p.err == nil && p.peekEquals(keyword.AT) {
		directives = append(directives, p.parseDirective(isConst))
	}
	return directives
}

func (p *Parser) parseDirective(isConst bool) *ast.Directive {
	at := p.expectToken(keyword.AT)
	return &ast.Directive{
		Position:  at.TextPosition,
		Name:      p.parseName(),
		Arguments: p.parseArguments(isConst),
	}
}

func (p *Parser) parseTypeReference() ast.Type {
	var t ast.Type

	if open, ok := p.expectOptionalToken(keyword.LBRACK); ok {
		inner := p.parseTypeReference()
		p.expectToken(keyword.RBRACK)
		t = &ast.ListType{
			Position: open.TextPosition,
			Type:     inner,
		}
	} else {
		t = p.parseNamedType()
	}

	if p.err != nil {
		return nil
	}

	if bang, ok := p.expectOptionalToken(keyword.BANG); ok {
		return &ast.NonNullType{
			Position: bang.TextPosition,
			Type:     t,
		}
	}

	return t
}

func (p *Parser) parseNamedType() *ast.NamedType {
	name := p.parseName()
	return &ast.NamedType{
		Position: name.Position,
		Name:     name,
	}
}

// parseTypeSystemDefinition resolves the production from the keyword after
// an optional leading description. This is the one place that needs a
// second token of lookahead.
func (p *Parser) parseTypeSystemDefinition() ast.Definition {
	keywordToken := p.peekToken()
	if keywordToken.Keyword.IsStringValue() {
		keywordToken = p.lookahead()
	}

	if keywordToken.Keyword == keyword.IDENT {
		switch identkeyword.KeywordFromLiteral(keywordToken.Literal) {
		case identkeyword.SCHEMA:
			return p.parseSchemaDefinition()
		case identkeyword.SCALAR:
			return p.parseScalarTypeDefinition()
		case identkeyword.TYPE:
			return p.parseObjectTypeDefinition()
		case identkeyword.INTERFACE:
			return p.parseInterfaceTypeDefinition()
		case identkeyword.UNION:
			return p.parseUnionTypeDefinition()
		case identkeyword.ENUM:
			return p.parseEnumTypeDefinition()
		case identkeyword.INPUT:
			return p.parseInputObjectTypeDefinition()
		case identkeyword.DIRECTIVE:
			return p.parseDirectiveDefinition()
		}
	}

	p.errUnexpectedToken(p.read())
	return nil
}

// parseDescription consumes a leading string literal if present.
func (p *Parser) parseDescription() *ast.StringValue {
	if p.peek().IsStringValue() {
		return p.parseStringValue()
	}
	return nil
}

func (p *Parser) parseSchemaDefinition() *ast.SchemaDefinition {
	schemaLiteral := p.expectKeyword(identkeyword.SCHEMA)
	directives := p.parseDirectives(true)
	_, operationTypes := many(p, keyword.LBRACE, keyword.RBRACE, p.parseOperationTypeDefinition)
	return &ast.SchemaDefinition{
		Position:       schemaLiteral.TextPosition,
		Directives:     directives,
		OperationTypes: operationTypes,
	}
}

func (p *Parser) parseOperationTypeDefinition() *ast.OperationTypeDefinition {
	start := p.peekToken().TextPosition
	operation := p.parseOperationType()
	p.expectToken(keyword.COLON)
	return &ast.OperationTypeDefinition{
		Position:  start,
		Operation: operation,
		Type:      p.parseNamedType(),
	}
}

func (p *Parser) parseScalarTypeDefinition() *ast.ScalarTypeDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.SCALAR)
	return &ast.ScalarTypeDefinition{
		Position:    start,
		Description: description,
		Name:        p.parseName(),
		Directives:  p.parseDirectives(true),
	}
}

func (p *Parser) parseObjectTypeDefinition() *ast.ObjectTypeDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.TYPE)
	return &ast.ObjectTypeDefinition{
		Position:    start,
		Description: description,
		Name:        p.parseName(),
		Interfaces:  p.parseImplementsInterfaces(),
		Directives:  p.parseDirectives(true),
		Fields:      p.parseFieldsDefinition(),
	}
}

// parseImplementsInterfaces parses 'implements &? Type (& Type)*'.
func (p *Parser) parseImplementsInterfaces() []*ast.NamedType {
	if _, ok := p.expectOptionalKeyword(identkeyword.IMPLEMENTS); !ok {
		return []*ast.NamedType{}
	}

	p.expectOptionalToken(keyword.AND)

	types := []*ast.NamedType{p.parseNamedType()}
	for p.err == nil {
		if _, ok := p.expectOptionalToken(keyword.AND); !ok {
			break
		}
		types = append(types, p.parseNamedType())
	}
	return types
}

func (p *Parser) parseFieldsDefinition() []*ast.FieldDefinition {
	_, fields := optionalMany(p, keyword.LBRACE, keyword.RBRACE, p.parseFieldDefinition)
	return fields
}

func (p *Parser) parseFieldDefinition() *ast.FieldDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	name := p.parseName()
	arguments := p.parseArgumentDefs()
	p.expectToken(keyword.COLON)
	return &ast.FieldDefinition{
		Position:    start,
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        p.parseTypeReference(),
		Directives:  p.parseDirectives(true),
	}
}

func (p *Parser) parseArgumentDefs() []*ast.InputValueDefinition {
	_, arguments := optionalMany(p, keyword.LPAREN, keyword.RPAREN, p.parseInputValueDefinition)
	return arguments
}

func (p *Parser) parseInputValueDefinition() *ast.InputValueDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	name := p.parseName()
	p.expectToken(keyword.COLON)

	inputValueDefinition := &ast.InputValueDefinition{
		Position:    start,
		Description: description,
		Name:        name,
		Type:        p.parseTypeReference(),
	}

	if _, ok := p.expectOptionalToken(keyword.EQUALS); ok {
		inputValueDefinition.DefaultValue = p.parseValueLiteral(true)
	}
	inputValueDefinition.Directives = p.parseDirectives(true)

	return inputValueDefinition
}

func (p *Parser) parseInterfaceTypeDefinition() *ast.InterfaceTypeDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.INTERFACE)
	return &ast.InterfaceTypeDefinition{
		Position:    start,
		Description: description,
		Name:        p.parseName(),
		Directives:  p.parseDirectives(true),
		Fields:      p.parseFieldsDefinition(),
	}
}

func (p *Parser) parseUnionTypeDefinition() *ast.UnionTypeDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.UNION)
	return &ast.UnionTypeDefinition{
		Position:    start,
		Description: description,
		Name:        p.parseName(),
		Directives:  p.parseDirectives(true),
		Types:       p.parseUnionMemberTypes(),
	}
}

// parseUnionMemberTypes parses '= |? Type (| Type)*'. Without the equals
// sign the member list is empty.
func (p *Parser) parseUnionMemberTypes() []*ast.NamedType {
	if _, ok := p.expectOptionalToken(keyword.EQUALS); !ok {
		return []*ast.NamedType{}
	}

	p.expectOptionalToken(keyword.PIPE)

	types := []*ast.NamedType{p.parseNamedType()}
	for p.err == nil {
		if _, ok := p.expectOptionalToken(keyword.PIPE); !ok {
			break
		}
		types = append(types, p.parseNamedType())
	}
	return types
}

func (p *Parser) parseEnumTypeDefinition() *ast.EnumTypeDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.ENUM)
	return &ast.EnumTypeDefinition{
		Position:    start,
		Description: description,
		Name:        p.parseName(),
		Directives:  p.parseDirectives(true),
		Values:      p.parseEnumValuesDefinition(),
	}
}

func (p *Parser) parseEnumValuesDefinition() []*ast.EnumValueDefinition {
	_, values := optionalMany(p, keyword.LBRACE, keyword.RBRACE, p.parseEnumValueDefinition)
	return values
}

func (p *Parser) parseEnumValueDefinition() *ast.EnumValueDefinition {
	start := p.peekToken().TextPosition
	return &ast.EnumValueDefinition{
		Position:    start,
		Description: p.parseDescription(),
		Name:        p.parseName(),
		Directives:  p.parseDirectives(true),
	}
}

func (p *Parser) parseInputObjectTypeDefinition() *ast.InputObjectTypeDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.INPUT)
	return &ast.InputObjectTypeDefinition{
		Position:    start,
		Description: description,
		Name:        p.parseName(),
		Directives:  p.parseDirectives(true),
		Fields:      p.parseInputFieldsDefinition(),
	}
}

func (p *Parser) parseInputFieldsDefinition() []*ast.InputValueDefinition {
	_, fields := optionalMany(p, keyword.LBRACE, keyword.RBRACE, p.parseInputValueDefinition)
	return fields
}

func (p *Parser) parseDirectiveDefinition() *ast.DirectiveDefinition {
	start := p.peekToken().TextPosition
	description := p.parseDescription()
	p.expectKeyword(identkeyword.DIRECTIVE)
	p.expectToken(keyword.AT)
	name := p.parseName()
	arguments := p.parseArgumentDefs()
	_, repeatable := p.expectOptionalKeyword(identkeyword.REPEATABLE)
	p.expectKeyword(identkeyword.ON)
	return &ast.DirectiveDefinition{
		Position:    start,
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   p.parseDirectiveLocations(),
	}
}

// parseDirectiveLocations parses '|? Location (| Location)*'.
func (p *Parser) parseDirectiveLocations() []*ast.Name {
	p.expectOptionalToken(keyword.PIPE)

	locations := []*ast.Name{p.parseDirectiveLocation()}
	for p.err == nil {
		if _, ok := p.expectOptionalToken(keyword.PIPE); !ok {
			break
		}
		locations = append(locations, p.parseDirectiveLocation())
	}
	return locations
}

func (p *Parser) parseDirectiveLocation() *ast.Name {
	name := p.expectToken(keyword.IDENT)
	if p.err == nil && ast.DirectiveLocationFromLiteral(name.Literal) == ast.DirectiveLocationUnknown {
		p.errUnexpectedToken(name)
		return nil
	}
	return &ast.Name{
		Position: name.TextPosition,
		Value:    name.Literal,
	}
}

func (p *Parser) parseTypeSystemExtension() ast.Definition {
	extend := p.expectKeyword(identkeyword.EXTEND)

	next := p.peekToken()
	if next.Keyword == keyword.IDENT {
		switch identkeyword.KeywordFromLiteral(next.Literal) {
		case identkeyword.SCHEMA:
			return p.parseSchemaExtension(extend)
		case identkeyword.SCALAR:
			return p.parseScalarTypeExtension(extend)
		case identkeyword.TYPE:
			return p.parseObjectTypeExtension(extend)
		case identkeyword.INTERFACE:
			return p.parseInterfaceTypeExtension(extend)
		case identkeyword.UNION:
			return p.parseUnionTypeExtension(extend)
		case identkeyword.ENUM:
			return p.parseEnumTypeExtension(extend)
		case identkeyword.INPUT:
			return p.parseInputObjectTypeExtension(extend)
		}
	}

	p.errUnexpectedToken(p.read())
	return nil
}

// Every extension must add something; a bare 'extend type Name' does not
// parse.
func (p *Parser) errEmptyExtension() {
	p.errUnexpectedToken(p.peekToken())
}

func (p *Parser) parseSchemaExtension(extend token.Token) *ast.SchemaExtension {
	p.expectKeyword(identkeyword.SCHEMA)
	directives := p.parseDirectives(true)

	operationTypes := []*ast.OperationTypeDefinition{}
	if p.err == nil && p.peekEquals(keyword.LBRACE) {
		_, operationTypes = many(p, keyword.LBRACE, keyword.RBRACE, p.parseOperationTypeDefinition)
	}

	if p.err == nil && len(directives) == 0 && len(operationTypes) == 0 {
		p.errEmptyExtension()
	}
	return &ast.SchemaExtension{
		Position:       extend.TextPosition,
		Directives:     directives,
		OperationTypes: operationTypes,
	}
}

func (p *Parser) parseScalarTypeExtension(extend token.Token) *ast.ScalarTypeExtension {
	p.expectKeyword(identkeyword.SCALAR)
	name := p.parseName()
	directives := p.parseDirectives(true)
	if p.err == nil && len(directives) == 0 {
		p.errEmptyExtension()
	}
	return &ast.ScalarTypeExtension{
		Position:   extend.TextPosition,
		Name:       name,
		Directives: directives,
	}
}

func (p *Parser) parseObjectTypeExtension(extend token.Token) *ast.ObjectTypeExtension {
	p.expectKeyword(identkeyword.TYPE)
	name := p.parseName()
	interfaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	fields := p.parseFieldsDefinition()
	if p.err == nil && len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		p.errEmptyExtension()
	}
	return &ast.ObjectTypeExtension{
		Position:   extend.TextPosition,
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
	}
}

func (p *Parser) parseInterfaceTypeExtension(extend token.Token) *ast.InterfaceTypeExtension {
	p.expectKeyword(identkeyword.INTERFACE)
	name := p.parseName()
	directives := p.parseDirectives(true)
	fields := p.parseFieldsDefinition()
	if p.err == nil && len(directives) == 0 && len(fields) == 0 {
		p.errEmptyExtension()
	}
	return &ast.InterfaceTypeExtension{
		Position:   extend.TextPosition,
		Name:       name,
		Directives: directives,
		Fields:     fields,
	}
}

func (p *Parser) parseUnionTypeExtension(extend token.Token) *ast.UnionTypeExtension {
	p.expectKeyword(identkeyword.UNION)
	name := p.parseName()
	directives := p.parseDirectives(true)
	types := p.parseUnionMemberTypes()
	if p.err == nil && len(directives) == 0 && len(types) == 0 {
		p.errEmptyExtension()
	}
	return &ast.UnionTypeExtension{
		Position:   extend.TextPosition,
		Name:       name,
		Directives: directives,
		Types:      types,
	}
}

func (p *Parser) parseEnumTypeExtension(extend token.Token) *ast.EnumTypeExtension {
	p.expectKeyword(identkeyword.ENUM)
	name := p.parseName()
	directives := p.parseDirectives(true)
	values := p.parseEnumValuesDefinition()
	if p.err == nil && len(directives) == 0 && len(values) == 0 {
		p.errEmptyExtension()
	}
	return &ast.EnumTypeExtension{
		Position:   extend.TextPosition,
		Name:       name,
		Directives: directives,
		Values:     values,
	}
}

func (p *Parser) parseInputObjectTypeExtension(extend token.Token) *ast.InputObjectTypeExtension {
	p.expectKeyword(identkeyword.INPUT)
	name := p.parseName()
	directives := p.parseDirectives(true)
	fields := p.parseInputFieldsDefinition()
	if p.err == nil && len(directives) == 0 && len(fields) == 0 {
		p.errEmptyExtension()
	}
	return &ast.InputObjectTypeExtension{
		Position:   extend.TextPosition,
		Name:       name,
		Directives: directives,
		Fields:     fields,
	}
}
