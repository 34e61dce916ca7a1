package graphql

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/dgraph-io/gqlparser/v2/parser"
)

var (
	// ErrUndeclaredVariable is returned when a request binds a variable the operation does not define.
	ErrUndeclaredVariable = errors.New("variable not declared by operation")
	// ErrMissingVariable is returned when a variable the operation defines is not bound.
	ErrMissingVariable = errors.New("declared variable not supplied")
)

// Operation is a fixed GraphQL document holding exactly one query or
// mutation.
type Operation struct {
	Name      string
	Type      ast.Operation
	Query     string
	Variables []string
}

// Request is the JSON body POSTed to a GraphQL endpoint.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// ParseOperation parses query and checks that it defines a single query or
// mutation.
func ParseOperation(query string) (Operation, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: query})
	if gqlErr != nil {
		return Operation{}, fmt.Errorf("parse graphql document: %s", gqlErr.Message)
	}

	if len(doc.Operations) != 1 {
		return Operation{}, fmt.Errorf("graphql document must define exactly one operation, found %d", len(doc.Operations))
	}

	def := doc.Operations[0]
	if def.Operation != ast.Query && def.Operation != ast.Mutation {
		return Operation{}, fmt.Errorf("unsupported operation type %q", def.Operation)
	}

	op := Operation{
		Name:  def.Name,
		Type:  def.Operation,
		Query: query,
	}
	for _, v := range def.VariableDefinitions {
		op.Variables = append(op.Variables, v.Variable)
	}
	sort.Strings(op.Variables)

	return op, nil
}

// MustParseOperation is like ParseOperation but panics on error. It is meant
// for package-level documents.
func MustParseOperation(query string) Operation {
	op, err := ParseOperation(query)
	if err != nil {
		panic(err)
	}
	return op
}

// NewRequest binds vars to the operation. Every declared variable must be
// supplied and nothing else may be.
func (o Operation) NewRequest(vars map[string]any) (Request, error) {
	declared := make(map[string]bool, len(o.Variables))
	for _, name := range o.Variables {
		declared[name] = true
		if _, ok := vars[name]; !ok {
			return Request{}, fmt.Errorf("%s $%s: %w", o.Name, name, ErrMissingVariable)
		}
	}

	for name := range vars {
		if !declared[name] {
			return Request{}, fmt.Errorf("%s $%s: %w", o.Name, name, ErrUndeclaredVariable)
		}
	}

	req := Request{Query: o.Query}
	if len(vars) > 0 {
		req.Variables = vars
	}
	return req, nil
}
