package graphql

import (
	"context"
	"fmt"
)

var introspectRootFields = Operation{
	Name:      "introspectRootFields",
	Kind:      KindQuery,
	RootField: "__schema",
	Document: `query introspectRootFields {
  __schema {
    queryType { fields { name } }
    mutationType { fields { name } }
  }
}`,
}

type introspectedType struct {
	Fields []struct {
		Name string `json:"name"`
	} `json:"fields"`
}

type introspectedSchema struct {
	QueryType    *introspectedType `json:"queryType"`
	MutationType *introspectedType `json:"mutationType"`
}

// ValidateSchema checks that every operation's root field exists on the
// backend's query or mutation type. It returns *SchemaMismatchError listing
// the missing ones.
func (c *Client) ValidateSchema(ctx context.Context) error {
	var schema introspectedSchema
	if err := c.Do(ctx, introspectRootFields, nil, &schema); err != nil {
		return fmt.Errorf("introspecting schema: %w", err)
	}

	available := map[OperationKind]map[string]bool{
		KindQuery:    fieldSet(schema.QueryType),
		KindMutation: fieldSet(schema.MutationType),
	}

	var missing []Operation
	for _, op := range Operations() {
		if !available[op.Kind][op.RootField] {
			missing = append(missing, op)
		}
	}
	if len(missing) > 0 {
		return &SchemaMismatchError{Missing: missing}
	}
	return nil
}

func fieldSet(t *introspectedType) map[string]bool {
	set := make(map[string]bool)
	if t == nil {
		return set
	}
	for _, f := range t.Fields {
		set[f.Name] = true
	}
	return set
}
