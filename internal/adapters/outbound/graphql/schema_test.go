package graphql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smellview/smellview/internal/adapters/outbound/graphql"
	"github.com/smellview/smellview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema_AllPresent(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	assert.NoError(t, newClient(t, fb, "").ValidateSchema(context.Background()))
}

func TestValidateSchema_ReportsMissingFields(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("introspectRootFields", "__schema", testutil.Schema(
		[]string{"getProjects", "availableRefactorings", "byCommitHash", "login", "getProjectConfig"},
		[]string{"addProject", "addProjectConfig"},
	))

	err := newClient(t, fb, "").ValidateSchema(context.Background())
	var mismatch *graphql.SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))

	var missing []string
	for _, op := range mismatch.Missing {
		missing = append(missing, op.Name)
	}
	assert.Equal(t, []string{"refactor", "getGitHubCommitsForProject"}, missing)
	assert.Contains(t, err.Error(), "refactor mutation.refactor")
}

func TestValidateSchema_NoMutationType(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("introspectRootFields", "__schema", map[string]any{
		"queryType":    map[string]any{"fields": []map[string]string{{"name": "getProjects"}}},
		"mutationType": nil,
	})

	err := newClient(t, fb, "").ValidateSchema(context.Background())
	var mismatch *graphql.SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Len(t, mismatch.Missing, 8)
}
