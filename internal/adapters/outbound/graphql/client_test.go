package graphql_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smellview/smellview/internal/adapters/outbound/graphql"
	"github.com/smellview/smellview/internal/domain"
	"github.com/smellview/smellview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newClient(t *testing.T, fb *testutil.FakeBackend, token string) *graphql.Client {
	t.Helper()
	cfg := domain.DefaultClientConfig()
	cfg.Endpoint = fb.URL
	cfg.Token = token
	cfg.RequestsPerSecond = 0
	return graphql.NewClient(cfg)
}

func TestOperations_AllDeclared(t *testing.T) {
	ops := graphql.Operations()
	require.Len(t, ops, 9)

	names := map[string]bool{}
	for _, op := range ops {
		assert.False(t, names[op.Name], "duplicate operation %s", op.Name)
		names[op.Name] = true
		assert.True(t, strings.HasPrefix(op.Document, string(op.Kind)+" "+op.Name),
			"%s document must start with its kind and name", op.Name)
		assert.Contains(t, op.Document, op.RootField)
	}
}

func TestClient_Projects(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("getProjects", "getProjects", testutil.SampleProjects())

	projects, err := newClient(t, fb, "").Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "spoon", projects[0].ProjectName)
	assert.Equal(t, "INRIA/spoon", projects[0].OwnerRepo())
	require.Len(t, projects[0].Commits, 1)
	assert.Equal(t, 15, projects[0].Commits[0].TotalIssues())
}

func TestClient_BadSmellsForHash_SendsVariablesAndHeaders(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("getBadSmellsForHash", "byCommitHash", testutil.SampleSmells())

	smells, err := newClient(t, fb, "secret").BadSmellsForHash(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Len(t, smells, 4, "client returns the raw list")
	assert.Nil(t, smells[3].Snippet)

	req, ok := fb.LastRequest("getBadSmellsForHash")
	require.True(t, ok)
	assert.Equal(t, "abc123", req.Variables["hash"])
	assert.Equal(t, graphql.GetBadSmellsForHash.Document, req.Query)
	assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("getAvailableRefactorings", "availableRefactorings", []map[string]any{
		{"ruleId": map[string]any{"id": "UnnecessaryToStringCall"}},
	})

	refs, err := newClient(t, fb, "").AvailableRefactorings(context.Background())
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "UnnecessaryToStringCall", refs[0].RuleID.ID)

	req, _ := fb.LastRequest("getAvailableRefactorings")
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestClient_MutationsAndScalars(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("addProject", "addProject", map[string]any{"projectName": "spoon", "projectUrl": "https://github.com/INRIA/spoon"})
	fb.Respond("refactor", "refactor", "Refactoring done")
	fb.Respond("login", "login", true)
	fb.Respond("addProjectConfig", "addProjectConfig", map[string]any{"projectUrl": "u", "sourceFolder": "src"})
	c := newClient(t, fb, "")
	ctx := context.Background()

	p, err := c.AddProject(ctx, "spoon", "https://github.com/INRIA/spoon")
	require.NoError(t, err)
	assert.Equal(t, "spoon", p.ProjectName)
	req, _ := fb.LastRequest("addProject")
	assert.Equal(t, "https://github.com/INRIA/spoon", req.Variables["projectUrl"])

	status, err := c.Refactor(ctx, []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, "Refactoring done", status)
	req, _ = fb.LastRequest("refactor")
	assert.Equal(t, []any{"s1", "s2"}, req.Variables["badSmellIdentifier"])

	login, err := c.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, "true", login)

	saved, err := c.AddProjectConfig(ctx, domain.ProjectConfig{ProjectURL: "u", SourceFolder: "src"})
	require.NoError(t, err)
	assert.Equal(t, "src", saved.SourceFolder)
	req, _ = fb.LastRequest("addProjectConfig")
	assert.Equal(t, map[string]any{"projectUrl": "u", "sourceFolder": "src"}, req.Variables["projectConfig"])
}

func TestClient_ProjectConfigNullIsNotFound(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("getProjectConfig", "getProjectConfig", nil)

	_, err := newClient(t, fb, "").ProjectConfig(context.Background(), "https://github.com/o/r")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_GitHubCommits(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("getGitHubCommitsForProject", "getGitHubCommitsForProject", []map[string]any{
		testutil.SampleCommit("c1"), testutil.SampleCommit("c2"),
	})

	commits, err := newClient(t, fb, "").GitHubCommits(context.Background(), "spoon")
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "c2", commits[1].CommitHash)
	assert.True(t, commits[0].AnalyzerStatuses[0].Succeeded())
}

func TestClient_GraphQLErrors(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Fail("getProjects", "boom")

	_, err := newClient(t, fb, "").Projects(context.Background())
	require.Error(t, err)
	var respErr *graphql.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, "getProjects", respErr.Operation)
	assert.Contains(t, err.Error(), "boom")
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestClient_UnauthorizedGraphQLError(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Fail("refactor", "Unauthorized")

	_, err := newClient(t, fb, "").Refactor(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_HTTPStatusErrors(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Status("login", http.StatusUnauthorized)
	fb.Status("getProjects", http.StatusBadGateway)
	c := newClient(t, fb, "")

	_, err := c.Login(context.Background())
	var httpErr *graphql.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = c.Projects(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_UnreachableBackend(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	c := newClient(t, fb, "")
	fb.Close()

	_, err := c.Projects(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_MissingRootField(t *testing.T) {
	fb := testutil.NewFakeBackend(t)

	_, err := newClient(t, fb, "").Projects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "getProjects" field`)
}

func TestClient_CanceledContext(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, fb, "").Projects(ctx)
	assert.Error(t, err)
}

func TestClient_RateLimitThrottlesAfterBurst(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("login", "login", "https://github.com/login/oauth")

	cfg := domain.DefaultClientConfig()
	cfg.Endpoint = fb.URL
	cfg.RequestsPerSecond = 4
	cfg.Burst = 1
	client := graphql.NewClient(cfg)

	start := time.Now()
	for range 3 {
		_, err := client.Login(context.Background())
		require.NoError(t, err)
	}
	// one token up front, then two more at 250ms each
	assert.GreaterOrEqual(t, time.Since(start), 450*time.Millisecond)
}

func TestClient_ZeroRateIsUnlimited(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("login", "login", "https://github.com/login/oauth")

	cfg := domain.DefaultClientConfig()
	cfg.Endpoint = fb.URL
	cfg.RequestsPerSecond = 0
	cfg.Burst = 1
	client := graphql.NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for range 20 {
		_, err := client.Login(ctx)
		require.NoError(t, err)
	}
}

func TestClient_WithLimiterRejectsPastDeadline(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("login", "login", "https://github.com/login/oauth")

	cfg := domain.DefaultClientConfig()
	cfg.Endpoint = fb.URL
	client := graphql.NewClient(cfg, graphql.WithLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))

	_, err := client.Login(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = client.Login(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
	assert.Len(t, fb.Requests(), 1)
}

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return http.DefaultTransport.RoundTrip(r)
}

func TestClient_WithHTTPClient(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("login", "login", "https://github.com/login/oauth")

	transport := &countingTransport{}
	cfg := domain.DefaultClientConfig()
	cfg.Endpoint = fb.URL
	cfg.RequestsPerSecond = 0
	client := graphql.NewClient(cfg, graphql.WithHTTPClient(&http.Client{Transport: transport}))

	url, err := client.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/login/oauth", url)
	assert.Equal(t, int32(1), transport.calls.Load())
}
