// Package testutil provides shared test helpers for the smellview project.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Request is a GraphQL request received by FakeBackend.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Header        http.Header    `json:"-"`
}

// FakeBackend is an in-process GraphQL backend keyed by operation name.
// Operations without a configured response answer with {"data":{}}.
type FakeBackend struct {
	*httptest.Server

	mu       sync.Mutex
	data     map[string]map[string]any
	errors   map[string]string
	status   map[string]int
	requests []Request
}

// NewFakeBackend starts a fake backend that is closed with the test.
// It answers schema introspection with the full set of root fields.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	f := &FakeBackend{
		data:   map[string]map[string]any{},
		errors: map[string]string{},
		status: map[string]int{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)

	f.Respond("introspectRootFields", "__schema", Schema(
		[]string{"getProjects", "availableRefactorings", "byCommitHash", "login", "getProjectConfig", "getGitHubCommitsForProject"},
		[]string{"addProject", "refactor", "addProjectConfig"},
	))
	return f
}

// Respond sets the value returned under rootField for operation op.
func (f *FakeBackend) Respond(op, rootField string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[op] = map[string]any{rootField: value}
}

// Fail makes op answer with a GraphQL error carrying message.
func (f *FakeBackend) Fail(op, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[op] = message
}

// Status makes op answer with the given HTTP status and no body.
func (f *FakeBackend) Status(op string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status[op] = code
}

// Requests returns every request received so far.
func (f *FakeBackend) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// LastRequest returns the most recent request for op.
func (f *FakeBackend) LastRequest(op string) (Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].OperationName == op {
			return f.requests[i], true
		}
	}
	return Request{}, false
}

func (f *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Header = r.Header.Clone()

	f.mu.Lock()
	f.requests = append(f.requests, req)
	code, hasStatus := f.status[req.OperationName]
	msg, hasError := f.errors[req.OperationName]
	data := f.data[req.OperationName]
	f.mu.Unlock()

	if hasStatus {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if hasError {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":   nil,
			"errors": []map[string]any{{"message": msg, "path": []string{req.OperationName}}},
		})
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

// Schema builds an introspection payload listing the given root fields.
func Schema(queryFields, mutationFields []string) map[string]any {
	fields := func(names []string) []map[string]string {
		out := make([]map[string]string, 0, len(names))
		for _, n := range names {
			out = append(out, map[string]string{"name": n})
		}
		return out
	}
	return map[string]any{
		"queryType":    map[string]any{"fields": fields(queryFields)},
		"mutationType": map[string]any{"fields": fields(mutationFields)},
	}
}
