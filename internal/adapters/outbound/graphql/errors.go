package graphql

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/smellview/smellview/internal/domain"
)

// GQLError is one entry of a GraphQL response's "errors" array.
type GQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError is returned when the backend answered with GraphQL errors.
type ResponseError struct {
	Operation string
	Errors    []GQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("graphql %s: %s", e.Operation, strings.Join(msgs, "; "))
}

// Is lets errors.Is match domain.ErrUnauthorized when the backend reports an
// authentication failure through the errors array.
func (e *ResponseError) Is(target error) bool {
	if target != domain.ErrUnauthorized {
		return false
	}
	for _, ge := range e.Errors {
		lower := strings.ToLower(ge.Message)
		if strings.Contains(lower, "unauthorized") || strings.Contains(lower, "forbidden") {
			return true
		}
	}
	return false
}

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("graphql %s: http %d: %s", e.Operation, e.StatusCode, e.Body)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case domain.ErrBackendUnavailable:
		return e.StatusCode >= 500
	}
	return false
}

// SchemaMismatchError lists operations whose root field the backend schema lacks.
type SchemaMismatchError struct {
	Missing []Operation
}

func (e *SchemaMismatchError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, op := range e.Missing {
		names = append(names, fmt.Sprintf("%s %s.%s", op.Name, op.Kind, op.RootField))
	}
	return "backend schema is missing: " + strings.Join(names, ", ")
}
