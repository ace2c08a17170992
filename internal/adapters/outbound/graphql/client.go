package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/smellview/smellview/internal/domain"
	"github.com/smellview/smellview/internal/observability"
)

const (
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

// Client sends GraphQL operations to the analysis backend over HTTP.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient builds a client from cfg. A zero request rate disables limiting.
func NewClient(cfg domain.ClientConfig, opts ...Option) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := max(cfg.Burst, 1)

	c := &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(limit, burst),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []GQLError                 `json:"errors"`
}

// Do sends op with vars and decodes the operation's root field into out.
// A nil out discards the data.
func (c *Client) Do(ctx context.Context, op Operation, vars map[string]any, out any) (err error) {
	ctx, span := observability.Tracer().Start(ctx, "graphql."+op.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("graphql.operation.name", op.Name),
			attribute.String("graphql.operation.type", string(op.Kind)),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		observability.GraphQLRequestsTotal.WithLabelValues(op.Name, outcome).Inc()
		observability.GraphQLRequestDuration.WithLabelValues(op.Name).Observe(time.Since(start).Seconds())
		span.End()
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("graphql %s: rate limit: %w", op.Name, err)
	}

	body, err := json.Marshal(request{Query: op.Document, OperationName: op.Name, Variables: vars})
	if err != nil {
		return fmt.Errorf("graphql %s: encoding request: %w", op.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graphql %s: building request: %w", op.Name, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("graphql request", "operation", op.Name, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graphql %s: %w: %w", op.Name, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{Operation: op.Name, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("graphql %s: decoding response: %w", op.Name, err)
	}
	if len(decoded.Errors) > 0 {
		return &ResponseError{Operation: op.Name, Errors: decoded.Errors}
	}

	c.logger.Debug("graphql response", "operation", op.Name, "request_id", requestID,
		"elapsed", time.Since(start))

	if out == nil {
		return nil
	}
	raw, ok := decoded.Data[op.RootField]
	if !ok {
		return fmt.Errorf("graphql %s: response has no %q field", op.Name, op.RootField)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("graphql %s: decoding %s: %w", op.Name, op.RootField, err)
	}
	return nil
}
