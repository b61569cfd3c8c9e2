package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/entity"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AuthHeader carries the OneSource API token.
const AuthHeader = "x-bp-token"

// GraphQLClient defines the interface for executing GraphQL operations.
type GraphQLClient interface {
	// Do sends op and decodes the "data" object into out.
	Do(ctx context.Context, op Operation, out any) error
}

// HTTPStatusError is returned for non-2xx responses.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("graphql endpoint responded with status %d: %s", e.StatusCode, e.Body)
}

// GraphQLError is returned when the response carries an "errors" array.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql errors: " + strings.Join(e.Messages, "; ")
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type graphQLErrorItem struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type graphQLResponse struct {
	Data   jsoniter.RawMessage `json:"data"`
	Errors []graphQLErrorItem  `json:"errors"`
}

// ClientOptions holds the settings of the OneSource client.
type ClientOptions struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	// RateLimit is requests per second, 0 disables limiting.
	RateLimit  float64
	BurstLimit int
}

// oneSourceClientImpl is the fasthttp implementation of GraphQLClient.
type oneSourceClientImpl struct {
	client   *fasthttp.Client
	endpoint string
	token    string
	timeout  time.Duration
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewOneSourceClient creates a new instance of oneSourceClientImpl.
func NewOneSourceClient(opts ClientOptions, logger *zap.Logger) GraphQLClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.BurstLimit
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return &oneSourceClientImpl{
		client:   &fasthttp.Client{Name: "onesource-nft-viewer"},
		endpoint: opts.Endpoint,
		token:    opts.Token,
		timeout:  opts.Timeout,
		limiter:  limiter,
		logger:   logger.Named("OneSourceClient"),
	}
}

// Do implements the GraphQLClient interface.
func (c *oneSourceClientImpl) Do(ctx context.Context, op Operation, out any) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveGraphQLRequest(op.Name, started, err) }()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait for %s: %w", op.Name, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s cancelled before sending: %w", op.Name, err)
	}

	payload, err := json.Marshal(graphQLRequest{Query: op.Query, Variables: op.Variables, OperationName: op.Name})
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", op.Name, err)
	}

	c.logger.Debug("Sending GraphQL request", zap.String("operation", op.Name), zap.Any("variables", op.Variables))

	deadline, ok := ctx.Deadline()
	if !ok || time.Until(deadline) > c.timeout {
		deadline = time.Now().Add(c.timeout)
	}

	// fasthttp не смотрит на ctx, поэтому запрос идет в своей горутине,
	// а отмена ctx возвращает управление сразу
	done := make(chan httpResult, 1)
	go func() {
		done <- c.send(payload, deadline)
	}()

	var res httpResult
	select {
	case <-ctx.Done():
		c.logger.Debug("GraphQL request abandoned", zap.String("operation", op.Name), zap.Error(ctx.Err()))
		return fmt.Errorf("%s cancelled in flight: %w", op.Name, ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		if errors.Is(res.err, fasthttp.ErrTimeout) {
			c.logger.Warn("GraphQL request timed out", zap.String("operation", op.Name), zap.Duration("timeout", c.timeout))
		} else {
			c.logger.Error("Failed to execute GraphQL request", zap.String("operation", op.Name), zap.Error(res.err))
		}
		return fmt.Errorf("failed to execute %s request to %s: %w", op.Name, c.endpoint, res.err)
	}

	rawBody := res.body
	status := res.status
	if status < 200 || status > 299 {
		c.logger.Error("GraphQL endpoint returned non-2xx status",
			zap.String("operation", op.Name),
			zap.Int("statusCode", status),
			zap.ByteString("responseBody", rawBody))
		return &HTTPStatusError{StatusCode: status, Body: truncate(string(rawBody), 512)}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		c.logger.Error("Failed to unmarshal GraphQL envelope",
			zap.String("operation", op.Name),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return fmt.Errorf("%w: %s: %v", entity.ErrMalformedResponse, op.Name, err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		c.logger.Warn("GraphQL response contains errors",
			zap.String("operation", op.Name),
			zap.Strings("errors", messages))
		return &GraphQLError{Messages: messages}
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: %s: empty data", entity.ErrMalformedResponse, op.Name)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		c.logger.Error("Failed to unmarshal GraphQL data",
			zap.String("operation", op.Name),
			zap.Error(err))
		return fmt.Errorf("%w: %s: %v", entity.ErrMalformedResponse, op.Name, err)
	}

	c.logger.Debug("GraphQL request succeeded",
		zap.String("operation", op.Name),
		zap.Duration("took", time.Since(started)))
	return nil
}

// httpResult is what survives the release of the fasthttp response.
type httpResult struct {
	status int
	body   []byte
	err    error
}

// send owns req/resp from acquire to release; the body is copied out before resp goes back to the pool.
func (c *oneSourceClientImpl) send(payload []byte, deadline time.Time) httpResult {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.Header.Set(AuthHeader, c.token)
	req.SetBodyRaw(payload)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return httpResult{err: err}
	}
	return httpResult{
		status: resp.StatusCode(),
		body:   append([]byte(nil), resp.Body()...),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
