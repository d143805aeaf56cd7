package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a single dispatch through HTTPTransport.
const DefaultTimeout = 30 * time.Second

// HTTPTransport is the net/http-backed Transport used when the embedder
// does not bring its own. Connectivity concerns live here; status
// classification stays with the Invoker, so every response that makes
// it off the wire is returned as-is, whatever its status code.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport builds a transport with the default timeout.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: DefaultTimeout}}
}

// NewHTTPTransportWithClient wraps a caller-supplied http.Client, for
// embedders that need custom TLS, proxy, or timeout settings.
func NewHTTPTransportWithClient(c *http.Client) *HTTPTransport {
	return &HTTPTransport{client: c}
}

// Dispatch sends one request and reads the full response body. Each
// dispatch is tagged with a correlation ID for request tracing.
func (t *HTTPTransport) Dispatch(ctx context.Context, req Request) (*Response, error) {
	correlationID := uuid.New().String()

	logger := log.With().
		Str("method", req.Method).
		Str("url", req.URL).
		Str("correlationId", correlationID).
		Logger()

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for _, h := range req.Headers {
		httpReq.Header.Add(h.Key, h.Value)
	}
	httpReq.Header.Set("X-Correlation-ID", correlationID)

	start := time.Now()
	httpResp, err := t.client.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		logger.Error().Err(err).Dur("duration", duration).Msg("HTTP request failed")
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read response body")
		return nil, err
	}

	logger.Debug().
		Int("status", httpResp.StatusCode).
		Dur("duration", duration).
		Msg("HTTP request completed")

	resp := &Response{
		Body:       string(respBody),
		StatusCode: httpResp.StatusCode,
	}
	for key, values := range httpResp.Header {
		for _, v := range values {
			resp.Headers = append(resp.Headers, Header{Key: key, Value: v})
		}
	}
	return resp, nil
}
