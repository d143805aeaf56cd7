// Package client implements the invocation engine shared by every
// service client in this SDK: URL construction from path templates,
// header and body assembly, dispatch through a pluggable Transport, and
// status-based success/failure classification with a typed error
// taxonomy. Service packages are pure routing data on top of it.
package client

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// UnknownErrorMessage is the ServiceError message used for status codes
// missing from an invocation's error table.
const UnknownErrorMessage = "Unknown error"

// Invocation carries everything one endpoint call needs. Service
// wrappers fill one of these with literal routing and error-table
// values and hand it to the Invoker; they contain no control flow of
// their own.
type Invocation struct {
	Method       string
	Endpoint     string // overrides Configuration.APIEndpoint when set
	PathTemplate string
	PathParams   map[string]string
	QueryParams  map[string]string
	Headers      []Header

	// Body is serialized to JSON unless BodyPreEncoded is set, in which
	// case it must be a string sent on the wire verbatim (form bodies).
	Body           any
	BodyPreEncoded bool

	// ErrorTable maps non-2xx status codes to human-readable messages.
	ErrorTable map[int]string
}

// Invoker owns the request/response lifecycle shared by every service
// client. It never retries, never recovers an error on the caller's
// behalf, and imposes no timeout — cancellation belongs to the
// Transport and the caller's context.
type Invoker struct {
	cfg *Configuration
}

// NewInvoker builds an invoker over a shared configuration. The
// configuration is held by reference; changes to its Authorization
// value are visible to subsequent calls.
func NewInvoker(cfg *Configuration) *Invoker {
	return &Invoker{cfg: cfg}
}

// Config returns the shared configuration this invoker was built from.
func (inv *Invoker) Config() *Configuration { return inv.cfg }

// Invoke executes one endpoint call. On a 2xx response the body, when
// present, is unmarshaled into out; out may be nil for calls whose
// response is discarded, and an empty body leaves out untouched.
//
// Every failure surfaces as one of the typed errors in this package:
// *TransportError when dispatch itself failed, *ParseError when the
// response body is not valid JSON (whatever the status code),
// *ServiceError for a non-2xx status, *ValidationError for a bad local
// argument.
func (inv *Invoker) Invoke(ctx context.Context, call Invocation, out any) error {
	endpoint := call.Endpoint
	if endpoint == "" {
		endpoint = inv.cfg.APIEndpoint
	}

	req := Request{
		URL:     BuildURL(endpoint, call.PathTemplate, call.QueryParams, call.PathParams),
		Method:  call.Method,
		Headers: call.Headers,
	}

	if call.Body != nil {
		if call.BodyPreEncoded {
			s, ok := call.Body.(string)
			if !ok {
				return &ValidationError{Field: "Body", Reason: "pre-encoded body must be a string"}
			}
			req.Body = s
		} else {
			encoded, err := json.Marshal(call.Body)
			if err != nil {
				return &ValidationError{Field: "Body", Reason: err.Error()}
			}
			req.Body = string(encoded)
		}
	}

	resp, err := inv.cfg.Transport.Dispatch(ctx, req)
	if err != nil {
		return &TransportError{Err: err}
	}

	// Parse before classifying: a garbled body is a local parse failure
	// no matter what the status line said.
	var parsed any
	if resp.Body != "" {
		if err := json.Unmarshal([]byte(resp.Body), &parsed); err != nil {
			return &ParseError{Raw: resp.Body, Err: err}
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && resp.Body != "" {
			if err := json.Unmarshal([]byte(resp.Body), out); err != nil {
				return &ParseError{Raw: resp.Body, Err: err}
			}
		}
		return nil
	}

	message, ok := call.ErrorTable[resp.StatusCode]
	if !ok {
		message = UnknownErrorMessage
	}

	log.Debug().
		Str("method", call.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode).
		Msg("service call failed")

	return &ServiceError{StatusCode: resp.StatusCode, Message: message, Body: parsed}
}
