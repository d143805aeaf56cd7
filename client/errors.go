package client

import "fmt"

// TransportError wraps a failure raised by the Transport itself
// (connectivity, timeout). The original error stays reachable through
// Unwrap; the message is prefixed so logs show where the call died.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("call to service failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError indicates a response body that is not valid JSON. Distinct
// from a ServiceError: the server answered, the payload is unusable.
// Raw carries the body text for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response body as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ServiceError is a server-reported failure: any response with a status
// outside [200,300). Message comes from the invocation's error table;
// Body holds the parsed response payload, if the server sent one.
type ServiceError struct {
	StatusCode int
	Message    string
	Body       any
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Message)
}

// ValidationError is raised locally, before any network activity, when
// a required argument is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}
