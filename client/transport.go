package client

import "context"

// Header is a single ordered header entry on a request or response.
// Headers are kept as a slice rather than a map so repeated keys and
// insertion order survive the round trip.
type Header struct {
	Key   string
	Value string
}

// Request describes one HTTP request handed to a Transport. It is built
// fresh per invocation and never modified after dispatch.
type Request struct {
	URL     string
	Method  string
	Headers []Header
	Body    string
}

// Response is what a Transport produces for a dispatched Request. Once
// returned it is read-only to the invoker.
type Response struct {
	Headers    []Header
	Body       string
	StatusCode int
}

// Transport abstracts request dispatch so the invoker never touches a
// concrete HTTP stack. Implementations own connectivity concerns
// (timeouts, TLS, proxies); classification of the response stays with
// the Invoker. A Transport error means the request never produced a
// response at all.
type Transport interface {
	Dispatch(ctx context.Context, req Request) (*Response, error)
}

// Configuration is shared by reference across every service client
// built from it. Authorization holds the bearer value sent on
// authenticated calls; the embedding application may swap it between
// requests (for example per incoming skill request).
type Configuration struct {
	Transport     Transport
	Authorization string
	APIEndpoint   string
}
