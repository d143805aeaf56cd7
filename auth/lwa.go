// Package auth implements the Login-with-Amazon client-credentials
// flow with a per-scope access-token cache.
//
// Tokens are reused until 60 seconds before expiry, so a caller always
// receives a token good for at least one further round trip. The cache
// map is mutex-guarded, but the exchange itself runs outside the lock:
// concurrent misses for the same scope each issue their own exchange
// and the last response stored wins. Callers that need single-flight
// semantics must serialize at a higher level.
package auth

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/erauner12/skillbridge/client"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTokenEndpoint is the LWA token exchange endpoint.
	DefaultTokenEndpoint = "https://api.amazon.com/auth/O2/token"

	// ExpiryMargin is the minimum remaining lifetime of a token handed
	// out from the cache. Anything closer to expiry triggers a fresh
	// exchange.
	ExpiryMargin = 60 * time.Second
)

// TokenProvider yields scoped bearer tokens. Satisfied by *Client;
// service clients depend on the interface so tests can substitute a
// canned provider.
type TokenProvider interface {
	AccessTokenForScope(ctx context.Context, scope string) (string, error)
}

// Config holds the immutable LWA client credentials.
type Config struct {
	ClientID     string
	ClientSecret string

	// TokenEndpoint overrides DefaultTokenEndpoint. Used by tests and
	// local simulators.
	TokenEndpoint string
}

// TokenResponse is the LWA token exchange response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	TokenType   string `json:"token_type"`
}

// accessToken is one cached entry, keyed by scope in the cache map.
type accessToken struct {
	token  string
	expiry time.Time
}

// Client exchanges client credentials for scoped bearer tokens and
// caches them per scope for the lifetime of the process.
type Client struct {
	cfg      Config
	endpoint string
	inv      *client.Invoker

	mu     sync.RWMutex
	tokens map[string]accessToken // key: scope
}

// New builds an LWA client dispatching through the given transport.
func New(cfg Config, transport client.Transport) *Client {
	endpoint := cfg.TokenEndpoint
	if endpoint == "" {
		endpoint = DefaultTokenEndpoint
	}
	return &Client{
		cfg:      cfg,
		endpoint: endpoint,
		inv:      client.NewInvoker(&client.Configuration{Transport: transport}),
		tokens:   make(map[string]accessToken),
	}
}

// AccessTokenForScope returns a bearer token for the scope, reusing the
// cached token while it has more than ExpiryMargin of lifetime left.
// An empty scope fails fast without a network call. Exchange failures
// propagate unmodified; nothing is retried here.
func (c *Client) AccessTokenForScope(ctx context.Context, scope string) (string, error) {
	if scope == "" {
		return "", &client.ValidationError{Field: "scope", Reason: "scope is required"}
	}

	c.mu.RLock()
	cached, ok := c.tokens[scope]
	c.mu.RUnlock()

	if ok && cached.expiry.After(time.Now().Add(ExpiryMargin)) {
		return cached.token, nil
	}

	return c.exchange(ctx, scope)
}

// exchange performs the client_credentials grant for one scope and
// stores the result, overwriting any prior entry.
func (c *Client) exchange(ctx context.Context, scope string) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"scope":         {scope},
	}

	var tok TokenResponse
	err := c.inv.Invoke(ctx, client.Invocation{
		Method:   "POST",
		Endpoint: c.endpoint,
		Headers: []client.Header{
			{Key: "Content-type", Value: "application/x-www-form-urlencoded"},
		},
		Body:           form.Encode(),
		BodyPreEncoded: true,
	}, &tok)
	if err != nil {
		return "", err
	}

	expiry := time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)

	c.mu.Lock()
	c.tokens[scope] = accessToken{token: tok.AccessToken, expiry: expiry}
	c.mu.Unlock()

	log.Debug().
		Str("scope", scope).
		Time("expiry", expiry).
		Msg("stored fresh LWA token")

	return tok.AccessToken, nil
}
