package simulator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestServer() (*Server, *httptest.Server) {
	sim := New(Config{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		JWTSecret:    "jwt-secret",
	})
	return sim, httptest.NewServer(sim.Routes())
}

func requestToken(t *testing.T, serverURL string, form url.Values) *http.Response {
	t.Helper()
	resp, err := http.Post(serverURL+"/auth/O2/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("token request failed: %v", err)
	}
	return resp
}

func TestIssueToken(t *testing.T) {
	_, server := newTestServer()
	defer server.Close()

	resp := requestToken(t, server.URL, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"client-1"},
		"client_secret": {"secret-1"},
		"scope":         {"alexa::proactive_events"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		Scope       string `json:"scope"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.AccessToken == "" {
		t.Error("empty access token")
	}
	if body.ExpiresIn != 3600 {
		t.Errorf("unexpected expires_in: %d", body.ExpiresIn)
	}
	if body.Scope != "alexa::proactive_events" {
		t.Errorf("unexpected scope: %q", body.Scope)
	}
}

func TestIssueToken_WrongGrantType(t *testing.T) {
	_, server := newTestServer()
	defer server.Close()

	resp := requestToken(t, server.URL, url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {"client-1"},
		"client_secret": {"secret-1"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func TestIssueToken_WrongCredentials(t *testing.T) {
	_, server := newTestServer()
	defer server.Close()

	resp := requestToken(t, server.URL, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"client-1"},
		"client_secret": {"nope"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func TestProactiveEvents_RejectsGarbageToken(t *testing.T) {
	_, server := newTestServer()
	defer server.Close()

	req, _ := http.NewRequest("POST", server.URL+"/v1/proactiveEvents", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func TestProactiveEvents_RejectsMissingToken(t *testing.T) {
	_, server := newTestServer()
	defer server.Close()

	resp, err := http.Post(server.URL+"/v1/proactiveEvents", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func TestProactiveEvents_RejectsTokenWithWrongScope(t *testing.T) {
	_, server := newTestServer()
	defer server.Close()

	resp := requestToken(t, server.URL, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"client-1"},
		"client_secret": {"secret-1"},
		"scope":         {"some::other_scope"},
	})
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}

	req, _ := http.NewRequest("POST", server.URL+"/v1/proactiveEvents", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+body.AccessToken)

	eventResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer eventResp.Body.Close()

	if eventResp.StatusCode != http.StatusForbidden {
		t.Errorf("unexpected status: %d", eventResp.StatusCode)
	}
}
