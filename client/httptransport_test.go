package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPTransport_Dispatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Content-type"); got != "application/json" {
			t.Errorf("unexpected content type: %q", got)
		}
		if r.Header.Get("X-Correlation-ID") == "" {
			t.Error("correlation ID header missing")
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"ok":true}` {
			t.Errorf("unexpected body: %q", body)
		}
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"created":true}`))
	}))
	defer server.Close()

	transport := NewHTTPTransport()
	resp, err := transport.Dispatch(context.Background(), Request{
		URL:     server.URL + "/v1/x",
		Method:  "POST",
		Headers: []Header{{Key: "Content-type", Value: "application/json"}},
		Body:    `{"ok":true}`,
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if resp.Body != `{"created":true}` {
		t.Errorf("unexpected body: %q", resp.Body)
	}

	found := false
	for _, h := range resp.Headers {
		if h.Key == "X-Test" && h.Value == "yes" {
			found = true
		}
	}
	if !found {
		t.Errorf("response header not mapped: %#v", resp.Headers)
	}
}

func TestHTTPTransport_ErrorStatusIsNotATransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	transport := NewHTTPTransport()
	resp, err := transport.Dispatch(context.Background(), Request{URL: server.URL, Method: "GET"})
	if err != nil {
		t.Fatalf("a 500 must be returned as a response, not an error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func TestHTTPTransport_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	transport := NewHTTPTransport()
	_, err := transport.Dispatch(context.Background(), Request{URL: server.URL, Method: "GET"})
	if err == nil {
		t.Fatal("expected a connection error")
	}
}
