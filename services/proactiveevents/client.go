// Package proactiveevents publishes skill events to customers ahead of
// any interaction. Unlike the other service clients it authenticates
// with a Login-with-Amazon client-credentials token obtained per call
// from a TokenProvider, not with the per-request apiAccessToken.
package proactiveevents

import (
	"context"

	"github.com/erauner12/skillbridge/auth"
	"github.com/erauner12/skillbridge/client"
)

// SkillStage selects which stage of the skill receives the event.
type SkillStage string

const (
	StageDevelopment SkillStage = "DEVELOPMENT"
	StageLive        SkillStage = "LIVE"
)

// EventScope is the LWA scope required to publish proactive events.
const EventScope = "alexa::proactive_events"

var eventErrors = map[int]string{
	400: "The event is malformed or references an unknown schema",
	401: "The bearer token is invalid or expired",
	403: "The skill is not allowed to send proactive events",
	409: "An event with this referenceId was already received",
	429: "The skill has been throttled due to an excessive number of requests",
	500: "An unexpected error occurred",
	503: "The proactive events service is currently unavailable",
}

// EventPayload names the event schema and carries its attributes.
type EventPayload struct {
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload"`
}

// RelevantAudience addresses the event to one customer ("Unicast") or
// to everyone who enabled the skill ("Multicast").
type RelevantAudience struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Event is the proactive event envelope.
type Event struct {
	TimeStamp           string           `json:"timestamp"`
	ReferenceID         string           `json:"referenceId"`
	ExpiryTime          string           `json:"expiryTime"`
	Event               EventPayload     `json:"event"`
	LocalizedAttributes []map[string]any `json:"localizedAttributes"`
	RelevantAudience    RelevantAudience `json:"relevantAudience"`
}

// Client publishes proactive events.
type Client struct {
	inv    *client.Invoker
	tokens auth.TokenProvider
}

// New builds a proactive events client. The token provider supplies the
// scoped bearer tokens this service family requires.
func New(cfg *client.Configuration, tokens auth.TokenProvider) *Client {
	return &Client{inv: client.NewInvoker(cfg), tokens: tokens}
}

// Create publishes one event to the given skill stage.
func (c *Client) Create(ctx context.Context, event *Event, stage SkillStage) error {
	if event == nil {
		return &client.ValidationError{Field: "event", Reason: "event is required"}
	}

	token, err := c.tokens.AccessTokenForScope(ctx, EventScope)
	if err != nil {
		return err
	}

	path := "/v1/proactiveEvents"
	if stage == StageDevelopment {
		path += "/stages/development"
	}

	return c.inv.Invoke(ctx, client.Invocation{
		Method:       "POST",
		PathTemplate: path,
		Headers: []client.Header{
			{Key: "Content-type", Value: "application/json"},
			{Key: "Authorization", Value: "Bearer " + token},
		},
		Body:       event,
		ErrorTable: eventErrors,
	}, nil)
}
