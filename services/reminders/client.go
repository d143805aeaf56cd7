// Package reminders manages customer reminders on behalf of a skill.
package reminders

import (
	"context"

	"github.com/erauner12/skillbridge/client"
)

var reminderErrors = map[int]string{
	400: "Bad request",
	401: "The authentication token is invalid or doesn't have access to the resource",
	403: "The skill is not granted reminders permission",
	404: "The reminder does not exist",
	429: "The skill has been throttled due to an excessive number of requests",
	500: "An unexpected error occurred",
	503: "The reminders service is currently unavailable",
}

// Client performs reminder CRUD for the customer bound to the
// configuration's apiAccessToken.
type Client struct {
	inv *client.Invoker
	cfg *client.Configuration
}

// New builds a reminders client over a shared configuration.
func New(cfg *client.Configuration) *Client {
	return &Client{inv: client.NewInvoker(cfg), cfg: cfg}
}

// Create schedules a new reminder.
func (c *Client) Create(ctx context.Context, req *ReminderRequest) (*ReminderResponse, error) {
	if req == nil {
		return nil, &client.ValidationError{Field: "req", Reason: "reminder request is required"}
	}

	var resp ReminderResponse
	err := c.inv.Invoke(ctx, client.Invocation{
		Method:       "POST",
		PathTemplate: "/v1/alerts/reminders",
		Headers:      c.headers(),
		Body:         req,
		ErrorTable:   reminderErrors,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get fetches one reminder by alert token.
func (c *Client) Get(ctx context.Context, alertToken string) (*Reminder, error) {
	if alertToken == "" {
		return nil, &client.ValidationError{Field: "alertToken", Reason: "alertToken is required"}
	}

	var rem Reminder
	err := c.inv.Invoke(ctx, client.Invocation{
		Method:       "GET",
		PathTemplate: "/v1/alerts/reminders/{alertToken}",
		PathParams:   map[string]string{"alertToken": alertToken},
		Headers:      c.headers(),
		ErrorTable:   reminderErrors,
	}, &rem)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

// GetAll lists every reminder the skill has set for this customer.
func (c *Client) GetAll(ctx context.Context) (*ListResponse, error) {
	var list ListResponse
	err := c.inv.Invoke(ctx, client.Invocation{
		Method:       "GET",
		PathTemplate: "/v1/alerts/reminders",
		Headers:      c.headers(),
		ErrorTable:   reminderErrors,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Update replaces an existing reminder.
func (c *Client) Update(ctx context.Context, alertToken string, req *ReminderRequest) (*ReminderResponse, error) {
	if alertToken == "" {
		return nil, &client.ValidationError{Field: "alertToken", Reason: "alertToken is required"}
	}
	if req == nil {
		return nil, &client.ValidationError{Field: "req", Reason: "reminder request is required"}
	}

	var resp ReminderResponse
	err := c.inv.Invoke(ctx, client.Invocation{
		Method:       "PUT",
		PathTemplate: "/v1/alerts/reminders/{alertToken}",
		PathParams:   map[string]string{"alertToken": alertToken},
		Headers:      c.headers(),
		Body:         req,
		ErrorTable:   reminderErrors,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a reminder.
func (c *Client) Delete(ctx context.Context, alertToken string) error {
	if alertToken == "" {
		return &client.ValidationError{Field: "alertToken", Reason: "alertToken is required"}
	}

	return c.inv.Invoke(ctx, client.Invocation{
		Method:       "DELETE",
		PathTemplate: "/v1/alerts/reminders/{alertToken}",
		PathParams:   map[string]string{"alertToken": alertToken},
		Headers:      c.headers(),
		ErrorTable:   reminderErrors,
	}, nil)
}

func (c *Client) headers() []client.Header {
	return []client.Header{
		{Key: "Content-type", Value: "application/json"},
		{Key: "Authorization", Value: "Bearer " + c.cfg.Authorization},
	}
}
