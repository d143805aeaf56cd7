// Package ups is the customer profile service client. It reads profile
// attributes the customer has consented to share with the skill, using
// the per-request apiAccessToken carried in the shared configuration.
package ups

import (
	"context"

	"github.com/erauner12/skillbridge/client"
)

var profileErrors = map[int]string{
	401: "The authentication token is invalid or doesn't have access to the resource",
	403: "The skill is not granted access to this profile attribute",
	429: "The skill has been throttled due to an excessive number of requests",
	500: "An unexpected error occurred",
}

// Client fetches customer profile attributes.
type Client struct {
	inv *client.Invoker
	cfg *client.Configuration
}

// New builds a profile client over a shared configuration.
func New(cfg *client.Configuration) *Client {
	return &Client{inv: client.NewInvoker(cfg), cfg: cfg}
}

// PhoneNumber is the customer's mobile number split by country code.
type PhoneNumber struct {
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Email returns the customer's email address.
func (c *Client) Email(ctx context.Context) (string, error) {
	var email string
	err := c.inv.Invoke(ctx, c.settingCall("Profile.email"), &email)
	return email, err
}

// GivenName returns the customer's given name.
func (c *Client) GivenName(ctx context.Context) (string, error) {
	var name string
	err := c.inv.Invoke(ctx, c.settingCall("Profile.givenName"), &name)
	return name, err
}

// MobileNumber returns the customer's mobile number.
func (c *Client) MobileNumber(ctx context.Context) (*PhoneNumber, error) {
	var number PhoneNumber
	if err := c.inv.Invoke(ctx, c.settingCall("Profile.mobileNumber"), &number); err != nil {
		return nil, err
	}
	return &number, nil
}

// settingCall is the routing data for one profile attribute; all
// behavior lives in the invoker.
func (c *Client) settingCall(setting string) client.Invocation {
	return client.Invocation{
		Method:       "GET",
		PathTemplate: "/v2/accounts/~current/settings/{setting}",
		PathParams:   map[string]string{"setting": setting},
		Headers: []client.Header{
			{Key: "Content-type", Value: "application/json"},
			{Key: "Authorization", Value: "Bearer " + c.cfg.Authorization},
		},
		ErrorTable: profileErrors,
	}
}
