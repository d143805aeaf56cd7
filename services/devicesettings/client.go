// Package devicesettings reads settings of the device a skill request
// originated from (time zone, measurement units).
package devicesettings

import (
	"context"

	"github.com/erauner12/skillbridge/client"
)

var settingErrors = map[int]string{
	401: "The authentication token is invalid or doesn't have access to the resource",
	403: "The device does not allow access to this setting",
	429: "The skill has been throttled due to an excessive number of requests",
	500: "An unexpected error occurred",
}

// Client fetches per-device settings.
type Client struct {
	inv *client.Invoker
	cfg *client.Configuration
}

// New builds a device settings client over a shared configuration.
func New(cfg *client.Configuration) *Client {
	return &Client{inv: client.NewInvoker(cfg), cfg: cfg}
}

// TimeZone returns the device's time zone, e.g. "America/Los_Angeles".
func (c *Client) TimeZone(ctx context.Context, deviceID string) (string, error) {
	return c.setting(ctx, deviceID, "System.timeZone")
}

// DistanceUnits returns "METRIC" or "IMPERIAL".
func (c *Client) DistanceUnits(ctx context.Context, deviceID string) (string, error) {
	return c.setting(ctx, deviceID, "System.distanceUnits")
}

// TemperatureUnit returns "CELSIUS" or "FAHRENHEIT".
func (c *Client) TemperatureUnit(ctx context.Context, deviceID string) (string, error) {
	return c.setting(ctx, deviceID, "System.temperatureUnit")
}

func (c *Client) setting(ctx context.Context, deviceID, setting string) (string, error) {
	if deviceID == "" {
		return "", &client.ValidationError{Field: "deviceID", Reason: "deviceID is required"}
	}

	var value string
	err := c.inv.Invoke(ctx, client.Invocation{
		Method:       "GET",
		PathTemplate: "/v2/devices/{deviceId}/settings/{setting}",
		PathParams:   map[string]string{"deviceId": deviceID, "setting": setting},
		Headers: []client.Header{
			{Key: "Content-type", Value: "application/json"},
			{Key: "Authorization", Value: "Bearer " + c.cfg.Authorization},
		},
		ErrorTable: settingErrors,
	}, &value)
	return value, err
}
