// Package skillbridge is a Go SDK for a voice-assistant skills REST
// API: customer profile, device settings, reminders, and proactive
// events. All service clients share one invocation engine (package
// client) and one Configuration.
//
// Example usage:
//
//	cfg := &client.Configuration{
//	    APIEndpoint:   "https://api.eu.amazonalexa.com",
//	    Authorization: apiAccessToken, // from the incoming skill request
//	}
//	sdk := skillbridge.New(cfg)
//
//	tz, err := sdk.DeviceSettings().TimeZone(ctx, deviceID)
//	if err != nil {
//	    var svcErr *client.ServiceError
//	    if errors.As(err, &svcErr) && svcErr.StatusCode == 403 {
//	        // ask the customer for the settings permission
//	    }
//	}
package skillbridge

import (
	"github.com/erauner12/skillbridge/auth"
	"github.com/erauner12/skillbridge/client"
	"github.com/erauner12/skillbridge/services/devicesettings"
	"github.com/erauner12/skillbridge/services/proactiveevents"
	"github.com/erauner12/skillbridge/services/reminders"
	"github.com/erauner12/skillbridge/services/ups"
)

// Factory hands out service clients sharing one Configuration.
type Factory struct {
	cfg *client.Configuration
}

// New builds a factory. When cfg.Transport is nil the default net/http
// transport is installed.
func New(cfg *client.Configuration) *Factory {
	if cfg.Transport == nil {
		cfg.Transport = client.NewHTTPTransport()
	}
	return &Factory{cfg: cfg}
}

// Ups returns the customer profile client.
func (f *Factory) Ups() *ups.Client {
	return ups.New(f.cfg)
}

// DeviceSettings returns the device settings client.
func (f *Factory) DeviceSettings() *devicesettings.Client {
	return devicesettings.New(f.cfg)
}

// Reminders returns the reminders client.
func (f *Factory) Reminders() *reminders.Client {
	return reminders.New(f.cfg)
}

// ProactiveEvents returns the proactive events client. The token
// provider is usually an *auth.Client built from the skill's LWA
// credentials.
func (f *Factory) ProactiveEvents(tokens auth.TokenProvider) *proactiveevents.Client {
	return proactiveevents.New(f.cfg, tokens)
}
