package devicesettings_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/erauner12/skillbridge/client"
	"github.com/erauner12/skillbridge/internal/simulator"
	"github.com/erauner12/skillbridge/services/devicesettings"
)

func newTestSetup(t *testing.T) (*devicesettings.Client, *httptest.Server) {
	t.Helper()

	sim := simulator.New(simulator.Config{JWTSecret: "test-secret"})
	server := httptest.NewServer(sim.Routes())

	cfg := &client.Configuration{
		Transport:   client.NewHTTPTransport(),
		APIEndpoint: server.URL,
	}
	return devicesettings.New(cfg), server
}

func TestTimeZone(t *testing.T) {
	c, server := newTestSetup(t)
	defer server.Close()

	tz, err := c.TimeZone(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("time zone failed: %v", err)
	}
	if tz != "America/Los_Angeles" {
		t.Errorf("unexpected time zone: %q", tz)
	}
}

func TestDistanceUnits(t *testing.T) {
	c, server := newTestSetup(t)
	defer server.Close()

	units, err := c.DistanceUnits(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("distance units failed: %v", err)
	}
	if units != "IMPERIAL" {
		t.Errorf("unexpected units: %q", units)
	}
}

func TestTemperatureUnit(t *testing.T) {
	c, server := newTestSetup(t)
	defer server.Close()

	unit, err := c.TemperatureUnit(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("temperature unit failed: %v", err)
	}
	if unit != "FAHRENHEIT" {
		t.Errorf("unexpected unit: %q", unit)
	}
}

func TestEmptyDeviceIDFailsFast(t *testing.T) {
	c, server := newTestSetup(t)
	defer server.Close()

	_, err := c.TimeZone(context.Background(), "")

	var valErr *client.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
