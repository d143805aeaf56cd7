// Package simulator is an in-process stand-in for the remote skills
// API, used by the SDK's tests and the skillsim command. It speaks just
// enough of the surface to exercise every service client end to end:
// the LWA token endpoint, reminder CRUD, profile and device-settings
// reads, and the proactive events sink.
package simulator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/erauner12/skillbridge/services/proactiveevents"
	"github.com/erauner12/skillbridge/services/reminders"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// Config holds the credentials the simulator accepts.
type Config struct {
	// ClientID and ClientSecret are the LWA credentials the token
	// endpoint accepts for the client_credentials grant.
	ClientID     string
	ClientSecret string

	// JWTSecret signs the HS256 access tokens the token endpoint
	// issues and the proactive-event routes validate.
	JWTSecret string

	// Authorization, when set, is the apiAccessToken required as a
	// bearer token on the profile, settings, and reminder routes.
	// Empty means those routes accept any caller.
	Authorization string
}

// Server is one simulator instance with its own reminder store.
type Server struct {
	cfg   Config
	store *reminderStore
}

// New builds a simulator.
func New(cfg Config) *Server {
	return &Server{cfg: cfg, store: newReminderStore()}
}

// Routes returns the simulator's HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/auth/O2/token", s.issueToken)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAPIToken)

		r.Route("/v1/alerts/reminders", func(r chi.Router) {
			r.Get("/", s.listReminders)
			r.Post("/", s.createReminder)
			r.Get("/{alertToken}", s.getReminder)
			r.Put("/{alertToken}", s.updateReminder)
			r.Delete("/{alertToken}", s.deleteReminder)
		})

		r.Get("/v2/accounts/~current/settings/{setting}", s.profileSetting)
		r.Get("/v2/devices/{deviceID}/settings/{setting}", s.deviceSetting)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireScopedToken)

		r.Post("/v1/proactiveEvents", s.acceptEvent)
		r.Post("/v1/proactiveEvents/stages/development", s.acceptEvent)
	})

	return r
}

// issueToken handles POST /auth/O2/token: the client_credentials grant.
func (s *Server) issueToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}
	if r.PostForm.Get("client_id") != s.cfg.ClientID || r.PostForm.Get("client_secret") != s.cfg.ClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}

	scope := r.PostForm.Get("scope")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scope": scope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.Error().Err(err).Msg("failed to sign access token")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
		return
	}

	log.Info().Str("scope", scope).Msg("issued access token")

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": signed,
		"expires_in":   3600,
		"scope":        scope,
		"token_type":   "bearer",
	})
}

// requireAPIToken enforces the configured apiAccessToken, when one is
// configured.
func (s *Server) requireAPIToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Authorization != "" {
			if r.Header.Get("Authorization") != "Bearer "+s.cfg.Authorization {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid api access token"})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requireScopedToken validates the HS256 bearer token issued by
// issueToken and checks it carries the proactive events scope.
func (s *Server) requireScopedToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing bearer token"})
			return
		}

		parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil {
			log.Warn().Err(err).Msg("rejected bearer token")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid bearer token"})
			return
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok || claims["scope"] != proactiveevents.EventScope {
			writeJSON(w, http.StatusForbidden, map[string]string{"message": "token lacks the required scope"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Reminder handlers

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var req reminders.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	rem := s.store.create(req)

	log.Info().Str("alertToken", rem.AlertToken).Msg("reminder created")

	writeJSON(w, http.StatusOK, reminders.ReminderResponse{
		AlertToken:  rem.AlertToken,
		CreatedTime: rem.CreatedTime,
		UpdatedTime: rem.UpdatedTime,
		Status:      rem.Status,
		Version:     rem.Version,
		Href:        "/v1/alerts/reminders/" + rem.AlertToken,
	})
}

func (s *Server) getReminder(w http.ResponseWriter, r *http.Request) {
	alertToken := chi.URLParam(r, "alertToken")

	rem, ok := s.store.get(alertToken)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no reminder for alert token"})
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	alerts := s.store.list()
	writeJSON(w, http.StatusOK, reminders.ListResponse{
		TotalCount: strconv.Itoa(len(alerts)),
		Alerts:     alerts,
	})
}

func (s *Server) updateReminder(w http.ResponseWriter, r *http.Request) {
	alertToken := chi.URLParam(r, "alertToken")

	var req reminders.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}

	rem, ok := s.store.update(alertToken, req)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no reminder for alert token"})
		return
	}

	writeJSON(w, http.StatusOK, reminders.ReminderResponse{
		AlertToken:  rem.AlertToken,
		CreatedTime: rem.CreatedTime,
		UpdatedTime: rem.UpdatedTime,
		Status:      rem.Status,
		Version:     rem.Version,
		Href:        "/v1/alerts/reminders/" + rem.AlertToken,
	})
}

func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	alertToken := chi.URLParam(r, "alertToken")

	if !s.store.delete(alertToken) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no reminder for alert token"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Profile and settings handlers

func (s *Server) profileSetting(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "setting") {
	case "Profile.email":
		writeJSON(w, http.StatusOK, "jordan@example.com")
	case "Profile.givenName":
		writeJSON(w, http.StatusOK, "Jordan")
	case "Profile.mobileNumber":
		writeJSON(w, http.StatusOK, map[string]string{
			"countryCode": "+1",
			"phoneNumber": "999-999-9999",
		})
	default:
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "access to the profile attribute is not permitted"})
	}
}

func (s *Server) deviceSetting(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "setting") {
	case "System.timeZone":
		writeJSON(w, http.StatusOK, "America/Los_Angeles")
	case "System.distanceUnits":
		writeJSON(w, http.StatusOK, "IMPERIAL")
	case "System.temperatureUnit":
		writeJSON(w, http.StatusOK, "FAHRENHEIT")
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "unknown device setting"})
	}
}

// acceptEvent validates the event envelope and acknowledges it. Events
// are not stored; the simulator only exercises the publish path.
func (s *Server) acceptEvent(w http.ResponseWriter, r *http.Request) {
	var event proactiveevents.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
		return
	}
	if event.ReferenceID == "" || event.Event.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "referenceId and event.name are required"})
		return
	}

	log.Info().
		Str("referenceId", event.ReferenceID).
		Str("event", event.Event.Name).
		Msg("proactive event accepted")

	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
