package simulator

import (
	"strconv"
	"sync"
	"time"

	"github.com/erauner12/skillbridge/services/reminders"
	"github.com/google/uuid"
)

// reminderStore holds the simulator's reminders in memory, keyed by
// alert token.
type reminderStore struct {
	mu     sync.RWMutex
	alerts map[string]reminders.Reminder
}

func newReminderStore() *reminderStore {
	return &reminderStore{alerts: make(map[string]reminders.Reminder)}
}

func (s *reminderStore) create(req reminders.ReminderRequest) reminders.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	rem := reminders.Reminder{
		AlertToken:       uuid.New().String(),
		CreatedTime:      now,
		UpdatedTime:      now,
		Status:           reminders.StatusOn,
		Trigger:          req.Trigger,
		AlertInfo:        req.AlertInfo,
		PushNotification: req.PushNotification,
		Version:          "1",
	}
	s.alerts[rem.AlertToken] = rem
	return rem
}

func (s *reminderStore) get(alertToken string) (reminders.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rem, ok := s.alerts[alertToken]
	return rem, ok
}

func (s *reminderStore) list() []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reminders.Reminder, 0, len(s.alerts))
	for _, rem := range s.alerts {
		out = append(out, rem)
	}
	return out
}

func (s *reminderStore) update(alertToken string, req reminders.ReminderRequest) (reminders.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rem, ok := s.alerts[alertToken]
	if !ok {
		return reminders.Reminder{}, false
	}

	version, _ := strconv.Atoi(rem.Version)
	rem.Trigger = req.Trigger
	rem.AlertInfo = req.AlertInfo
	rem.PushNotification = req.PushNotification
	rem.UpdatedTime = time.Now().UTC().Format(time.RFC3339)
	rem.Version = strconv.Itoa(version + 1)

	s.alerts[alertToken] = rem
	return rem, true
}

func (s *reminderStore) delete(alertToken string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.alerts[alertToken]
	if ok {
		delete(s.alerts, alertToken)
	}
	return ok
}
