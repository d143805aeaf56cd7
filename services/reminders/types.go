package reminders

// Trigger types accepted by the reminders API.
const (
	TriggerScheduledAbsolute = "SCHEDULED_ABSOLUTE"
	TriggerScheduledRelative = "SCHEDULED_RELATIVE"
)

// Reminder statuses.
const (
	StatusOn        = "ON"
	StatusCompleted = "COMPLETED"
)

// Trigger describes when a reminder fires. Absolute triggers carry a
// scheduled time and time zone; relative triggers an offset in seconds.
type Trigger struct {
	Type            string      `json:"type"`
	ScheduledTime   string      `json:"scheduledTime,omitempty"`
	OffsetInSeconds int         `json:"offsetInSeconds,omitempty"`
	TimeZoneID      string      `json:"timeZoneId,omitempty"`
	Recurrence      *Recurrence `json:"recurrence,omitempty"`
}

// Recurrence describes a repeating reminder in iCalendar-style terms.
type Recurrence struct {
	Freq     string   `json:"freq,omitempty"`
	ByDay    []string `json:"byDay,omitempty"`
	Interval int      `json:"interval,omitempty"`
}

// SpokenText is one localized rendering of the reminder's content.
type SpokenText struct {
	Locale string `json:"locale"`
	Text   string `json:"text,omitempty"`
	SSML   string `json:"ssml,omitempty"`
}

// SpokenInfo holds the localized content variants.
type SpokenInfo struct {
	Content []SpokenText `json:"content"`
}

// AlertInfo is what the assistant speaks when the reminder fires.
type AlertInfo struct {
	SpokenInfo SpokenInfo `json:"spokenInfo"`
}

// PushNotification controls whether the reminder also pushes to the
// companion app. Status is "ENABLED" or "DISABLED".
type PushNotification struct {
	Status string `json:"status"`
}

// ReminderRequest is the create/update payload.
type ReminderRequest struct {
	RequestTime      string           `json:"requestTime"`
	Trigger          Trigger          `json:"trigger"`
	AlertInfo        AlertInfo        `json:"alertInfo"`
	PushNotification PushNotification `json:"pushNotification"`
}

// Reminder is a stored reminder as returned by Get and GetAll.
type Reminder struct {
	AlertToken       string           `json:"alertToken"`
	CreatedTime      string           `json:"createdTime"`
	UpdatedTime      string           `json:"updatedTime"`
	Status           string           `json:"status"`
	Trigger          Trigger          `json:"trigger"`
	AlertInfo        AlertInfo        `json:"alertInfo"`
	PushNotification PushNotification `json:"pushNotification"`
	Version          string           `json:"version"`
}

// ReminderResponse acknowledges a create or update.
type ReminderResponse struct {
	AlertToken  string `json:"alertToken"`
	CreatedTime string `json:"createdTime"`
	UpdatedTime string `json:"updatedTime"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	Href        string `json:"href"`
}

// ListResponse is the GetAll payload. TotalCount is a string on the
// wire, not a number.
type ListResponse struct {
	TotalCount string     `json:"totalCount"`
	Alerts     []Reminder `json:"alerts"`
}
