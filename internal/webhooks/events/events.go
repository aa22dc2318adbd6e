package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"league-server/internal/store"
)

// Object types
const (
	ObjectTypeActivity = "activity"
	ObjectTypeAthlete  = "athlete"
)

// Aspect types
const (
	AspectTypeCreate = "create"
	AspectTypeUpdate = "update"
	AspectTypeDelete = "delete"
)

var ErrMalformedNotification = errors.New("malformed notification")

// Notification is a push event sent by the provider
type Notification struct {
	ObjectType     string                 `json:"object_type"`
	AspectType     string                 `json:"aspect_type"`
	ObjectID       int64                  `json:"object_id"`
	OwnerID        int64                  `json:"owner_id"`
	SubscriptionID int64                  `json:"subscription_id"`
	EventTime      int64                  `json:"event_time"`
	Updates        map[string]interface{} `json:"updates,omitempty"`
}

// Kind returns "object_type.aspect_type", used in logs and metrics
func (n Notification) Kind() string {
	return n.ObjectType + "." + n.AspectType
}

// Update returns an entry of the updates object as a string
func (n Notification) Update(key string) (string, bool) {
	v, ok := n.Updates[key]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprint(val), true
	}
}

// IsDeauthorization reports whether the notification revokes the athlete's
// authorization of the application
func (n Notification) IsDeauthorization() bool {
	if n.ObjectType != ObjectTypeAthlete || n.AspectType != AspectTypeUpdate {
		return false
	}
	authorized, ok := n.Update("authorized")
	return ok && authorized == "false"
}

// OccurredAt returns the provider-side event time
func (n Notification) OccurredAt() time.Time {
	if n.EventTime == 0 {
		return time.Time{}
	}
	return time.Unix(n.EventTime, 0).UTC()
}

// ParseNotification accepts any syntactically valid JSON object and returns
// its compacted form. Fields are decoded best effort for logging: a wrongly
// typed field leaves its zero value and the payload is still accepted, so the
// typed decode fails later during processing and the event is marked failed.
func ParseNotification(body []byte) (Notification, store.RawJSON, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return Notification{}, nil, ErrMalformedNotification
	}

	payload, err := store.RawJSON(trimmed).Compact()
	if err != nil {
		return Notification{}, nil, fmt.Errorf("%w: %v", ErrMalformedNotification, err)
	}

	var n Notification
	_ = json.Unmarshal(payload, &n)
	return n, payload, nil
}

// Job is one notification handed to the processing queue. EventID is the
// event log row assigned at ingestion; zero when logging failed.
type Job struct {
	EventID    int64
	Payload    store.RawJSON
	EnqueuedAt time.Time
}

// NewJob builds a queue job for a logged payload
func NewJob(eventID int64, payload store.RawJSON) Job {
	return Job{EventID: eventID, Payload: payload, EnqueuedAt: time.Now()}
}

// Decode parses the job payload
func (j Job) Decode() (Notification, error) {
	var n Notification
	if err := json.Unmarshal(j.Payload, &n); err != nil {
		return Notification{}, fmt.Errorf("%w: %v", ErrMalformedNotification, err)
	}
	return n, nil
}
