package store

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RawJSON holds a jsonb column verbatim
type RawJSON []byte

// Value implements the driver.Valuer interface for RawJSON
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	if !json.Valid(j) {
		return nil, errors.New("invalid JSON for jsonb column")
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface for RawJSON
func (j *RawJSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		// The driver may reuse its buffer
		*j = append(RawJSON(nil), v...)
	case string:
		*j = RawJSON(v)
	default:
		return errors.New("incompatible type for RawJSON")
	}
	return nil
}

// MarshalJSON emits the stored document unchanged
func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON stores a copy of the document
func (j *RawJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// Compact returns the document with insignificant whitespace removed
func (j RawJSON) Compact() (RawJSON, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, j); err != nil {
		return nil, err
	}
	return RawJSON(buf.Bytes()), nil
}

// WebhookEventStatus is the processing state of a logged notification
type WebhookEventStatus string

const (
	WebhookEventStatusPending WebhookEventStatus = "pending"
	WebhookEventStatusSuccess WebhookEventStatus = "success"
	WebhookEventStatusFailed  WebhookEventStatus = "failed"
)

// WebhookEvent is one received or replayed provider notification
type WebhookEvent struct {
	ID           int64              `db:"id" json:"id"`
	Payload      RawJSON            `db:"payload" json:"payload"`
	Status       WebhookEventStatus `db:"status" json:"status"`
	ErrorMessage *string            `db:"error_message" json:"error_message,omitempty"`
	RetryCount   int                `db:"retry_count" json:"retry_count"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
	ProcessedAt  *time.Time         `db:"processed_at" json:"processed_at,omitempty"`
}

// Season groups competition weeks
type Season struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	StartAt   time.Time `db:"start_at" json:"start_at"`
	EndAt     time.Time `db:"end_at" json:"end_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Week is a scheduled segment challenge with an absolute UTC window
type Week struct {
	ID           int64     `db:"id" json:"id"`
	SeasonID     int64     `db:"season_id" json:"season_id"`
	SeasonName   string    `db:"season_name" json:"season_name"`
	Name         string    `db:"week_name" json:"week_name"`
	SegmentID    int64     `db:"segment_id" json:"segment_id"`
	RequiredLaps int       `db:"required_laps" json:"required_laps"`
	StartAt      time.Time `db:"start_at" json:"start_at"`
	EndAt        time.Time `db:"end_at" json:"end_at"`
	Multiplier   float64   `db:"multiplier" json:"multiplier"`

	// Civil inputs the window was computed from, nil for weeks scheduled
	// before they were recorded
	CivilDate  *time.Time `db:"civil_date" json:"civil_date,omitempty"`
	TimeZone   *string    `db:"time_zone" json:"time_zone,omitempty"`
	LocalStart *string    `db:"local_start" json:"local_start,omitempty"`
	LocalEnd   *string    `db:"local_end" json:"local_end,omitempty"`
}

// UpdateWeekWindowParams holds the civil inputs of a week and the absolute
// window computed from them
type UpdateWeekWindowParams struct {
	WeekID     int64
	CivilDate  time.Time
	TimeZone   string
	LocalStart string
	LocalEnd   string
	StartAt    time.Time
	EndAt      time.Time
}

// Participant is an enrolled rider keyed by provider athlete id
type Participant struct {
	StravaAthleteID int64     `db:"strava_athlete_id" json:"strava_athlete_id"`
	Name            string    `db:"name" json:"name"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ParticipantToken holds the current OAuth credential pair
type ParticipantToken struct {
	StravaAthleteID int64     `db:"strava_athlete_id"`
	AccessToken     string    `db:"access_token"`
	RefreshToken    string    `db:"refresh_token"`
	ExpiresAt       time.Time `db:"expires_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Activity is the stored best qualifying ride of one athlete for one week
type Activity struct {
	ID               int64     `db:"id" json:"id"`
	WeekID           int64     `db:"week_id" json:"week_id"`
	StravaAthleteID  int64     `db:"strava_athlete_id" json:"strava_athlete_id"`
	StravaActivityID int64     `db:"strava_activity_id" json:"strava_activity_id"`
	StartAt          time.Time `db:"start_at" json:"start_at"`
	DeviceName       *string   `db:"device_name" json:"device_name,omitempty"`
	TotalTimeSeconds int       `db:"total_time_seconds" json:"total_time_seconds"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// SegmentEffort is one timed lap of a stored activity
type SegmentEffort struct {
	ID             int64     `db:"id" json:"id"`
	ActivityID     int64     `db:"activity_id" json:"activity_id"`
	StravaEffortID int64     `db:"strava_effort_id" json:"strava_effort_id"`
	EffortIndex    int       `db:"effort_index" json:"effort_index"`
	ElapsedSeconds int       `db:"elapsed_seconds" json:"elapsed_seconds"`
	StartAt        time.Time `db:"start_at" json:"start_at"`
	PRAchieved     bool      `db:"pr_achieved" json:"pr_achieved"`
}

// Result is the scored outcome of an athlete for a week
type Result struct {
	ID               int64     `db:"id" json:"id"`
	WeekID           int64     `db:"week_id" json:"week_id"`
	StravaAthleteID  int64     `db:"strava_athlete_id" json:"strava_athlete_id"`
	ActivityID       int64     `db:"activity_id" json:"activity_id"`
	TotalTimeSeconds int       `db:"total_time_seconds" json:"total_time_seconds"`
	PRBonusPoints    int       `db:"pr_bonus_points" json:"pr_bonus_points"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// SubscriptionStatus is the singleton record of the provider push subscription
type SubscriptionStatus struct {
	SubscriptionID  *int64     `db:"subscription_id" json:"subscription_id,omitempty"`
	Enabled         bool       `db:"enabled" json:"enabled"`
	StatusMessage   *string    `db:"status_message" json:"status_message,omitempty"`
	LastRefreshedAt *time.Time `db:"last_refreshed_at" json:"last_refreshed_at,omitempty"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
