package strava

import "time"

// Activity is the subset of a provider activity used for qualification
type Activity struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Athlete        AthleteRef      `json:"athlete"`
	StartDate      time.Time       `json:"start_date"`
	StartDateLocal string          `json:"start_date_local"`
	Timezone       string          `json:"timezone"`
	ElapsedTime    int             `json:"elapsed_time"`
	DeviceName     *string         `json:"device_name,omitempty"`
	SegmentEfforts []SegmentEffort `json:"segment_efforts"`
}

// AthleteRef identifies the activity owner
type AthleteRef struct {
	ID int64 `json:"id"`
}

// SegmentEffort is one timed pass over a segment within an activity
type SegmentEffort struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ElapsedTime int        `json:"elapsed_time"`
	StartDate   time.Time  `json:"start_date"`
	Segment     SegmentRef `json:"segment"`
	PRRank      *int       `json:"pr_rank"`
}

// SegmentRef identifies the segment of an effort
type SegmentRef struct {
	ID int64 `json:"id"`
}

// Subscription is a provider push subscription
type Subscription struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id,omitempty"`
	CallbackURL   string    `json:"callback_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type apiError struct {
	Message string `json:"message"`
	Errors  []struct {
		Resource string `json:"resource"`
		Field    string `json:"field"`
		Code     string `json:"code"`
	} `json:"errors"`
}
