// Package timewindow converts a competition's civil date and local wall clock
// bounds into an absolute UTC interval and tests timestamps against it.
//
// Offsets come from a fixed standard-time table. Daylight saving time is not
// applied, so a summer window in a DST zone is one hour late. This is an
// accepted limitation shared with the record-management application that
// stores week windows.
package timewindow

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	civilDateLayout = "2006-01-02"
	clockLayout     = "15:04:05"
)

// Reasons reported by IsTimestampWithinWindow
const (
	ReasonBeforeStart  = "before week start"
	ReasonAfterEnd     = "after week end"
	ReasonInvalidInput = "invalid input"
)

var ErrInvalidEventTime = errors.New("invalid event time")

// standardOffsets maps zone names to their standard (non-DST) UTC offset in
// minutes
var standardOffsets = map[string]int{
	"UTC":                            0,
	"Etc/UTC":                        0,
	"GMT":                            0,
	"Europe/London":                  0,
	"Europe/Dublin":                  0,
	"Europe/Lisbon":                  0,
	"Europe/Paris":                   60,
	"Europe/Berlin":                  60,
	"Europe/Madrid":                  60,
	"Europe/Rome":                    60,
	"Europe/Amsterdam":               60,
	"Europe/Brussels":                60,
	"Europe/Zurich":                  60,
	"Europe/Stockholm":               60,
	"Europe/Oslo":                    60,
	"Europe/Copenhagen":              60,
	"Europe/Vienna":                  60,
	"Europe/Warsaw":                  60,
	"Europe/Prague":                  60,
	"Europe/Athens":                  120,
	"Europe/Helsinki":                120,
	"Europe/Kiev":                    120,
	"Africa/Cairo":                   120,
	"Africa/Johannesburg":            120,
	"Europe/Istanbul":                180,
	"Europe/Moscow":                  180,
	"Asia/Dubai":                     240,
	"Asia/Karachi":                   300,
	"Asia/Kolkata":                   330,
	"Asia/Kathmandu":                 345,
	"Asia/Dhaka":                     360,
	"Asia/Bangkok":                   420,
	"Asia/Jakarta":                   420,
	"Asia/Singapore":                 480,
	"Asia/Shanghai":                  480,
	"Asia/Hong_Kong":                 480,
	"Asia/Taipei":                    480,
	"Australia/Perth":                480,
	"Asia/Tokyo":                     540,
	"Asia/Seoul":                     540,
	"Australia/Adelaide":             570,
	"Australia/Darwin":               570,
	"Australia/Brisbane":             600,
	"Australia/Sydney":               600,
	"Australia/Melbourne":            600,
	"Australia/Hobart":               600,
	"Pacific/Auckland":               720,
	"Atlantic/Azores":                -60,
	"America/Sao_Paulo":              -180,
	"America/Argentina/Buenos_Aires": -180,
	"America/St_Johns":               -210,
	"America/Halifax":                -240,
	"America/Puerto_Rico":            -240,
	"America/New_York":               -300,
	"America/Detroit":                -300,
	"America/Toronto":                -300,
	"America/Bogota":                 -300,
	"America/Lima":                   -300,
	"America/Chicago":                -360,
	"America/Winnipeg":               -360,
	"America/Mexico_City":            -360,
	"America/Denver":                 -420,
	"America/Edmonton":               -420,
	"America/Phoenix":                -420,
	"America/Boise":                  -420,
	"America/Los_Angeles":            -480,
	"America/Vancouver":              -480,
	"America/Tijuana":                -480,
	"America/Anchorage":              -540,
	"Pacific/Honolulu":               -600,
}

// WindowResult is the absolute form of a competition window
type WindowResult struct {
	Valid    bool      `json:"valid"`
	StartUTC time.Time `json:"start_utc"`
	EndUTC   time.Time `json:"end_utc"`
	Reason   string    `json:"reason,omitempty"`
}

// StandardOffset returns the fixed standard-time offset of a zone
func StandardOffset(zoneName string) (time.Duration, bool) {
	minutes, ok := standardOffsets[zoneName]
	if !ok {
		return 0, false
	}
	return time.Duration(minutes) * time.Minute, true
}

// ComputeAbsoluteWindow converts civilDate (YYYY-MM-DD) and local HH:MM:SS
// bounds in zoneName into UTC. When localEnd is not after localStart the
// window rolls past midnight and ends on the following civil day. Invalid
// input yields Valid=false.
func ComputeAbsoluteWindow(civilDate, zoneName, localStart, localEnd string) WindowResult {
	if civilDate == "" || zoneName == "" || localStart == "" || localEnd == "" {
		return WindowResult{Reason: "missing argument"}
	}

	day, err := time.Parse(civilDateLayout, civilDate)
	if err != nil {
		return WindowResult{Reason: "civil date must be YYYY-MM-DD"}
	}
	start, ok := parseClock(localStart)
	if !ok {
		return WindowResult{Reason: "start time must be HH:MM:SS"}
	}
	end, ok := parseClock(localEnd)
	if !ok {
		return WindowResult{Reason: "end time must be HH:MM:SS"}
	}
	offset, ok := StandardOffset(zoneName)
	if !ok {
		return WindowResult{Reason: "unknown time zone " + zoneName}
	}

	endDay := day
	if end <= start {
		endDay = day.AddDate(0, 0, 1)
	}

	return WindowResult{
		Valid:    true,
		StartUTC: day.Add(start - offset).UTC(),
		EndUTC:   endDay.Add(end - offset).UTC(),
	}
}

// parseClock returns the time since midnight of an HH:MM:SS string. The
// layout alone accepts a one-digit hour, so the width is checked first.
func parseClock(value string) (time.Duration, bool) {
	if len(value) != len(clockLayout) {
		return 0, false
	}
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, true
}

// WithinResult carries the decision and the unix seconds compared, for audit
type WithinResult struct {
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	EventUnix int64  `json:"event_unix"`
	StartUnix int64  `json:"start_unix"`
	EndUnix   int64  `json:"end_unix"`
}

// IsTimestampWithinWindow reports whether eventUTC lies in [start, end].
// Both bounds are inclusive.
func IsTimestampWithinWindow(eventUTC, start, end time.Time) WithinResult {
	if eventUTC.IsZero() || start.IsZero() || end.IsZero() || start.After(end) {
		return WithinResult{Reason: ReasonInvalidInput}
	}

	res := WithinResult{
		EventUnix: eventUTC.Unix(),
		StartUnix: start.Unix(),
		EndUnix:   end.Unix(),
	}
	switch {
	case eventUTC.Before(start):
		res.Reason = ReasonBeforeStart
	case eventUTC.After(end):
		res.Reason = ReasonAfterEnd
	default:
		res.Valid = true
	}
	return res
}

// ParseEventTime accepts an RFC3339 timestamp or unix seconds
func ParseEventTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidEventTime
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidEventTime
	}
	return t.UTC(), nil
}
