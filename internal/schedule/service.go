// Package schedule recomputes week windows from their civil inputs and
// explains whether a timestamp falls inside a stored week.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"league-server/internal/observability"
	"league-server/internal/store"
	"league-server/internal/timewindow"
)

var (
	ErrInvalidWindow = errors.New("invalid week window")
	ErrWeekNotFound  = errors.New("week not found")
)

// WindowInput is the civil description of a week window
type WindowInput struct {
	CivilDate  string `json:"civil_date"`
	TimeZone   string `json:"time_zone"`
	LocalStart string `json:"local_start"`
	LocalEnd   string `json:"local_end"`
}

// Check reports whether a timestamp lies inside a stored week window
type Check struct {
	WeekID   int64                   `json:"week_id"`
	WeekName string                  `json:"week_name"`
	Season   string                  `json:"season"`
	At       time.Time               `json:"at"`
	Result   timewindow.WithinResult `json:"result"`
}

type Service struct {
	store  WeekStore
	logger *observability.Logger
}

func New(store WeekStore, logger *observability.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Preview computes the absolute window for in without storing it
func (s *Service) Preview(in WindowInput) (timewindow.WindowResult, error) {
	window := timewindow.ComputeAbsoluteWindow(in.CivilDate, in.TimeZone, in.LocalStart, in.LocalEnd)
	if !window.Valid {
		return window, fmt.Errorf("%w: %s", ErrInvalidWindow, window.Reason)
	}
	return window, nil
}

// Reschedule recomputes a week's absolute window from new civil inputs and
// stores both
func (s *Service) Reschedule(ctx context.Context, weekID int64, in WindowInput) (store.Week, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "week_id", Value: weekID},
		observability.Field{Key: "time_zone", Value: in.TimeZone},
	)

	window, err := s.Preview(in)
	if err != nil {
		s.logger.InfoWithError(ctx, "rejected week window", err)
		return store.Week{}, err
	}
	civilDate, err := time.Parse("2006-01-02", in.CivilDate)
	if err != nil {
		return store.Week{}, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	week, err := s.store.UpdateWeekWindow(ctx, store.UpdateWeekWindowParams{
		WeekID:     weekID,
		CivilDate:  civilDate,
		TimeZone:   in.TimeZone,
		LocalStart: in.LocalStart,
		LocalEnd:   in.LocalEnd,
		StartAt:    window.StartUTC,
		EndAt:      window.EndUTC,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Week{}, ErrWeekNotFound
		}
		return store.Week{}, fmt.Errorf("failed to reschedule week: %w", err)
	}

	s.logger.Info(ctx, fmt.Sprintf("week rescheduled to %s - %s",
		window.StartUTC.Format(time.RFC3339), window.EndUTC.Format(time.RFC3339)))
	return week, nil
}

// CheckTime parses at (RFC3339 or unix seconds) and tests it against the
// stored window of a week
func (s *Service) CheckTime(ctx context.Context, weekID int64, at string) (Check, error) {
	ts, err := timewindow.ParseEventTime(at)
	if err != nil {
		return Check{}, err
	}

	week, err := s.store.GetWeekByID(ctx, weekID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Check{}, ErrWeekNotFound
		}
		return Check{}, fmt.Errorf("failed to get week: %w", err)
	}

	return Check{
		WeekID:   week.ID,
		WeekName: week.Name,
		Season:   week.SeasonName,
		At:       ts,
		Result:   timewindow.IsTimestampWithinWindow(ts, week.StartAt, week.EndAt),
	}, nil
}
