package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const weekColumns = `w.id, w.season_id, s.name AS season_name, w.week_name, w.segment_id, w.required_laps, w.start_at, w.end_at, w.multiplier,
	w.civil_date, w.time_zone, w.local_start, w.local_end`

const sqlGetWeeksContainingTime = `
SELECT ` + weekColumns + `
FROM weeks w
JOIN seasons s ON s.id = w.season_id
WHERE w.start_at <= $1 AND w.end_at >= $1
ORDER BY w.start_at, w.id
`

// GetWeeksContainingTime returns every week, across all seasons, whose
// window contains ts (inclusive on both ends)
func (s *Store) GetWeeksContainingTime(ctx context.Context, ts time.Time) ([]Week, error) {
	weeks := []Week{}
	err := s.db.SelectContext(ctx, &weeks, sqlGetWeeksContainingTime, ts.UTC())
	if err != nil {
		s.logger.Error(ctx, "failed to get weeks containing time", err)
		return nil, fmt.Errorf("failed to get weeks containing time: %w", err)
	}
	return weeks, nil
}

const sqlGetWeekByID = `
SELECT ` + weekColumns + `
FROM weeks w
JOIN seasons s ON s.id = w.season_id
WHERE w.id = $1
`

// GetWeekByID retrieves a week with its season name
func (s *Store) GetWeekByID(ctx context.Context, id int64) (Week, error) {
	var week Week
	err := s.db.GetContext(ctx, &week, sqlGetWeekByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Week{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get week", err)
		return Week{}, fmt.Errorf("failed to get week: %w", err)
	}
	return week, nil
}

const sqlUpdateWeekWindow = `
WITH updated AS (
    UPDATE weeks
    SET civil_date = $2, time_zone = $3, local_start = $4, local_end = $5,
        start_at = $6, end_at = $7
    WHERE id = $1
    RETURNING *
)
SELECT ` + weekColumns + `
FROM updated w
JOIN seasons s ON s.id = w.season_id
`

// UpdateWeekWindow stores new civil inputs for a week together with the
// absolute window computed from them
func (s *Store) UpdateWeekWindow(ctx context.Context, params UpdateWeekWindowParams) (Week, error) {
	var week Week
	err := s.db.GetContext(ctx, &week, sqlUpdateWeekWindow,
		params.WeekID,
		params.CivilDate.Format("2006-01-02"),
		params.TimeZone,
		params.LocalStart,
		params.LocalEnd,
		params.StartAt.UTC(),
		params.EndAt.UTC(),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Week{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update week window", err)
		return Week{}, fmt.Errorf("failed to update week window: %w", err)
	}
	return week, nil
}
