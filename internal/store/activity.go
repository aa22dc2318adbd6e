package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// EffortParams is one lap to store with a qualified activity
type EffortParams struct {
	StravaEffortID int64
	ElapsedSeconds int
	StartAt        time.Time
	PRAchieved     bool
}

// ReplaceQualifiedActivityParams is the full outcome for one athlete and week
type ReplaceQualifiedActivityParams struct {
	WeekID           int64
	StravaAthleteID  int64
	StravaActivityID int64
	StartAt          time.Time
	DeviceName       *string
	TotalTimeSeconds int
	PRBonusPoints    int
	Efforts          []EffortParams
}

const sqlDeleteResultForWeekAthlete = `DELETE FROM results WHERE week_id = $1 AND strava_athlete_id = $2`

const sqlDeleteEffortsForWeekAthlete = `
DELETE FROM segment_efforts
WHERE activity_id IN (SELECT id FROM activities WHERE week_id = $1 AND strava_athlete_id = $2)
`

const sqlDeleteActivityForWeekAthlete = `DELETE FROM activities WHERE week_id = $1 AND strava_athlete_id = $2`

const sqlInsertActivity = `
INSERT INTO activities (week_id, strava_athlete_id, strava_activity_id, start_at, device_name, total_time_seconds)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, week_id, strava_athlete_id, strava_activity_id, start_at, device_name, total_time_seconds, created_at
`

const sqlInsertSegmentEffort = `
INSERT INTO segment_efforts (activity_id, strava_effort_id, effort_index, elapsed_seconds, start_at, pr_achieved)
VALUES ($1, $2, $3, $4, $5, $6)
`

const sqlInsertResult = `
INSERT INTO results (week_id, strava_athlete_id, activity_id, total_time_seconds, pr_bonus_points)
VALUES ($1, $2, $3, $4, $5)
`

// ReplaceQualifiedActivity overwrites the stored activity, laps and result of
// an athlete for a week in a single transaction. The latest qualifying
// attempt wins.
func (s *Store) ReplaceQualifiedActivity(ctx context.Context, params ReplaceQualifiedActivityParams) (Activity, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Activity{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{sqlDeleteResultForWeekAthlete, sqlDeleteEffortsForWeekAthlete, sqlDeleteActivityForWeekAthlete} {
		if _, err := tx.ExecContext(ctx, stmt, params.WeekID, params.StravaAthleteID); err != nil {
			s.logger.Error(ctx, "failed to clear previous activity", err)
			return Activity{}, fmt.Errorf("failed to clear previous activity: %w", err)
		}
	}

	var activity Activity
	err = tx.GetContext(ctx, &activity, sqlInsertActivity,
		params.WeekID,
		params.StravaAthleteID,
		params.StravaActivityID,
		params.StartAt.UTC(),
		params.DeviceName,
		params.TotalTimeSeconds)
	if err != nil {
		s.logger.Error(ctx, "failed to insert activity", err)
		return Activity{}, fmt.Errorf("failed to insert activity: %w", err)
	}

	if err := insertEfforts(ctx, tx, activity.ID, params.Efforts); err != nil {
		s.logger.Error(ctx, "failed to insert segment efforts", err)
		return Activity{}, err
	}

	_, err = tx.ExecContext(ctx, sqlInsertResult,
		params.WeekID,
		params.StravaAthleteID,
		activity.ID,
		params.TotalTimeSeconds,
		params.PRBonusPoints)
	if err != nil {
		s.logger.Error(ctx, "failed to insert result", err)
		return Activity{}, fmt.Errorf("failed to insert result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Activity{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return activity, nil
}

func insertEfforts(ctx context.Context, tx *sqlx.Tx, activityID int64, efforts []EffortParams) error {
	stmt, err := tx.PrepareContext(ctx, sqlInsertSegmentEffort)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, effort := range efforts {
		_, err := stmt.ExecContext(ctx, activityID, effort.StravaEffortID, i+1, effort.ElapsedSeconds, effort.StartAt.UTC(), effort.PRAchieved)
		if err != nil {
			return fmt.Errorf("failed to insert segment effort: %w", err)
		}
	}
	return nil
}

// DeleteActivityResult reports the outcome of removing a provider activity
type DeleteActivityResult struct {
	Deleted bool  `json:"deleted"`
	Changes int64 `json:"changes"`
}

const sqlDeleteResultsByStravaActivity = `
DELETE FROM results
WHERE activity_id IN (SELECT id FROM activities WHERE strava_activity_id = $1)
`

const sqlDeleteEffortsByStravaActivity = `
DELETE FROM segment_efforts
WHERE activity_id IN (SELECT id FROM activities WHERE strava_activity_id = $1)
`

const sqlDeleteActivitiesByStravaActivity = `DELETE FROM activities WHERE strava_activity_id = $1`

// DeleteActivityByStravaID removes every stored copy of a provider activity
// in dependency order: results, then laps, then the activity rows. No match
// is a normal outcome.
func (s *Store) DeleteActivityByStravaID(ctx context.Context, stravaActivityID int64) (DeleteActivityResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return DeleteActivityResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		changes    int64
		activities int64
	)
	for _, stmt := range []string{sqlDeleteResultsByStravaActivity, sqlDeleteEffortsByStravaActivity, sqlDeleteActivitiesByStravaActivity} {
		res, err := tx.ExecContext(ctx, stmt, stravaActivityID)
		if err != nil {
			s.logger.Error(ctx, "failed to delete activity", err)
			return DeleteActivityResult{}, fmt.Errorf("failed to delete activity: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return DeleteActivityResult{}, fmt.Errorf("failed to read affected rows: %w", err)
		}
		changes += rows
		activities = rows
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return DeleteActivityResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return DeleteActivityResult{Deleted: activities > 0, Changes: changes}, nil
}

const sqlGetActivitiesByStravaID = `
SELECT id, week_id, strava_athlete_id, strava_activity_id, start_at, device_name, total_time_seconds, created_at
FROM activities
WHERE strava_activity_id = $1
ORDER BY week_id
`

// GetActivitiesByStravaID returns the stored copies of a provider activity,
// one per week it qualified for
func (s *Store) GetActivitiesByStravaID(ctx context.Context, stravaActivityID int64) ([]Activity, error) {
	activities := []Activity{}
	err := s.db.SelectContext(ctx, &activities, sqlGetActivitiesByStravaID, stravaActivityID)
	if err != nil {
		s.logger.Error(ctx, "failed to get activities", err)
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	return activities, nil
}

const sqlGetSegmentEffortsByActivityID = `
SELECT id, activity_id, strava_effort_id, effort_index, elapsed_seconds, start_at, pr_achieved
FROM segment_efforts
WHERE activity_id = $1
ORDER BY effort_index
`

// GetSegmentEffortsByActivityID returns the laps of a stored activity
func (s *Store) GetSegmentEffortsByActivityID(ctx context.Context, activityID int64) ([]SegmentEffort, error) {
	efforts := []SegmentEffort{}
	err := s.db.SelectContext(ctx, &efforts, sqlGetSegmentEffortsByActivityID, activityID)
	if err != nil {
		s.logger.Error(ctx, "failed to get segment efforts", err)
		return nil, fmt.Errorf("failed to get segment efforts: %w", err)
	}
	return efforts, nil
}

const sqlGetResultsByAthlete = `
SELECT id, week_id, strava_athlete_id, activity_id, total_time_seconds, pr_bonus_points, created_at
FROM results
WHERE strava_athlete_id = $1
ORDER BY week_id
`

// GetResultsByAthlete returns every scored week of an athlete
func (s *Store) GetResultsByAthlete(ctx context.Context, athleteID int64) ([]Result, error) {
	results := []Result{}
	err := s.db.SelectContext(ctx, &results, sqlGetResultsByAthlete, athleteID)
	if err != nil {
		s.logger.Error(ctx, "failed to get results", err)
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return results, nil
}
