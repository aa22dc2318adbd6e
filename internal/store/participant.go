package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sqlGetParticipantByAthleteID = `
SELECT strava_athlete_id, name, created_at
FROM participants
WHERE strava_athlete_id = $1
`

// GetParticipantByAthleteID retrieves an enrolled participant
func (s *Store) GetParticipantByAthleteID(ctx context.Context, athleteID int64) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipantByAthleteID, athleteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get participant", err)
		return Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

const sqlGetParticipantToken = `
SELECT strava_athlete_id, access_token, refresh_token, expires_at, updated_at
FROM participant_tokens
WHERE strava_athlete_id = $1
`

// GetParticipantToken retrieves the stored credential pair for an athlete
func (s *Store) GetParticipantToken(ctx context.Context, athleteID int64) (ParticipantToken, error) {
	var token ParticipantToken
	err := s.db.GetContext(ctx, &token, sqlGetParticipantToken, athleteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ParticipantToken{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get participant token", err)
		return ParticipantToken{}, fmt.Errorf("failed to get participant token: %w", err)
	}
	return token, nil
}

// UpdateParticipantTokenParams carries a refreshed credential pair
type UpdateParticipantTokenParams struct {
	StravaAthleteID int64
	AccessToken     string
	RefreshToken    string
	ExpiresAt       time.Time
}

const sqlUpdateParticipantToken = `
UPDATE participant_tokens
SET access_token = $2,
    refresh_token = $3,
    expires_at = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE strava_athlete_id = $1
`

// UpdateParticipantToken persists a refreshed credential pair
func (s *Store) UpdateParticipantToken(ctx context.Context, params UpdateParticipantTokenParams) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateParticipantToken,
		params.StravaAthleteID,
		params.AccessToken,
		params.RefreshToken,
		params.ExpiresAt.UTC())
	if err != nil {
		s.logger.Error(ctx, "failed to update participant token", err)
		return fmt.Errorf("failed to update participant token: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlDeleteParticipantToken = `DELETE FROM participant_tokens WHERE strava_athlete_id = $1`

// DeleteParticipantToken removes the credential row only. Activities,
// efforts and results of the athlete are retained.
func (s *Store) DeleteParticipantToken(ctx context.Context, athleteID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteParticipantToken, athleteID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete participant token", err)
		return 0, fmt.Errorf("failed to delete participant token: %w", err)
	}
	return res.RowsAffected()
}
