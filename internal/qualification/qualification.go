// Package qualification decides whether an activity satisfies a week's
// segment and lap requirements and picks the laps that count.
package qualification

import (
	"context"
	"sort"
	"time"

	"league-server/internal/clients/strava"
	"league-server/internal/timewindow"
)

// Params describes one activity evaluated against one week
type Params struct {
	Activity     strava.Activity
	SegmentID    int64
	RequiredLaps int
	AccessToken  string
	WindowStart  time.Time
	WindowEnd    time.Time
}

// Result is the qualifying run of laps
type Result struct {
	Efforts          []strava.SegmentEffort
	TotalTimeSeconds int
	PRCount          int
}

// Qualifier finds the best qualifying run in an activity. A nil result
// means the activity does not qualify.
type Qualifier interface {
	FindBest(ctx context.Context, params Params) (*Result, error)
}

// LapFinder takes the fastest contiguous run of RequiredLaps efforts on the
// segment that started inside the window
type LapFinder struct{}

func NewLapFinder() *LapFinder {
	return &LapFinder{}
}

func (f *LapFinder) FindBest(_ context.Context, params Params) (*Result, error) {
	if params.RequiredLaps <= 0 {
		return nil, nil
	}

	var laps []strava.SegmentEffort
	for _, effort := range params.Activity.SegmentEfforts {
		if effort.Segment.ID != params.SegmentID {
			continue
		}
		if !timewindow.IsTimestampWithinWindow(effort.StartDate, params.WindowStart, params.WindowEnd).Valid {
			continue
		}
		laps = append(laps, effort)
	}
	if len(laps) < params.RequiredLaps {
		return nil, nil
	}

	sort.SliceStable(laps, func(i, j int) bool {
		return laps[i].StartDate.Before(laps[j].StartDate)
	})

	bestStart, bestTotal := 0, -1
	for i := 0; i+params.RequiredLaps <= len(laps); i++ {
		total := 0
		for _, lap := range laps[i : i+params.RequiredLaps] {
			total += lap.ElapsedTime
		}
		if bestTotal < 0 || total < bestTotal {
			bestStart, bestTotal = i, total
		}
	}

	chosen := make([]strava.SegmentEffort, params.RequiredLaps)
	copy(chosen, laps[bestStart:bestStart+params.RequiredLaps])

	res := &Result{Efforts: chosen, TotalTimeSeconds: bestTotal}
	for _, lap := range chosen {
		if IsPR(lap) {
			res.PRCount++
		}
	}
	return res, nil
}

// IsPR reports whether the effort set the athlete's best time on the segment
func IsPR(effort strava.SegmentEffort) bool {
	return effort.PRRank != nil && *effort.PRRank == 1
}
