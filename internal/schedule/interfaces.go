package schedule

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=schedule

import (
	"context"

	"league-server/internal/store"
)

// WeekStore reads and reschedules competition weeks
type WeekStore interface {
	GetWeekByID(ctx context.Context, id int64) (store.Week, error)
	UpdateWeekWindow(ctx context.Context, params store.UpdateWeekWindowParams) (store.Week, error)
}
