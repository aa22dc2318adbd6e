package store

import (
	"context"
	"fmt"
)

const sqlGetDatabaseSize = `SELECT pg_database_size(current_database())`

// GetDatabaseSizeBytes returns the physical size of the current database
func (s *Store) GetDatabaseSizeBytes(ctx context.Context) (int64, error) {
	var size int64
	if err := s.db.GetContext(ctx, &size, sqlGetDatabaseSize); err != nil {
		s.logger.Error(ctx, "failed to get database size", err)
		return 0, fmt.Errorf("failed to get database size: %w", err)
	}
	return size, nil
}
