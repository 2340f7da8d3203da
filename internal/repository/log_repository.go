package repository

import (
	"context"

	"github.com/corpkit/company-portal/internal/domain"
)

// LogRepository defines read access to the per-role log sets.
type LogRepository interface {
	ListByRole(ctx context.Context, role domain.Role) (*domain.RoleLogs, error)
}

type logRepository struct {
	logs map[domain.Role]domain.RoleLogs
}

// NewLogRepository returns an in-memory implementation backed by the seed.
func NewLogRepository(seed *Seed) LogRepository {
	logs := make(map[domain.Role]domain.RoleLogs, len(seed.Logs))
	for role, set := range seed.Logs {
		entries := make([]domain.LogEntry, len(set.Entries))
		copy(entries, set.Entries)
		logs[role] = domain.RoleLogs{Role: role, Message: set.Message, Entries: entries}
	}
	return &logRepository{logs: logs}
}

// ListByRole returns a copy of the role's log set, or ErrNotFound when the role has none.
func (r *logRepository) ListByRole(ctx context.Context, role domain.Role) (*domain.RoleLogs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	set, ok := r.logs[role]
	if !ok {
		return nil, ErrNotFound
	}
	entries := make([]domain.LogEntry, len(set.Entries))
	copy(entries, set.Entries)
	set.Entries = entries
	return &set, nil
}
