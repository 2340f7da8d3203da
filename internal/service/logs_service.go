package service

import (
	"context"
	"errors"

	"github.com/corpkit/company-portal/internal/domain"
	"github.com/corpkit/company-portal/internal/repository"
)

// LogsService serves the read-only log sets.
type LogsService struct {
	logs repository.LogRepository
}

// NewLogsService creates the service.
func NewLogsService(logs repository.LogRepository) *LogsService {
	return &LogsService{logs: logs}
}

// ForRole returns the log set of role. A role without logs yields an empty set, never nil.
func (s *LogsService) ForRole(ctx context.Context, role domain.Role) (*domain.RoleLogs, error) {
	set, err := s.logs.ListByRole(ctx, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.RoleLogs{Role: role, Entries: []domain.LogEntry{}}, nil
		}
		return nil, err
	}
	if set.Entries == nil {
		set.Entries = []domain.LogEntry{}
	}
	return set, nil
}
