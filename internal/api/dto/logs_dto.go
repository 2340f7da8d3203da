package dto

import "github.com/corpkit/company-portal/internal/domain"

// LogsResponse is returned by GET /logs.
type LogsResponse struct {
	Role domain.Role       `json:"role"`
	Logs []domain.LogEntry `json:"logs"`
	User string            `json:"user"`
}

// RoleLogsResponse is returned by the role-pinned log endpoints.
type RoleLogsResponse struct {
	Role    domain.Role       `json:"role"`
	Logs    []domain.LogEntry `json:"logs"`
	Message string            `json:"message"`
}
