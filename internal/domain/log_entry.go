package domain

// LogEntry is a read-only activity record shown to a role.
type LogEntry struct {
	ID        int    `json:"id" yaml:"id"`
	Type      string `json:"type" yaml:"type"`
	Message   string `json:"message" yaml:"message"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// RoleLogs bundles the log set of a role with the message returned by its dedicated endpoint.
type RoleLogs struct {
	Role    Role
	Message string
	Entries []LogEntry
}
