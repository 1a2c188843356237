package primary

import "context"

// StatusService defines the primary port for database health summaries.
type StatusService interface {
	// GetStatus returns row counts, unmapped-commodity counts and recent runs.
	GetStatus(ctx context.Context) (*DatabaseStatus, error)
}

// DatabaseStatus is the health summary across all domain tables.
type DatabaseStatus struct {
	TableCounts    []TableCount
	UnmappedReg396 int // commodities still on the placeholder crop
	UnmappedPrimo  int
	RecentRuns     []ImportRun
}

// TableCount pairs a table name with its row count.
type TableCount struct {
	Table string
	Rows  int
}

// ImportRun represents one audited importer invocation.
type ImportRun struct {
	RunID      string
	Tool       string
	Source     string
	Upserted   int
	Updated    int
	Skipped    int
	Issues     int
	StartedAt  string
	FinishedAt string
}

// RunLogService defines the primary port for listing the import audit trail.
type RunLogService interface {
	// ListRuns returns the most recent import runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*ImportRun, error)
}
