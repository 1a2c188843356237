package app

import (
	"context"
	"fmt"

	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

// recentRunsInStatus is how many runs the status summary shows.
const recentRunsInStatus = 5

// StatusServiceImpl implements the StatusService interface.
type StatusServiceImpl struct {
	statusRepo secondary.StatusRepository
	runRepo    secondary.RunRepository
}

// NewStatusService creates a new StatusService with injected dependencies.
func NewStatusService(statusRepo secondary.StatusRepository, runRepo secondary.RunRepository) *StatusServiceImpl {
	return &StatusServiceImpl{
		statusRepo: statusRepo,
		runRepo:    runRepo,
	}
}

// GetStatus returns row counts across the domain tables, how many
// commodities still sit on the placeholder crop, and the most recent runs.
func (s *StatusServiceImpl) GetStatus(ctx context.Context) (*primary.DatabaseStatus, error) {
	counts, err := s.statusRepo.TableCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}

	reg396, primo, err := s.statusRepo.CountUnmappedCommodities(ctx, PlaceholderCropName)
	if err != nil {
		return nil, fmt.Errorf("failed to count unmapped commodities: %w", err)
	}

	runs, err := s.runRepo.ListRecent(ctx, recentRunsInStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent runs: %w", err)
	}

	status := &primary.DatabaseStatus{
		UnmappedReg396: reg396,
		UnmappedPrimo:  primo,
	}
	for _, c := range counts {
		status.TableCounts = append(status.TableCounts, primary.TableCount{Table: c.Table, Rows: c.Rows})
	}
	for _, r := range runs {
		status.RecentRuns = append(status.RecentRuns, *runRecordToImportRun(r))
	}
	return status, nil
}

// Ensure StatusServiceImpl implements the interface
var _ primary.StatusService = (*StatusServiceImpl)(nil)

// RunLogServiceImpl implements the RunLogService interface.
type RunLogServiceImpl struct {
	runRepo secondary.RunRepository
}

// NewRunLogService creates a new RunLogService with injected dependencies.
func NewRunLogService(runRepo secondary.RunRepository) *RunLogServiceImpl {
	return &RunLogServiceImpl{runRepo: runRepo}
}

// ListRuns returns the most recent import runs, newest first.
func (s *RunLogServiceImpl) ListRuns(ctx context.Context, limit int) ([]*primary.ImportRun, error) {
	records, err := s.runRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import runs: %w", err)
	}

	runs := make([]*primary.ImportRun, len(records))
	for i, r := range records {
		runs[i] = runRecordToImportRun(r)
	}
	return runs, nil
}

func runRecordToImportRun(r *secondary.ImportRunRecord) *primary.ImportRun {
	return &primary.ImportRun{
		RunID:      r.RunID,
		Tool:       r.Tool,
		Source:     r.Source,
		Upserted:   r.Upserted,
		Updated:    r.Updated,
		Skipped:    r.Skipped,
		Issues:     r.Issues,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// Ensure RunLogServiceImpl implements the interface
var _ primary.RunLogService = (*RunLogServiceImpl)(nil)
