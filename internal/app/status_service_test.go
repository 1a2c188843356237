package app

import (
	"context"
	"testing"

	"github.com/example/cropdb/internal/ports/secondary"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestStatusService() (*StatusServiceImpl, *mockStatusRepository, *mockRunRepository) {
	statusRepo := newMockStatusRepository()
	runRepo := newMockRunRepository()
	service := NewStatusService(statusRepo, runRepo)
	return service, statusRepo, runRepo
}

func seedRun(runRepo *mockRunRepository, runID, tool string) {
	runRepo.records = append(runRepo.records, &secondary.ImportRunRecord{
		RunID: runID, Tool: tool, StartedAt: "2025-06-01T10:00:00Z", FinishedAt: "2025-06-01T10:00:03Z",
	})
}

// ============================================================================
// GetStatus Tests
// ============================================================================

func TestGetStatus_Success(t *testing.T) {
	service, statusRepo, runRepo := newTestStatusService()
	statusRepo.counts = []secondary.TableCount{
		{Table: "crops", Rows: 12},
		{Table: "focus_crops", Rows: 20},
	}
	statusRepo.unmappedReg396 = 380
	statusRepo.unmappedPrimo = 175
	seedRun(runRepo, "run-1", "primo")
	ctx := context.Background()

	status, err := service.GetStatus(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(status.TableCounts) != 2 || status.TableCounts[0].Table != "crops" || status.TableCounts[0].Rows != 12 {
		t.Errorf("unexpected table counts: %+v", status.TableCounts)
	}
	if status.UnmappedReg396 != 380 || status.UnmappedPrimo != 175 {
		t.Errorf("unexpected unmapped counts: %+v", status)
	}
	if len(status.RecentRuns) != 1 || status.RecentRuns[0].RunID != "run-1" {
		t.Errorf("unexpected recent runs: %+v", status.RecentRuns)
	}
}

func TestGetStatus_LimitsRecentRuns(t *testing.T) {
	service, _, runRepo := newTestStatusService()
	for i := 0; i < 8; i++ {
		seedRun(runRepo, string(rune('a'+i)), "swash-links")
	}
	ctx := context.Background()

	status, err := service.GetStatus(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(status.RecentRuns) != recentRunsInStatus {
		t.Errorf("expected %d recent runs, got %d", recentRunsInStatus, len(status.RecentRuns))
	}
	if status.RecentRuns[0].RunID != "h" {
		t.Errorf("expected newest run first, got %q", status.RecentRuns[0].RunID)
	}
}

// ============================================================================
// ListRuns Tests
// ============================================================================

func TestListRuns_NewestFirst(t *testing.T) {
	runRepo := newMockRunRepository()
	service := NewRunLogService(runRepo)
	seedRun(runRepo, "run-1", "primo")
	seedRun(runRepo, "run-2", "swash-crops")
	ctx := context.Background()

	runs, err := service.ListRuns(ctx, 10)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-2" || runs[1].RunID != "run-1" {
		t.Errorf("expected newest first, got %v then %v", runs[0].RunID, runs[1].RunID)
	}
	if runs[0].Tool != "swash-crops" {
		t.Errorf("unexpected tool: %q", runs[0].Tool)
	}
}
