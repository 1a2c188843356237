package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

// PlaceholderCropName is the crop that collects commodities not yet matched
// to a real crop row. Created on first use by the PRIMo importer.
const PlaceholderCropName = "Unknown (unmapped)"

const placeholderCropNotes = "Placeholder for PRIMo commodities not yet matched to a crop_id. " +
	"Update crop_id after reviewing the commodity name."

// recordImportRun writes one import_runs row for an applied report and stamps
// the generated run ID back onto it.
func recordImportRun(ctx context.Context, repo secondary.RunRepository, report *primary.ImportReport, startedAt time.Time) error {
	report.RunID = uuid.New().String()
	rec := &secondary.ImportRunRecord{
		RunID:      report.RunID,
		Tool:       report.Tool,
		Source:     report.Source,
		Upserted:   report.Upserted,
		Updated:    report.Updated,
		Skipped:    report.Skipped,
		Issues:     report.Issues,
		StartedAt:  startedAt.UTC().Format(time.RFC3339),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := repo.Record(ctx, rec); err != nil {
		return fmt.Errorf("failed to record import run: %w", err)
	}
	return nil
}
