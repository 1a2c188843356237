package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/cropdb/internal/core/interception"
	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

const toolInterception = "interception"

// InterceptionServiceImpl implements the InterceptionImportService interface.
type InterceptionServiceImpl struct {
	focusCropRepo secondary.FocusCropRepository
	runRepo       secondary.RunRepository
}

// NewInterceptionService creates a new InterceptionImportService with injected dependencies.
func NewInterceptionService(focusCropRepo secondary.FocusCropRepository, runRepo secondary.RunRepository) *InterceptionServiceImpl {
	return &InterceptionServiceImpl{
		focusCropRepo: focusCropRepo,
		runRepo:       runRepo,
	}
}

// ImportInterception upserts the built-in crop interception step function.
// Stages still marked as stubs are counted and skipped; crops missing from
// focus_crops are reported once each.
func (s *InterceptionServiceImpl) ImportInterception(ctx context.Context, req primary.InterceptionImportRequest) (*primary.InterceptionReport, error) {
	startedAt := time.Now()
	report := &primary.InterceptionReport{
		ImportReport: primary.ImportReport{
			Tool:    toolInterception,
			Source:  "built-in EFSA 2020 table",
			Applied: req.Apply,
		},
	}

	for _, cs := range interception.Table() {
		cropID, found, err := s.focusCropRepo.FindByName(ctx, cs.SwashCropName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up crop %s: %w", cs.SwashCropName, err)
		}
		if !found {
			report.Skipped++
			report.CropsNotFound = append(report.CropsNotFound, cs.SwashCropName)
			report.Note(fmt.Sprintf("'%s' not found in focus_crops", cs.SwashCropName))
			continue
		}

		for _, stage := range cs.Stages {
			if stage.Pct == nil {
				report.Stubs++
				continue
			}

			report.Upserted++
			if !req.Apply {
				continue
			}
			err := s.focusCropRepo.UpsertInterception(ctx, &secondary.InterceptionRecord{
				FocusCropID:        cropID,
				BBCHStage:          stage.BBCH,
				InterceptionPct:    *stage.Pct,
				InterceptionSource: stage.Source,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to upsert interception for %s BBCH %d: %w", cs.SwashCropName, stage.BBCH, err)
			}
		}
	}

	if req.Apply {
		if err := recordImportRun(ctx, s.runRepo, &report.ImportReport, startedAt); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// Ensure InterceptionServiceImpl implements the interface
var _ primary.InterceptionImportService = (*InterceptionServiceImpl)(nil)
