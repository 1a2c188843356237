package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

const (
	toolSwashCrops = "swash-crops"
	toolSwashLinks = "swash-links"
)

// SwashServiceImpl implements the SwashImportService interface.
type SwashServiceImpl struct {
	focusCropRepo secondary.FocusCropRepository
	scenarioRepo  secondary.ScenarioRepository
	runRepo       secondary.RunRepository
}

// NewSwashService creates a new SwashImportService with injected dependencies.
func NewSwashService(focusCropRepo secondary.FocusCropRepository, scenarioRepo secondary.ScenarioRepository, runRepo secondary.RunRepository) *SwashServiceImpl {
	return &SwashServiceImpl{
		focusCropRepo: focusCropRepo,
		scenarioRepo:  scenarioRepo,
		runRepo:       runRepo,
	}
}

// ImportCropParameters updates focus_crops agronomic columns from SWASH crop
// rows. Crops not in focus_crops are skipped and reported; rows carrying no
// parameters at all are dropped silently.
func (s *SwashServiceImpl) ImportCropParameters(ctx context.Context, req primary.SwashCropImportRequest) (*primary.ImportReport, error) {
	startedAt := time.Now()
	report := &primary.ImportReport{
		Tool:    toolSwashCrops,
		Source:  req.Source,
		Applied: req.Apply,
	}
	noteParseIssues(report, req.ParseIssues)

	for _, row := range req.Rows {
		if row.CropName == "" {
			continue
		}

		cropID, found, err := s.focusCropRepo.FindByName(ctx, row.CropName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up crop %s: %w", row.CropName, err)
		}
		if !found {
			report.Skipped++
			report.Note(fmt.Sprintf("'%s' not found in focus_crops (add it or fix the export)", row.CropName))
			continue
		}

		params := secondary.FocusCropParams{
			BBCHSowingMin:  row.BBCHEmergenceMin,
			BBCHSowingMax:  row.BBCHEmergenceMax,
			BBCHHarvestMin: row.BBCHHarvestMin,
			BBCHHarvestMax: row.BBCHHarvestMax,
			CanopyType:     row.CanopyType,
			RootDepthM:     row.RootDepthM,
			LAIMax:         row.LAIMax,
		}
		if params.IsZero() {
			continue
		}

		report.Updated++
		if !req.Apply {
			continue
		}
		if err := s.focusCropRepo.UpdateParams(ctx, cropID, params); err != nil {
			return nil, fmt.Errorf("failed to update parameters for %s: %w", row.CropName, err)
		}
	}

	if req.Apply {
		if err := recordImportRun(ctx, s.runRepo, report, startedAt); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// ImportLinks inserts crop x scenario combinations. Both names must resolve
// or the pair is skipped and reported; pairs already present count as skipped
// without a detail line.
func (s *SwashServiceImpl) ImportLinks(ctx context.Context, req primary.SwashLinkImportRequest) (*primary.ImportReport, error) {
	startedAt := time.Now()
	report := &primary.ImportReport{
		Tool:    toolSwashLinks,
		Source:  req.Source,
		Applied: req.Apply,
	}
	noteParseIssues(report, req.ParseIssues)

	// Exports repeat the same names across many rows, so lookups are cached.
	cropIDs := make(map[string]int64)
	cropMisses := make(map[string]bool)
	scenarioIDs := make(map[string]int64)
	scenarioMisses := make(map[string]bool)

	for _, link := range req.Links {
		if link.Crop == "" || link.ScenarioCode == "" {
			continue
		}

		cropID, ok := cropIDs[link.Crop]
		if !ok && !cropMisses[link.Crop] {
			id, found, err := s.focusCropRepo.FindByName(ctx, link.Crop)
			if err != nil {
				return nil, fmt.Errorf("failed to look up crop %s: %w", link.Crop, err)
			}
			if found {
				cropIDs[link.Crop] = id
				cropID, ok = id, true
			} else {
				cropMisses[link.Crop] = true
			}
		}

		scenarioID, scenarioOK := scenarioIDs[link.ScenarioCode]
		if !scenarioOK && !scenarioMisses[link.ScenarioCode] {
			id, found, err := s.scenarioRepo.FindByCode(ctx, link.ScenarioCode)
			if err != nil {
				return nil, fmt.Errorf("failed to look up scenario %s: %w", link.ScenarioCode, err)
			}
			if found {
				scenarioIDs[link.ScenarioCode] = id
				scenarioID, scenarioOK = id, true
			} else {
				scenarioMisses[link.ScenarioCode] = true
			}
		}

		if !ok || !scenarioOK {
			report.Skipped++
			report.Note(fmt.Sprintf("'%s' / '%s'", link.Crop, link.ScenarioCode))
			continue
		}

		if !req.Apply {
			report.Upserted++
			continue
		}
		inserted, err := s.focusCropRepo.InsertLink(ctx, &secondary.LinkRecord{
			FocusCropID:   cropID,
			ScenarioID:    scenarioID,
			WaterbodyType: link.WaterbodyType,
			IsDefaultRun:  link.IsDefaultRun,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert link %s/%s: %w", link.Crop, link.ScenarioCode, err)
		}
		if inserted {
			report.Upserted++
		} else {
			report.Skipped++
		}
	}

	if req.Apply {
		if err := recordImportRun(ctx, s.runRepo, report, startedAt); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// noteParseIssues folds reader-side decode failures into the report so they
// reach the summary counts and the recorded run.
func noteParseIssues(report *primary.ImportReport, issues []string) {
	report.Issues += len(issues)
	for _, line := range issues {
		report.Note(line)
	}
}

// Ensure SwashServiceImpl implements the interface
var _ primary.SwashImportService = (*SwashServiceImpl)(nil)
