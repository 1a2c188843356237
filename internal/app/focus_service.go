package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

// focusSourceRef labels every row written by the FOCUS surface-water importer.
const focusSourceRef = "Generic FOCUS SWS v1.4 May 2015"

const (
	toolFocusCharacteristics = "focus-sw-characteristics"
	toolFocusIrrigation      = "focus-sw-irrigation"
)

// FocusServiceImpl implements the FocusImportService interface.
type FocusServiceImpl struct {
	scenarioRepo  secondary.ScenarioRepository
	focusCropRepo secondary.FocusCropRepository
	runRepo       secondary.RunRepository
}

// NewFocusService creates a new FocusImportService with injected dependencies.
func NewFocusService(scenarioRepo secondary.ScenarioRepository, focusCropRepo secondary.FocusCropRepository, runRepo secondary.RunRepository) *FocusServiceImpl {
	return &FocusServiceImpl{
		scenarioRepo:  scenarioRepo,
		focusCropRepo: focusCropRepo,
		runRepo:       runRepo,
	}
}

// ImportCharacteristics upserts per-scenario weather/location blocks. Records
// whose scenario code does not resolve within the surface-water type are
// skipped and reported.
func (s *FocusServiceImpl) ImportCharacteristics(ctx context.Context, req primary.CharacteristicsImportRequest) (*primary.ImportReport, error) {
	startedAt := time.Now()
	report := &primary.ImportReport{
		Tool:    toolFocusCharacteristics,
		Source:  req.Source,
		Applied: req.Apply,
	}

	for _, rec := range req.Records {
		if rec.ScenarioCode == "" {
			continue
		}

		scenarioID, found, err := s.scenarioRepo.FindSurfaceWaterByCode(ctx, rec.ScenarioCode)
		if err != nil {
			return nil, fmt.Errorf("failed to look up scenario %s: %w", rec.ScenarioCode, err)
		}
		if !found {
			report.Skipped++
			report.Note(fmt.Sprintf("scenario %s not found in focus_scenarios (surface water)", rec.ScenarioCode))
			continue
		}

		report.Upserted++
		if !req.Apply {
			continue
		}
		err = s.scenarioRepo.UpsertCharacteristics(ctx, &secondary.ScenarioCharacteristicsRecord{
			ScenarioID:              scenarioID,
			ScenarioCode:            rec.ScenarioCode,
			WeatherDatasetName:      rec.WeatherDatasetName,
			LatitudeDeg:             rec.LatitudeDeg,
			LongitudeDeg:            rec.LongitudeDeg,
			MeanAnnualTempC:         rec.MeanAnnualTempC,
			AnnualRainfallMM:        rec.AnnualRainfallMM,
			TopsoilTexture:          rec.TopsoilTexture,
			TopsoilOrganicCarbonPct: rec.TopsoilOrganicCarbonPct,
			SlopePct:                rec.SlopePct,
			WaterBodies:             rec.WaterBodies,
			SourceReference:         focusSourceRef,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upsert characteristics for %s: %w", rec.ScenarioCode, err)
		}
	}

	if req.Apply {
		if err := recordImportRun(ctx, s.runRepo, report, startedAt); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// ImportIrrigation upserts per crop x scenario irrigation values. Records
// with a blank key or no value are dropped; unresolved lookups are skipped
// and reported.
func (s *FocusServiceImpl) ImportIrrigation(ctx context.Context, req primary.IrrigationImportRequest) (*primary.ImportReport, error) {
	startedAt := time.Now()
	report := &primary.ImportReport{
		Tool:    toolFocusIrrigation,
		Source:  req.Source,
		Applied: req.Apply,
	}

	for _, rec := range req.Records {
		if rec.ScenarioCode == "" || rec.Crop == "" || rec.IrrigationMMAnnual == nil {
			continue
		}

		scenarioID, scenarioFound, err := s.scenarioRepo.FindSurfaceWaterByCode(ctx, rec.ScenarioCode)
		if err != nil {
			return nil, fmt.Errorf("failed to look up scenario %s: %w", rec.ScenarioCode, err)
		}
		cropID, cropFound, err := s.focusCropRepo.FindByName(ctx, rec.Crop)
		if err != nil {
			return nil, fmt.Errorf("failed to look up crop %s: %w", rec.Crop, err)
		}
		if !scenarioFound || !cropFound {
			report.Skipped++
			report.Note(fmt.Sprintf("%s / %s (scenario or crop not found)", rec.ScenarioCode, rec.Crop))
			continue
		}

		report.Upserted++
		if !req.Apply {
			continue
		}
		err = s.focusCropRepo.UpsertIrrigation(ctx, &secondary.IrrigationRecord{
			FocusCropID:        cropID,
			ScenarioID:         scenarioID,
			IrrigationMMAnnual: *rec.IrrigationMMAnnual,
			SourceReference:    focusSourceRef,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upsert irrigation for %s/%s: %w", rec.ScenarioCode, rec.Crop, err)
		}
	}

	if req.Apply {
		if err := recordImportRun(ctx, s.runRepo, report, startedAt); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// Ensure FocusServiceImpl implements the interface
var _ primary.FocusImportService = (*FocusServiceImpl)(nil)
