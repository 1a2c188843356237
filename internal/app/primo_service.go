package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/cropdb/internal/core/annex1"
	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

const toolPrimo = "primo"

// previewRows caps how many parsed rows are echoed before writing.
const previewRows = 10

// defaultHierarchyLevel is stored when a code does not follow the 7-digit
// pattern; such codes are treated as individual commodities.
const defaultHierarchyLevel = 3

// PrimoServiceImpl implements the PrimoImportService interface.
type PrimoServiceImpl struct {
	cropRepo      secondary.CropRepository
	commodityRepo secondary.CommodityRepository
	runRepo       secondary.RunRepository
}

// NewPrimoService creates a new PrimoImportService with injected dependencies.
func NewPrimoService(cropRepo secondary.CropRepository, commodityRepo secondary.CommodityRepository, runRepo secondary.RunRepository) *PrimoServiceImpl {
	return &PrimoServiceImpl{
		cropRepo:      cropRepo,
		commodityRepo: commodityRepo,
		runRepo:       runRepo,
	}
}

// ImportCommodities normalizes workbook rows, derives the Annex I hierarchy
// and inserts commodities under the placeholder crop. Every row lands in
// reg396_commodities; rows with a PRIMo display name additionally land in
// primo_commodities. Duplicates are ignored and counted as skipped.
func (s *PrimoServiceImpl) ImportCommodities(ctx context.Context, req primary.PrimoImportRequest) (*primary.PrimoImportReport, error) {
	startedAt := time.Now()
	report := &primary.PrimoImportReport{
		ImportReport: primary.ImportReport{
			Tool:    toolPrimo,
			Source:  req.Source,
			Applied: req.Apply,
		},
	}

	type reg396Row struct {
		code   string
		name   string
		level  int
		parent string
	}
	type primoRow struct {
		code   string
		name   string
		weight *float64
	}

	var (
		regRows   []reg396Row
		primoRows []primoRow
	)
	for _, row := range req.Rows {
		code := annex1.Normalize(row.Annex1Code)
		level, hasLevel := annex1.Level(code)
		if !hasLevel {
			level = defaultHierarchyLevel
		}
		parent, _ := annex1.ParentCode(code)

		if len(report.Preview) < previewRows {
			report.Preview = append(report.Preview, fmt.Sprintf(
				"row %d: code=%s name=%.40s primo=%.30s L%d",
				row.Row, code, row.Annex1Name, row.PrimoName, level))
		}

		regRows = append(regRows, reg396Row{code: code, name: row.Annex1Name, level: level, parent: parent})
		if row.PrimoName != "" {
			primoRows = append(primoRows, primoRow{code: code, name: row.PrimoName, weight: row.UnitWeightG})
		}
	}

	report.Reg396Parsed = len(regRows)
	report.PrimoParsed = len(primoRows)

	if !req.Apply {
		return report, nil
	}

	placeholderID, err := s.cropRepo.EnsurePlaceholder(ctx, PlaceholderCropName, placeholderCropNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure placeholder crop: %w", err)
	}

	regulationVersion := fmt.Sprintf("Reg (EC) No 396/2005 (as in PRIMo %s)", req.Version)
	for _, r := range regRows {
		inserted, err := s.commodityRepo.InsertReg396(ctx, &secondary.Reg396Record{
			CropID:            placeholderID,
			Annex1Code:        r.code,
			Annex1Name:        r.name,
			HierarchyLevel:    r.level,
			ParentAnnex1Code:  r.parent,
			RegulationVersion: regulationVersion,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert commodity %s: %w", r.code, err)
		}
		if inserted {
			report.Reg396Inserted++
		} else {
			report.Skipped++
		}
	}

	for _, p := range primoRows {
		inserted, err := s.commodityRepo.InsertPrimo(ctx, &secondary.PrimoRecord{
			CropID:       placeholderID,
			PrimoVersion: req.Version,
			PrimoCode:    p.code,
			PrimoName:    p.name,
			UnitWeightG:  p.weight,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert PRIMo commodity %s: %w", p.code, err)
		}
		if inserted {
			report.PrimoInserted++
		} else {
			report.Skipped++
		}
	}

	report.Upserted = report.Reg396Inserted + report.PrimoInserted
	if err := recordImportRun(ctx, s.runRepo, &report.ImportReport, startedAt); err != nil {
		return nil, err
	}
	return report, nil
}

// Ensure PrimoServiceImpl implements the interface
var _ primary.PrimoImportService = (*PrimoServiceImpl)(nil)
