package primary

import "context"

// SwashImportService defines the primary port for the SWASH crop-scenario
// matrix importer.
type SwashImportService interface {
	// ImportCropParameters updates focus_crops agronomic columns from parsed
	// SWASH crop rows.
	ImportCropParameters(ctx context.Context, req SwashCropImportRequest) (*ImportReport, error)

	// ImportLinks inserts valid crop x scenario combinations.
	ImportLinks(ctx context.Context, req SwashLinkImportRequest) (*ImportReport, error)
}

// SwashCropImportRequest contains parsed SWASH crop definition rows.
type SwashCropImportRequest struct {
	Source      string
	Rows        []SwashCropRow
	ParseIssues []string // rows the reader could not decode
	Apply       bool
}

// SwashCropRow is one SWASH crop definition as parsed from the export.
// Nil fields were empty in the source and leave the stored value untouched.
type SwashCropRow struct {
	CropName         string
	BBCHEmergenceMin *int
	BBCHEmergenceMax *int
	BBCHHarvestMin   *int
	BBCHHarvestMax   *int
	CanopyType       *string
	RootDepthM       *float64
	LAIMax           *float64
}

// SwashLinkImportRequest contains parsed crop x scenario combinations.
type SwashLinkImportRequest struct {
	Source      string
	Links       []CropScenarioLink
	ParseIssues []string // rows the reader could not decode
	Apply       bool
}

// CropScenarioLink is one valid crop x scenario combination.
type CropScenarioLink struct {
	Crop          string
	ScenarioCode  string
	WaterbodyType string // empty means unspecified
	IsDefaultRun  int
}
