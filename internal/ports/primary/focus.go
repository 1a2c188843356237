package primary

import "context"

// FocusImportService defines the primary port for the FOCUS surface-water
// scenario data importer.
type FocusImportService interface {
	// ImportCharacteristics upserts per-scenario weather/location blocks.
	ImportCharacteristics(ctx context.Context, req CharacteristicsImportRequest) (*ImportReport, error)

	// ImportIrrigation upserts per crop x scenario irrigation values.
	ImportIrrigation(ctx context.Context, req IrrigationImportRequest) (*ImportReport, error)
}

// CharacteristicsImportRequest contains parsed scenario characteristics records.
type CharacteristicsImportRequest struct {
	Source  string
	Records []CharacteristicsInput
	Apply   bool
}

// CharacteristicsInput is one scenario characteristics record as parsed from
// the source document.
type CharacteristicsInput struct {
	ScenarioCode            string
	WeatherDatasetName      string
	LatitudeDeg             *float64
	LongitudeDeg            *float64
	MeanAnnualTempC         *float64
	AnnualRainfallMM        *float64
	TopsoilTexture          string
	TopsoilOrganicCarbonPct *float64
	SlopePct                string
	WaterBodies             string
}

// IrrigationImportRequest contains parsed irrigation records.
type IrrigationImportRequest struct {
	Source  string
	Records []IrrigationInput
	Apply   bool
}

// IrrigationInput is one crop x scenario irrigation record as parsed from the
// source document.
type IrrigationInput struct {
	ScenarioCode       string
	Crop               string
	IrrigationMMAnnual *float64
}
