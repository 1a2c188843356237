// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// CropRepository defines the secondary port for the crop registry.
type CropRepository interface {
	// EnsurePlaceholder returns the crop_id of the named placeholder crop,
	// creating it on first use.
	EnsurePlaceholder(ctx context.Context, name, notes string) (int64, error)
}

// EppoCodeRepository defines the secondary port for EPPO code persistence.
type EppoCodeRepository interface {
	// ListWithCrops retrieves all EPPO codes joined to their crops, ordered by code.
	ListWithCrops(ctx context.Context) ([]*EppoCodeRecord, error)

	// UpdateName replaces the stored EPPO preferred name.
	UpdateName(ctx context.Context, eppoCodeID int64, name string) error

	// UpdateCropScientificNameIfEmpty sets the owning crop's scientific name
	// only when none is stored yet.
	UpdateCropScientificNameIfEmpty(ctx context.Context, eppoCodeID int64, scientificName string) error
}

// EppoCodeRecord represents an EPPO code row joined to its crop.
type EppoCodeRecord struct {
	EppoCodeID     int64
	EppoCode       string
	EppoName       string
	TaxonLevel     string
	CropID         int64
	CommonNameEn   string
	ScientificName string
}

// ScenarioRepository defines the secondary port for FOCUS scenario persistence.
type ScenarioRepository interface {
	// FindSurfaceWaterByCode resolves a scenario code within the surface-water type.
	FindSurfaceWaterByCode(ctx context.Context, code string) (int64, bool, error)

	// FindByCode resolves a scenario code across all scenario types.
	FindByCode(ctx context.Context, code string) (int64, bool, error)

	// UpsertCharacteristics writes the per-scenario weather/location block.
	UpsertCharacteristics(ctx context.Context, rec *ScenarioCharacteristicsRecord) error
}

// ScenarioCharacteristicsRecord represents a focus_sw_scenario_characteristics row.
type ScenarioCharacteristicsRecord struct {
	ScenarioID              int64
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
	SourceReference         string
}

// FocusCropRepository defines the secondary port for the SWASH crop catalogue
// and its dependent tables.
type FocusCropRepository interface {
	// FindByName resolves a SWASH crop name to its focus_crop_id.
	FindByName(ctx context.Context, swashCropName string) (int64, bool, error)

	// UpdateParams updates only the agronomic parameters that are set.
	UpdateParams(ctx context.Context, focusCropID int64, params FocusCropParams) error

	// InsertLink adds a crop x scenario combination, ignoring duplicates.
	// Returns true when a new row was inserted.
	InsertLink(ctx context.Context, rec *LinkRecord) (bool, error)

	// UpsertInterception writes one interception step.
	UpsertInterception(ctx context.Context, rec *InterceptionRecord) error

	// UpsertIrrigation writes one crop x scenario irrigation value.
	UpsertIrrigation(ctx context.Context, rec *IrrigationRecord) error
}

// FocusCropParams carries a partial update of focus_crops agronomic columns.
// Nil fields are left untouched.
type FocusCropParams struct {
	BBCHSowingMin  *int
	BBCHSowingMax  *int
	BBCHHarvestMin *int
	BBCHHarvestMax *int
	CanopyType     *string
	RootDepthM     *float64
	LAIMax         *float64
}

// IsZero reports whether no parameter is set.
func (p FocusCropParams) IsZero() bool {
	return p.BBCHSowingMin == nil && p.BBCHSowingMax == nil &&
		p.BBCHHarvestMin == nil && p.BBCHHarvestMax == nil &&
		p.CanopyType == nil && p.RootDepthM == nil && p.LAIMax == nil
}

// LinkRecord represents a focus_crop_scenario_links row.
type LinkRecord struct {
	FocusCropID   int64
	ScenarioID    int64
	WaterbodyType string // empty means unspecified, stored as NULL
	IsDefaultRun  int
}

// InterceptionRecord represents a focus_crop_interception row.
type InterceptionRecord struct {
	FocusCropID        int64
	BBCHStage          int
	InterceptionPct    float64
	InterceptionSource string
}

// IrrigationRecord represents a focus_crop_scenario_irrigation row.
type IrrigationRecord struct {
	FocusCropID        int64
	ScenarioID         int64
	IrrigationMMAnnual float64
	SourceReference    string
}

// CommodityRepository defines the secondary port for Annex I and PRIMo
// commodity persistence.
type CommodityRepository interface {
	// InsertReg396 adds an Annex I commodity, ignoring duplicates.
	// Returns true when a new row was inserted.
	InsertReg396(ctx context.Context, rec *Reg396Record) (bool, error)

	// InsertPrimo adds a PRIMo commodity, ignoring duplicates.
	// Returns true when a new row was inserted.
	InsertPrimo(ctx context.Context, rec *PrimoRecord) (bool, error)
}

// Reg396Record represents a reg396_commodities row.
type Reg396Record struct {
	CropID            int64
	Annex1Code        string
	Annex1Name        string
	HierarchyLevel    int
	ParentAnnex1Code  string // empty means top level, stored as NULL
	RegulationVersion string
}

// PrimoRecord represents a primo_commodities row.
type PrimoRecord struct {
	CropID       int64
	PrimoVersion string
	PrimoCode    string
	PrimoName    string
	UnitWeightG  *float64
}

// RunRepository defines the secondary port for the import audit trail.
type RunRepository interface {
	// Record persists one applied importer invocation.
	Record(ctx context.Context, rec *ImportRunRecord) error

	// ListRecent retrieves the most recent runs, newest first.
	ListRecent(ctx context.Context, limit int) ([]*ImportRunRecord, error)
}

// ImportRunRecord represents an import_runs row.
type ImportRunRecord struct {
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

// StatusRepository defines the secondary port for database health queries.
type StatusRepository interface {
	// TableCounts returns row counts for every domain table, in a stable order.
	TableCounts(ctx context.Context) ([]TableCount, error)

	// CountUnmappedCommodities returns how many reg396 and primo rows still
	// point at the named placeholder crop.
	CountUnmappedCommodities(ctx context.Context, placeholderName string) (reg396 int, primo int, err error)
}

// TableCount pairs a table name with its row count.
type TableCount struct {
	Table string
	Rows  int
}
