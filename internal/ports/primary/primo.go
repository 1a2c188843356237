package primary

import "context"

// PrimoImportService defines the primary port for the PRIMo commodity-list
// importer.
type PrimoImportService interface {
	// ImportCommodities loads Annex I and PRIMo commodity rows parsed from
	// the workbook.
	ImportCommodities(ctx context.Context, req PrimoImportRequest) (*PrimoImportReport, error)
}

// PrimoImportRequest contains parsed workbook rows and import options.
type PrimoImportRequest struct {
	Source  string
	Version string // PRIMo version label, e.g. "Rev 3.1"
	Rows    []CommodityRow
	Apply   bool
}

// CommodityRow is one commodity-list row as parsed from the workbook.
// Codes arrive unpadded when Excel stored them as numbers.
type CommodityRow struct {
	Row         int // 1-based workbook row, for preview lines
	Annex1Code  string
	Annex1Name  string
	PrimoName   string
	UnitWeightG *float64
}

// PrimoImportReport extends the common report with per-table counters.
type PrimoImportReport struct {
	ImportReport
	Preview        []string // first rows as parsed, shown before writing
	Reg396Parsed   int
	PrimoParsed    int
	Reg396Inserted int
	PrimoInserted  int
}
