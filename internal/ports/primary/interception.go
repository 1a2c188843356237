package primary

import "context"

// InterceptionImportService defines the primary port for loading the EFSA
// crop-interception step function.
type InterceptionImportService interface {
	// ImportInterception upserts the built-in interception table.
	ImportInterception(ctx context.Context, req InterceptionImportRequest) (*InterceptionReport, error)
}

// InterceptionImportRequest contains parameters for an interception import.
type InterceptionImportRequest struct {
	Apply bool
}

// InterceptionReport extends the common report with stub bookkeeping.
type InterceptionReport struct {
	ImportReport
	Stubs         int      // stages still lacking a value in the built-in table
	CropsNotFound []string // SWASH names with no focus_crops row
}
