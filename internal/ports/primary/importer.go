// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the importer services.
package primary

// ImportReport summarizes one importer invocation for display and auditing.
type ImportReport struct {
	Tool     string
	Source   string
	Applied  bool
	Upserted int // rows inserted or replaced
	Updated  int // rows updated in place
	Skipped  int // records dropped (lookup miss, malformed field, duplicate)
	Issues   int // per-record failures that did not stop the batch
	Details  []string
	RunID    string // set when the run was applied and recorded
}

// Note appends a per-record detail line.
func (r *ImportReport) Note(line string) {
	r.Details = append(r.Details, line)
}
