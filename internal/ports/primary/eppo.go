package primary

import (
	"context"
	"time"
)

// EppoVerifyService defines the primary port for EPPO code verification.
type EppoVerifyService interface {
	// VerifyCodes checks every stored EPPO code against the taxonomy API and
	// queues name corrections for mismatches, applying them when requested.
	VerifyCodes(ctx context.Context, req VerifyEppoRequest) (*VerifyEppoReport, error)
}

// VerifyEppoRequest contains parameters for a verification run.
type VerifyEppoRequest struct {
	Apply bool
	Limit int           // stop after this many codes; 0 checks all
	Delay time.Duration // pause between API calls
}

// VerifyEppoReport contains the result of a verification run.
type VerifyEppoReport struct {
	Checked     int
	Matched     int
	Corrections []NameCorrection // queued on mismatch; applied when requested
	Issues      []CodeIssue      // per-code API failures
	Applied     bool
	RunID       string
}

// NameCorrection is one queued EPPO name fix.
type NameCorrection struct {
	EppoCodeID     int64
	EppoCode       string
	OldName        string
	NewName        string
	ScientificName string // refreshed on the crop when it has none
}

// CodeIssue is one per-code failure that did not stop the batch.
type CodeIssue struct {
	EppoCode string
	Message  string
}
