package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

const toolVerifyEppo = "verify-eppo"

// eppoRunSource labels verify runs in the audit trail; the actual endpoint is
// configurable and not worth persisting per run.
const eppoRunSource = "EPPO Global Database API"

// EppoVerifyServiceImpl implements the EppoVerifyService interface. Progress
// is streamed to out so long runs show per-code results as they happen.
type EppoVerifyServiceImpl struct {
	eppoRepo secondary.EppoCodeRepository
	taxonomy secondary.TaxonomyGateway
	runRepo  secondary.RunRepository
	out      io.Writer
}

// NewEppoVerifyService creates a new EppoVerifyService with injected dependencies.
func NewEppoVerifyService(eppoRepo secondary.EppoCodeRepository, taxonomy secondary.TaxonomyGateway, runRepo secondary.RunRepository, out io.Writer) *EppoVerifyServiceImpl {
	return &EppoVerifyServiceImpl{
		eppoRepo: eppoRepo,
		taxonomy: taxonomy,
		runRepo:  runRepo,
		out:      out,
	}
}

// VerifyCodes checks every stored EPPO code against the taxonomy API. A name
// mismatch queues a correction; a per-code API failure is reported and the
// batch continues. Corrections are written only when requested.
func (s *EppoVerifyServiceImpl) VerifyCodes(ctx context.Context, req primary.VerifyEppoRequest) (*primary.VerifyEppoReport, error) {
	startedAt := time.Now()

	rows, err := s.eppoRepo.ListWithCrops(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list EPPO codes: %w", err)
	}

	report := &primary.VerifyEppoReport{}
	for i, row := range rows {
		if req.Limit > 0 && i >= req.Limit {
			break
		}

		fmt.Fprintf(s.out, "Checking %s (%s)... ", row.EppoCode, row.CommonNameEn)

		taxon, err := s.taxonomy.GetTaxon(ctx, row.EppoCode)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			fmt.Fprintf(s.out, "ERROR: %v\n", err)
			report.Issues = append(report.Issues, primary.CodeIssue{EppoCode: row.EppoCode, Message: err.Error()})
			continue
		}
		names, err := s.taxonomy.GetNames(ctx, row.EppoCode)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			fmt.Fprintf(s.out, "ERROR: %v\n", err)
			report.Issues = append(report.Issues, primary.CodeIssue{EppoCode: row.EppoCode, Message: err.Error()})
			continue
		}

		report.Checked++

		apiName := preferredEnglishName(names)
		if apiName != "" && !strings.EqualFold(apiName, row.EppoName) {
			fmt.Fprintf(s.out, "NAME MISMATCH: DB='%s' API='%s'\n", row.EppoName, apiName)
			report.Corrections = append(report.Corrections, primary.NameCorrection{
				EppoCodeID:     row.EppoCodeID,
				EppoCode:       row.EppoCode,
				OldName:        row.EppoName,
				NewName:        apiName,
				ScientificName: taxon.FullName,
			})
		} else {
			fmt.Fprintln(s.out, "OK")
			report.Matched++
		}

		if req.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(req.Delay):
			}
		}
	}

	if req.Apply && len(report.Corrections) > 0 {
		if err := s.applyCorrections(ctx, report.Corrections); err != nil {
			return nil, err
		}
		report.Applied = true

		runReport := &primary.ImportReport{
			Tool:     toolVerifyEppo,
			Source:   eppoRunSource,
			Updated:  len(report.Corrections),
			Issues:   len(report.Issues),
			Skipped:  0,
			Upserted: 0,
		}
		if err := recordImportRun(ctx, s.runRepo, runReport, startedAt); err != nil {
			return nil, err
		}
		report.RunID = runReport.RunID
	}

	return report, nil
}

func (s *EppoVerifyServiceImpl) applyCorrections(ctx context.Context, corrections []primary.NameCorrection) error {
	for _, c := range corrections {
		if err := s.eppoRepo.UpdateName(ctx, c.EppoCodeID, c.NewName); err != nil {
			return fmt.Errorf("failed to update name for %s: %w", c.EppoCode, err)
		}
		if c.ScientificName == "" {
			continue
		}
		if err := s.eppoRepo.UpdateCropScientificNameIfEmpty(ctx, c.EppoCodeID, c.ScientificName); err != nil {
			return fmt.Errorf("failed to update scientific name for %s: %w", c.EppoCode, err)
		}
	}
	return nil
}

// preferredEnglishName picks the preferred English name out of an API name
// list, or returns empty when none is marked.
func preferredEnglishName(names []secondary.TaxonName) string {
	for _, n := range names {
		if n.LangISO == "en" && n.Preferred == 1 {
			return n.FullName
		}
	}
	return ""
}

// Ensure EppoVerifyServiceImpl implements the interface
var _ primary.EppoVerifyService = (*EppoVerifyServiceImpl)(nil)
