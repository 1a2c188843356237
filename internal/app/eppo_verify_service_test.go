package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/ports/secondary"
)

// ============================================================================
// Test Helper
// ============================================================================

func newTestEppoVerifyService() (*EppoVerifyServiceImpl, *mockEppoCodeRepository, *mockTaxonomyGateway, *mockRunRepository, *bytes.Buffer) {
	eppoRepo := newMockEppoCodeRepository()
	gateway := newMockTaxonomyGateway()
	runRepo := newMockRunRepository()
	out := &bytes.Buffer{}
	service := NewEppoVerifyService(eppoRepo, gateway, runRepo, out)
	return service, eppoRepo, gateway, runRepo, out
}

func seedVerifyTarget(eppoRepo *mockEppoCodeRepository, gateway *mockTaxonomyGateway, id int64, code, dbName, apiName, sciName string) {
	eppoRepo.rows = append(eppoRepo.rows, &secondary.EppoCodeRecord{
		EppoCodeID:   id,
		EppoCode:     code,
		EppoName:     dbName,
		CommonNameEn: dbName,
	})
	gateway.taxa[code] = &secondary.Taxon{Code: code, FullName: sciName}
	gateway.names[code] = []secondary.TaxonName{
		{FullName: sciName, LangISO: "la", Preferred: 1},
		{FullName: apiName, LangISO: "en", Preferred: 1},
		{FullName: "old synonym", LangISO: "en", Preferred: 0},
	}
}

// ============================================================================
// VerifyCodes Tests
// ============================================================================

func TestVerifyCodes_AllMatched(t *testing.T) {
	service, eppoRepo, gateway, _, out := newTestEppoVerifyService()
	seedVerifyTarget(eppoRepo, gateway, 1, "TRZAX", "common wheat", "Common Wheat", "Triticum aestivum")
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Checked != 1 || report.Matched != 1 {
		t.Errorf("expected 1 checked and matched, got %+v", report)
	}
	if len(report.Corrections) != 0 {
		t.Errorf("case-insensitive match must not queue a correction: %+v", report.Corrections)
	}
	if !strings.Contains(out.String(), "Checking TRZAX (common wheat)... OK") {
		t.Errorf("unexpected progress output: %q", out.String())
	}
}

func TestVerifyCodes_MismatchQueuesCorrection(t *testing.T) {
	service, eppoRepo, gateway, runRepo, out := newTestEppoVerifyService()
	seedVerifyTarget(eppoRepo, gateway, 7, "ZEAMX", "corn", "maize", "Zea mays")
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Corrections) != 1 {
		t.Fatalf("expected 1 correction, got %d", len(report.Corrections))
	}
	c := report.Corrections[0]
	if c.EppoCodeID != 7 || c.OldName != "corn" || c.NewName != "maize" || c.ScientificName != "Zea mays" {
		t.Errorf("unexpected correction: %+v", c)
	}
	if report.Applied {
		t.Error("corrections must not be applied without the apply flag")
	}
	if len(eppoRepo.nameUpdates) != 0 {
		t.Error("preview must not update names")
	}
	if len(runRepo.records) != 0 {
		t.Error("preview must not record a run")
	}
	if !strings.Contains(out.String(), "NAME MISMATCH: DB='corn' API='maize'") {
		t.Errorf("unexpected progress output: %q", out.String())
	}
}

func TestVerifyCodes_ApplyWritesCorrections(t *testing.T) {
	service, eppoRepo, gateway, runRepo, _ := newTestEppoVerifyService()
	seedVerifyTarget(eppoRepo, gateway, 7, "ZEAMX", "corn", "maize", "Zea mays")
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{Apply: true})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !report.Applied {
		t.Error("expected report to be marked applied")
	}
	if eppoRepo.nameUpdates[7] != "maize" {
		t.Errorf("expected name update for ID 7, got %v", eppoRepo.nameUpdates)
	}
	if eppoRepo.sciUpdates[7] != "Zea mays" {
		t.Errorf("expected scientific name refresh for ID 7, got %v", eppoRepo.sciUpdates)
	}
	if len(runRepo.records) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runRepo.records))
	}
	if runRepo.records[0].Updated != 1 {
		t.Errorf("run record should carry the correction count, got %+v", runRepo.records[0])
	}
	if report.RunID == "" {
		t.Error("expected run ID on applied report")
	}
}

func TestVerifyCodes_ApplyWithoutCorrectionsRecordsNothing(t *testing.T) {
	service, eppoRepo, gateway, runRepo, _ := newTestEppoVerifyService()
	seedVerifyTarget(eppoRepo, gateway, 1, "TRZAX", "common wheat", "common wheat", "Triticum aestivum")
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{Apply: true})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Applied {
		t.Error("nothing to apply, report must not be marked applied")
	}
	if len(runRepo.records) != 0 {
		t.Error("no corrections means no run record")
	}
}

func TestVerifyCodes_APIErrorReportedAndBatchContinues(t *testing.T) {
	service, eppoRepo, gateway, _, out := newTestEppoVerifyService()
	seedVerifyTarget(eppoRepo, gateway, 1, "AAAAA", "first", "first", "")
	seedVerifyTarget(eppoRepo, gateway, 2, "BBBBB", "second", "second", "")
	gateway.taxonErrs["AAAAA"] = errors.New("status 403")
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %+v", report.Issues)
	}
	if report.Issues[0].EppoCode != "AAAAA" || !strings.Contains(report.Issues[0].Message, "403") {
		t.Errorf("unexpected issue: %+v", report.Issues[0])
	}
	if report.Checked != 1 {
		t.Errorf("second code should still be checked, got %d", report.Checked)
	}
	if !strings.Contains(out.String(), "ERROR: status 403") {
		t.Errorf("unexpected progress output: %q", out.String())
	}
}

func TestVerifyCodes_LimitStopsEarly(t *testing.T) {
	service, eppoRepo, gateway, _, _ := newTestEppoVerifyService()
	seedVerifyTarget(eppoRepo, gateway, 1, "AAAAA", "first", "first", "")
	seedVerifyTarget(eppoRepo, gateway, 2, "BBBBB", "second", "second", "")
	seedVerifyTarget(eppoRepo, gateway, 3, "CCCCC", "third", "third", "")
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{Limit: 2})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Checked != 2 {
		t.Errorf("expected 2 checked with limit 2, got %d", report.Checked)
	}
	if len(gateway.calls) != 4 {
		t.Errorf("expected 2 taxon + 2 names calls, got %v", gateway.calls)
	}
}

func TestVerifyCodes_NoPreferredEnglishNameCountsAsMatch(t *testing.T) {
	service, eppoRepo, gateway, _, _ := newTestEppoVerifyService()
	eppoRepo.rows = append(eppoRepo.rows, &secondary.EppoCodeRecord{
		EppoCodeID: 1, EppoCode: "VITVI", EppoName: "grapevine", CommonNameEn: "grapevine",
	})
	gateway.taxa["VITVI"] = &secondary.Taxon{Code: "VITVI", FullName: "Vitis vinifera"}
	gateway.names["VITVI"] = []secondary.TaxonName{
		{FullName: "Vitis vinifera", LangISO: "la", Preferred: 1},
	}
	ctx := context.Background()

	report, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Corrections) != 0 || report.Matched != 1 {
		t.Errorf("missing preferred name must not queue a correction, got %+v", report)
	}
}

func TestVerifyCodes_ListErrorFails(t *testing.T) {
	service, eppoRepo, _, _, _ := newTestEppoVerifyService()
	eppoRepo.listErr = errors.New("db gone")
	ctx := context.Background()

	_, err := service.VerifyCodes(ctx, primary.VerifyEppoRequest{})
	if err == nil {
		t.Fatal("expected error when listing fails")
	}
}
