package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// ============================================================================
// Shared Mock Implementations
// ============================================================================

// Ensure the mocks implement their interfaces
var (
	_ secondary.CropRepository      = (*mockCropRepository)(nil)
	_ secondary.EppoCodeRepository  = (*mockEppoCodeRepository)(nil)
	_ secondary.ScenarioRepository  = (*mockScenarioRepository)(nil)
	_ secondary.FocusCropRepository = (*mockFocusCropRepository)(nil)
	_ secondary.CommodityRepository = (*mockCommodityRepository)(nil)
	_ secondary.RunRepository       = (*mockRunRepository)(nil)
	_ secondary.StatusRepository    = (*mockStatusRepository)(nil)
	_ secondary.TaxonomyGateway     = (*mockTaxonomyGateway)(nil)
)

// mockCropRepository implements secondary.CropRepository for testing.
type mockCropRepository struct {
	placeholderID int64
	ensureCalls   int
	ensureErr     error
}

func newMockCropRepository() *mockCropRepository {
	return &mockCropRepository{placeholderID: 99}
}

func (m *mockCropRepository) EnsurePlaceholder(ctx context.Context, name, notes string) (int64, error) {
	if m.ensureErr != nil {
		return 0, m.ensureErr
	}
	m.ensureCalls++
	return m.placeholderID, nil
}

// mockEppoCodeRepository implements secondary.EppoCodeRepository for testing.
type mockEppoCodeRepository struct {
	rows        []*secondary.EppoCodeRecord
	nameUpdates map[int64]string
	sciUpdates  map[int64]string
	listErr     error
	updateErr   error
}

func newMockEppoCodeRepository() *mockEppoCodeRepository {
	return &mockEppoCodeRepository{
		nameUpdates: make(map[int64]string),
		sciUpdates:  make(map[int64]string),
	}
}

func (m *mockEppoCodeRepository) ListWithCrops(ctx context.Context) ([]*secondary.EppoCodeRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *mockEppoCodeRepository) UpdateName(ctx context.Context, eppoCodeID int64, name string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.nameUpdates[eppoCodeID] = name
	return nil
}

func (m *mockEppoCodeRepository) UpdateCropScientificNameIfEmpty(ctx context.Context, eppoCodeID int64, scientificName string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.sciUpdates[eppoCodeID] = scientificName
	return nil
}

// mockScenarioRepository implements secondary.ScenarioRepository for testing.
type mockScenarioRepository struct {
	surfaceWater    map[string]int64
	allTypes        map[string]int64
	characteristics map[int64]*secondary.ScenarioCharacteristicsRecord
	findCalls       map[string]int
	findErr         error
	upsertErr       error
}

func newMockScenarioRepository() *mockScenarioRepository {
	return &mockScenarioRepository{
		surfaceWater:    make(map[string]int64),
		allTypes:        make(map[string]int64),
		characteristics: make(map[int64]*secondary.ScenarioCharacteristicsRecord),
		findCalls:       make(map[string]int),
	}
}

func (m *mockScenarioRepository) FindSurfaceWaterByCode(ctx context.Context, code string) (int64, bool, error) {
	if m.findErr != nil {
		return 0, false, m.findErr
	}
	m.findCalls[code]++
	id, ok := m.surfaceWater[code]
	return id, ok, nil
}

func (m *mockScenarioRepository) FindByCode(ctx context.Context, code string) (int64, bool, error) {
	if m.findErr != nil {
		return 0, false, m.findErr
	}
	m.findCalls[code]++
	if id, ok := m.surfaceWater[code]; ok {
		return id, true, nil
	}
	id, ok := m.allTypes[code]
	return id, ok, nil
}

func (m *mockScenarioRepository) UpsertCharacteristics(ctx context.Context, rec *secondary.ScenarioCharacteristicsRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.characteristics[rec.ScenarioID] = rec
	return nil
}

// mockFocusCropRepository implements secondary.FocusCropRepository for testing.
type mockFocusCropRepository struct {
	crops         map[string]int64
	paramUpdates  map[int64][]secondary.FocusCropParams
	links         map[string]*secondary.LinkRecord
	interceptions map[string]*secondary.InterceptionRecord
	irrigations   map[string]*secondary.IrrigationRecord
	findCalls     map[string]int
	findErr       error
	updateErr     error
	insertErr     error
}

func newMockFocusCropRepository() *mockFocusCropRepository {
	return &mockFocusCropRepository{
		crops:         make(map[string]int64),
		paramUpdates:  make(map[int64][]secondary.FocusCropParams),
		links:         make(map[string]*secondary.LinkRecord),
		interceptions: make(map[string]*secondary.InterceptionRecord),
		irrigations:   make(map[string]*secondary.IrrigationRecord),
		findCalls:     make(map[string]int),
	}
}

func (m *mockFocusCropRepository) FindByName(ctx context.Context, swashCropName string) (int64, bool, error) {
	if m.findErr != nil {
		return 0, false, m.findErr
	}
	m.findCalls[swashCropName]++
	id, ok := m.crops[swashCropName]
	return id, ok, nil
}

func (m *mockFocusCropRepository) UpdateParams(ctx context.Context, focusCropID int64, params secondary.FocusCropParams) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.paramUpdates[focusCropID] = append(m.paramUpdates[focusCropID], params)
	return nil
}

func (m *mockFocusCropRepository) InsertLink(ctx context.Context, rec *secondary.LinkRecord) (bool, error) {
	if m.insertErr != nil {
		return false, m.insertErr
	}
	key := fmt.Sprintf("%d/%d", rec.FocusCropID, rec.ScenarioID)
	if _, exists := m.links[key]; exists {
		return false, nil
	}
	m.links[key] = rec
	return true, nil
}

func (m *mockFocusCropRepository) UpsertInterception(ctx context.Context, rec *secondary.InterceptionRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.interceptions[fmt.Sprintf("%d/%d", rec.FocusCropID, rec.BBCHStage)] = rec
	return nil
}

func (m *mockFocusCropRepository) UpsertIrrigation(ctx context.Context, rec *secondary.IrrigationRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.irrigations[fmt.Sprintf("%d/%d", rec.FocusCropID, rec.ScenarioID)] = rec
	return nil
}

// mockCommodityRepository implements secondary.CommodityRepository for testing.
type mockCommodityRepository struct {
	reg396    map[string]*secondary.Reg396Record
	primo     map[string]*secondary.PrimoRecord
	insertErr error
}

func newMockCommodityRepository() *mockCommodityRepository {
	return &mockCommodityRepository{
		reg396: make(map[string]*secondary.Reg396Record),
		primo:  make(map[string]*secondary.PrimoRecord),
	}
}

func (m *mockCommodityRepository) InsertReg396(ctx context.Context, rec *secondary.Reg396Record) (bool, error) {
	if m.insertErr != nil {
		return false, m.insertErr
	}
	if _, exists := m.reg396[rec.Annex1Code]; exists {
		return false, nil
	}
	m.reg396[rec.Annex1Code] = rec
	return true, nil
}

func (m *mockCommodityRepository) InsertPrimo(ctx context.Context, rec *secondary.PrimoRecord) (bool, error) {
	if m.insertErr != nil {
		return false, m.insertErr
	}
	key := rec.PrimoVersion + "|" + rec.PrimoCode
	if _, exists := m.primo[key]; exists {
		return false, nil
	}
	m.primo[key] = rec
	return true, nil
}

// mockRunRepository implements secondary.RunRepository for testing.
type mockRunRepository struct {
	records   []*secondary.ImportRunRecord
	recordErr error
	listErr   error
}

func newMockRunRepository() *mockRunRepository {
	return &mockRunRepository{}
}

func (m *mockRunRepository) Record(ctx context.Context, rec *secondary.ImportRunRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockRunRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.ImportRunRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ImportRunRecord
	for i := len(m.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.records[i])
	}
	return result, nil
}

// mockStatusRepository implements secondary.StatusRepository for testing.
type mockStatusRepository struct {
	counts         []secondary.TableCount
	unmappedReg396 int
	unmappedPrimo  int
	countsErr      error
}

func newMockStatusRepository() *mockStatusRepository {
	return &mockStatusRepository{}
}

func (m *mockStatusRepository) TableCounts(ctx context.Context) ([]secondary.TableCount, error) {
	if m.countsErr != nil {
		return nil, m.countsErr
	}
	return m.counts, nil
}

func (m *mockStatusRepository) CountUnmappedCommodities(ctx context.Context, placeholderName string) (int, int, error) {
	if m.countsErr != nil {
		return 0, 0, m.countsErr
	}
	return m.unmappedReg396, m.unmappedPrimo, nil
}

// mockTaxonomyGateway implements secondary.TaxonomyGateway for testing.
type mockTaxonomyGateway struct {
	taxa      map[string]*secondary.Taxon
	names     map[string][]secondary.TaxonName
	taxonErrs map[string]error
	calls     []string
}

func newMockTaxonomyGateway() *mockTaxonomyGateway {
	return &mockTaxonomyGateway{
		taxa:      make(map[string]*secondary.Taxon),
		names:     make(map[string][]secondary.TaxonName),
		taxonErrs: make(map[string]error),
	}
}

func (m *mockTaxonomyGateway) GetTaxon(ctx context.Context, code string) (*secondary.Taxon, error) {
	m.calls = append(m.calls, "taxon:"+code)
	if err, ok := m.taxonErrs[code]; ok {
		return nil, err
	}
	if t, ok := m.taxa[code]; ok {
		return t, nil
	}
	return nil, errors.New("taxon not found")
}

func (m *mockTaxonomyGateway) GetNames(ctx context.Context, code string) ([]secondary.TaxonName, error) {
	m.calls = append(m.calls, "names:"+code)
	return m.names[code], nil
}
