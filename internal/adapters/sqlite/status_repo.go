package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// StatusRepository implements secondary.StatusRepository with SQLite.
type StatusRepository struct {
	db *sql.DB
}

// NewStatusRepository creates a new SQLite status repository.
func NewStatusRepository(db *sql.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// statusTables lists every domain table in display order.
var statusTables = []string{
	"crops",
	"eppo_codes",
	"focus_scenario_types",
	"focus_scenarios",
	"focus_crops",
	"focus_crop_scenario_links",
	"focus_crop_interception",
	"focus_sw_scenario_characteristics",
	"focus_crop_scenario_irrigation",
	"reg396_commodities",
	"primo_commodities",
	"import_runs",
}

// TableCounts returns row counts for every domain table, in a stable order.
func (r *StatusRepository) TableCounts(ctx context.Context) ([]secondary.TableCount, error) {
	counts := make([]secondary.TableCount, 0, len(statusTables))
	for _, table := range statusTables {
		var n int
		// Table names come from the fixed list above, never from input.
		err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts = append(counts, secondary.TableCount{Table: table, Rows: n})
	}
	return counts, nil
}

// CountUnmappedCommodities returns how many reg396 and primo rows still point
// at the named placeholder crop.
func (r *StatusRepository) CountUnmappedCommodities(ctx context.Context, placeholderName string) (int, int, error) {
	var reg396 int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM reg396_commodities r
		JOIN crops c ON r.crop_id = c.crop_id
		WHERE c.common_name_en = ?
	`, placeholderName).Scan(&reg396)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count unmapped reg396 commodities: %w", err)
	}

	var primo int
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM primo_commodities p
		JOIN crops c ON p.crop_id = c.crop_id
		WHERE c.common_name_en = ?
	`, placeholderName).Scan(&primo)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count unmapped primo commodities: %w", err)
	}

	return reg396, primo, nil
}

// Ensure StatusRepository implements the interface
var _ secondary.StatusRepository = (*StatusRepository)(nil)
