// Package primo reads the commodity list out of an EFSA PRIMo workbook.
package primo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/cropdb/internal/ports/primary"
)

// CommoditySheet is the PRIMo Rev 3.1 sheet holding Annex I codes, commodity
// names and unit weights. Further sheets (consumption data, processing
// factors) are not read.
const CommoditySheet = "Commodity list"

// headerRows is the fixed number of header rows before data starts.
const headerRows = 3

const (
	colAnnex1Code = iota
	colAnnex1Name
	colPrimoName
	colUnitWeight
)

// ReadCommodityList opens the workbook and returns commodity rows in sheet
// order. Blank rows and rows missing the Annex I code or name are dropped.
// A workbook without the commodity sheet is an error that names the sheets
// it does have.
func ReadCommodityList(path string) ([]primary.CommodityRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(CommoditySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet: %w", err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found, available sheets: %s",
			CommoditySheet, strings.Join(f.GetSheetList(), ", "))
	}

	rows, err := f.GetRows(CommoditySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", CommoditySheet, err)
	}

	var out []primary.CommodityRow
	for i, row := range rows {
		if i < headerRows {
			continue
		}

		code := strings.TrimSpace(cell(row, colAnnex1Code))
		name := strings.TrimSpace(cell(row, colAnnex1Name))
		if code == "" || name == "" {
			continue
		}

		var weight *float64
		if w := strings.TrimSpace(cell(row, colUnitWeight)); w != "" {
			if v, err := strconv.ParseFloat(w, 64); err == nil {
				weight = &v
			}
		}

		out = append(out, primary.CommodityRow{
			Row:         i + 1,
			Annex1Code:  code,
			Annex1Name:  name,
			PrimoName:   strings.TrimSpace(cell(row, colPrimoName)),
			UnitWeightG: weight,
		})
	}
	return out, nil
}

// cell reads a column that may be absent because GetRows trims trailing
// empty cells.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
