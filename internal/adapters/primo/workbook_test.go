package primo_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/example/cropdb/internal/adapters/primo"
)

func writeWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	build(f)

	path := filepath.Join(t.TempDir(), "primo.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func setCell(t *testing.T, f *excelize.File, sheet, cell string, value interface{}) {
	t.Helper()
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		t.Fatalf("failed to set %s!%s: %v", sheet, cell, err)
	}
}

func TestReadCommodityList(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		if err := f.SetSheetName("Sheet1", primo.CommoditySheet); err != nil {
			t.Fatalf("failed to rename sheet: %v", err)
		}
		sheet := primo.CommoditySheet

		setCell(t, f, sheet, "A1", "PRIMo Rev 3.1 commodity list")
		setCell(t, f, sheet, "A3", "Code")
		setCell(t, f, sheet, "B3", "Commodity")
		setCell(t, f, sheet, "C3", "PRIMo name")
		setCell(t, f, sheet, "D3", "Unit weight (g)")

		setCell(t, f, sheet, "A4", "110010")
		setCell(t, f, sheet, "B4", "Apples")
		setCell(t, f, sheet, "C4", "Apples")
		setCell(t, f, sheet, "D4", 112.5)

		setCell(t, f, sheet, "A5", "0110000")
		setCell(t, f, sheet, "B5", "Citrus fruits")

		// row 6 left blank on purpose

		setCell(t, f, sheet, "A7", "0110020")
		setCell(t, f, sheet, "C7", "Pears")

		setCell(t, f, sheet, "A8", "0163020")
		setCell(t, f, sheet, "B8", "Olives for oil production")
		setCell(t, f, sheet, "C8", "Olives (oil)")
		setCell(t, f, sheet, "D8", "n/a")
	})

	rows, err := primo.ReadCommodityList(path)
	if err != nil {
		t.Fatalf("ReadCommodityList failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (blank and nameless rows dropped), got %d: %+v", len(rows), rows)
	}

	first := rows[0]
	if first.Row != 4 {
		t.Errorf("expected workbook row 4, got %d", first.Row)
	}
	if first.Annex1Code != "110010" {
		t.Errorf("codes are returned unpadded, got %q", first.Annex1Code)
	}
	if first.Annex1Name != "Apples" || first.PrimoName != "Apples" {
		t.Errorf("unexpected names: %+v", first)
	}
	if first.UnitWeightG == nil || *first.UnitWeightG != 112.5 {
		t.Errorf("unexpected unit weight: %v", first.UnitWeightG)
	}

	group := rows[1]
	if group.Annex1Code != "0110000" || group.PrimoName != "" {
		t.Errorf("unexpected group row: %+v", group)
	}
	if group.UnitWeightG != nil {
		t.Errorf("expected nil weight for empty cell, got %v", *group.UnitWeightG)
	}

	olives := rows[2]
	if olives.Row != 8 {
		t.Errorf("expected workbook row 8, got %d", olives.Row)
	}
	if olives.UnitWeightG != nil {
		t.Errorf("expected nil weight for non-numeric cell, got %v", *olives.UnitWeightG)
	}
}

func TestReadCommodityListMissingSheet(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		setCell(t, f, "Sheet1", "A1", "wrong sheet")
	})

	_, err := primo.ReadCommodityList(path)
	if err == nil {
		t.Fatal("expected error for workbook without commodity sheet")
	}
	if !strings.Contains(err.Error(), primo.CommoditySheet) {
		t.Errorf("error should name the expected sheet: %v", err)
	}
	if !strings.Contains(err.Error(), "Sheet1") {
		t.Errorf("error should list available sheets: %v", err)
	}
}

func TestReadCommodityListMissingFile(t *testing.T) {
	_, err := primo.ReadCommodityList(filepath.Join(t.TempDir(), "absent.xlsx"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
