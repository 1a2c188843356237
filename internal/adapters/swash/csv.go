// Package swash parses SWASH database exports into importer inputs. The CSV
// readers expect mdb-export output of the Crop and CropScenario tables with
// SWASH v5.3 column names; the JSON reader covers installations where no
// Access toolchain is available.
package swash

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/example/cropdb/internal/ports/primary"
)

// utf8BOM is tolerated at the start of exports that went through Excel.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

type cropRow struct {
	CropName         string   `csv:"CropName"`
	BBCHEmergenceMin *int     `csv:"BBCHemergenceMin"`
	BBCHEmergenceMax *int     `csv:"BBCHemergenceMax"`
	BBCHHarvestMin   *int     `csv:"BBCHharvestMin"`
	BBCHHarvestMax   *int     `csv:"BBCHharvestMax"`
	CanopyType       *string  `csv:"CanopyType"`
	RootDepthM       *float64 `csv:"RootDepth"`
	LAIMax           *float64 `csv:"LAImax"`
}

type linkRow struct {
	CropName      string `csv:"CropName"`
	ScenarioCode  string `csv:"ScenarioCode"`
	WaterbodyType string `csv:"WaterbodyType"`
	IsDefault     *int   `csv:"IsDefault"`
}

// ReadCropCSV parses crop.csv. Rows without a crop name are dropped; rows
// with unparseable values are reported in issues and skipped.
func ReadCropCSV(path string) ([]primary.SwashCropRow, []string, error) {
	dec, err := newDecoder(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		rows   []primary.SwashCropRow
		issues []string
	)
	for line := 2; ; line++ {
		var r cropRow
		if err := dec.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			issues = append(issues, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		name := strings.TrimSpace(r.CropName)
		if name == "" {
			continue
		}
		rows = append(rows, primary.SwashCropRow{
			CropName:         name,
			BBCHEmergenceMin: r.BBCHEmergenceMin,
			BBCHEmergenceMax: r.BBCHEmergenceMax,
			BBCHHarvestMin:   r.BBCHHarvestMin,
			BBCHHarvestMax:   r.BBCHHarvestMax,
			CanopyType:       trimPtr(r.CanopyType),
			RootDepthM:       r.RootDepthM,
			LAIMax:           r.LAIMax,
		})
	}
	return rows, issues, nil
}

// ReadLinkCSV parses cropscenario.csv. A missing or empty IsDefault column
// defaults to 1, matching the SWASH wizard convention.
func ReadLinkCSV(path string) ([]primary.CropScenarioLink, []string, error) {
	dec, err := newDecoder(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		links  []primary.CropScenarioLink
		issues []string
	)
	for line := 2; ; line++ {
		var r linkRow
		if err := dec.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			issues = append(issues, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		isDefault := 1
		if r.IsDefault != nil {
			isDefault = *r.IsDefault
		}
		links = append(links, primary.CropScenarioLink{
			Crop:          strings.TrimSpace(r.CropName),
			ScenarioCode:  strings.TrimSpace(r.ScenarioCode),
			WaterbodyType: strings.TrimSpace(r.WaterbodyType),
			IsDefaultRun:  isDefault,
		})
	}
	return links, issues, nil
}

func newDecoder(path string) (*csvutil.Decoder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	dec, err := csvutil.NewDecoder(csv.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return dec, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
