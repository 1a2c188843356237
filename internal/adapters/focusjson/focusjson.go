// Package focusjson parses the Generic FOCUS SWS JSON documents into importer
// inputs. Both documents accept an "items" fallback for the top-level array
// so hand-assembled exports keep working.
package focusjson

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/example/cropdb/internal/ports/primary"
)

type characteristicsDoc struct {
	Scenarios []characteristicsRecord `json:"scenarios"`
	Items     []characteristicsRecord `json:"items"`
}

type characteristicsRecord struct {
	ScenarioCode            string   `json:"scenario_code"`
	WeatherDatasetName      string   `json:"weather_dataset_name"`
	LatitudeDeg             *float64 `json:"latitude_deg"`
	LongitudeDeg            *float64 `json:"longitude_deg"`
	MeanAnnualTempC         *float64 `json:"mean_annual_temp_c"`
	AnnualRainfallMM        *float64 `json:"annual_rainfall_mm"`
	TopsoilTexture          string   `json:"topsoil_texture"`
	TopsoilOrganicCarbonPct *float64 `json:"topsoil_organic_carbon_pct"`
	SlopePct                string   `json:"slope_pct"`
	WaterBodies             string   `json:"water_bodies"`
}

// ParseCharacteristics reads a scenario characteristics document. A document
// with neither a "scenarios" nor an "items" array is an error.
func ParseCharacteristics(path string) ([]primary.CharacteristicsInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc characteristicsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	records := doc.Scenarios
	if len(records) == 0 {
		records = doc.Items
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no 'scenarios' or 'items' array in %s", path)
	}

	inputs := make([]primary.CharacteristicsInput, 0, len(records))
	for _, r := range records {
		inputs = append(inputs, primary.CharacteristicsInput{
			ScenarioCode:            strings.TrimSpace(r.ScenarioCode),
			WeatherDatasetName:      strings.TrimSpace(r.WeatherDatasetName),
			LatitudeDeg:             r.LatitudeDeg,
			LongitudeDeg:            r.LongitudeDeg,
			MeanAnnualTempC:         r.MeanAnnualTempC,
			AnnualRainfallMM:        r.AnnualRainfallMM,
			TopsoilTexture:          strings.TrimSpace(r.TopsoilTexture),
			TopsoilOrganicCarbonPct: r.TopsoilOrganicCarbonPct,
			SlopePct:                strings.TrimSpace(r.SlopePct),
			WaterBodies:             strings.TrimSpace(r.WaterBodies),
		})
	}
	return inputs, nil
}

type irrigationDoc struct {
	Irrigation []irrigationRecord `json:"irrigation"`
	Items      []irrigationRecord `json:"items"`
}

type irrigationRecord struct {
	ScenarioCode       string   `json:"scenario_code"`
	Crop               string   `json:"crop"`
	IrrigationMMAnnual *float64 `json:"irrigation_mm_annual"`
}

// ParseIrrigation reads a crop x scenario irrigation document. A document
// with neither an "irrigation" nor an "items" array is an error.
func ParseIrrigation(path string) ([]primary.IrrigationInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc irrigationDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	records := doc.Irrigation
	if len(records) == 0 {
		records = doc.Items
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no 'irrigation' or 'items' array in %s", path)
	}

	inputs := make([]primary.IrrigationInput, 0, len(records))
	for _, r := range records {
		inputs = append(inputs, primary.IrrigationInput{
			ScenarioCode:       strings.TrimSpace(r.ScenarioCode),
			Crop:               strings.TrimSpace(r.Crop),
			IrrigationMMAnnual: r.IrrigationMMAnnual,
		})
	}
	return inputs, nil
}
