package db

import (
	"database/sql"
	"fmt"
)

// SeedReferenceData loads the FOCUS reference rows every importer matches
// against: scenario types, the surface-water and groundwater scenario lists,
// and the SWASH crop catalogue with its crop registry entries. All inserts
// are INSERT OR IGNORE so reseeding an existing database is a no-op.
func SeedReferenceData(database *sql.DB) error {
	// Scenario types
	types := []struct {
		id   int
		name string
	}{
		{1, "surface water"},
		{2, "groundwater"},
	}
	for _, t := range types {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO focus_scenario_types (scenario_type_id, name) VALUES (?, ?)",
			t.id, t.name,
		); err != nil {
			return fmt.Errorf("seed scenario types: %w", err)
		}
	}

	// Surface-water scenarios (FOCUS drainage and runoff sites)
	swScenarios := []struct{ code, desc string }{
		{"D1", "Lanna (SE) - drainage, ditch and stream"},
		{"D2", "Brimstone (UK) - drainage, ditch and stream"},
		{"D3", "Vredepeel (NL) - drainage, ditch"},
		{"D4", "Skousbo (DK) - drainage, pond and stream"},
		{"D5", "La Jailliere (FR) - drainage, pond and stream"},
		{"D6", "Thiva (GR) - drainage, ditch"},
		{"R1", "Weiherbach (DE) - runoff, pond and stream"},
		{"R2", "Porto (PT) - runoff, stream"},
		{"R3", "Bologna (IT) - runoff, stream"},
		{"R4", "Roujan (FR) - runoff, stream"},
	}
	for _, s := range swScenarios {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO focus_scenarios (scenario_code, scenario_type_id, description) VALUES (?, 1, ?)",
			s.code, s.desc,
		); err != nil {
			return fmt.Errorf("seed surface-water scenarios: %w", err)
		}
	}

	// Groundwater scenarios (FOCUS GW locations)
	gwScenarios := []string{
		"Chateaudun",
		"Hamburg",
		"Jokioinen",
		"Kremsmunster",
		"Okehampton",
		"Piacenza",
		"Porto",
		"Sevilla",
		"Thiva",
	}
	for _, code := range gwScenarios {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO focus_scenarios (scenario_code, scenario_type_id, description) VALUES (?, 2, ?)",
			code, code+" groundwater location",
		); err != nil {
			return fmt.Errorf("seed groundwater scenarios: %w", err)
		}
	}

	// Crop registry with EPPO codes for the major arable and permanent crops
	crops := []struct{ name, sci, eppoCode, eppoName string }{
		{"Wheat", "Triticum aestivum", "TRZAX", "common wheat"},
		{"Barley", "Hordeum vulgare", "HORVX", "barley"},
		{"Maize", "Zea mays", "ZEAMX", "maize"},
		{"Oilseed rape", "Brassica napus", "BRSNN", "rape"},
		{"Potato", "Solanum tuberosum", "SOLTU", "potato"},
		{"Sugar beet", "Beta vulgaris", "BEAVA", "sugarbeet"},
		{"Apple", "Malus domestica", "MABSD", "apple"},
		{"Grapevine", "Vitis vinifera", "VITVI", "grapevine"},
		{"Sunflower", "Helianthus annuus", "HELAN", "sunflower"},
		{"Field bean", "Vicia faba", "VICFX", "broad bean"},
		{"Ryegrass", "Lolium perenne", "LOLPE", "perennial ryegrass"},
		{"Olive", "Olea europaea", "OLVEU", "olive"},
	}
	for _, c := range crops {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO crops (common_name_en, scientific_name) VALUES (?, ?)",
			c.name, c.sci,
		); err != nil {
			return fmt.Errorf("seed crops: %w", err)
		}
		if _, err := database.Exec(
			`INSERT OR IGNORE INTO eppo_codes (crop_id, eppo_code, eppo_name, taxon_level)
			 VALUES ((SELECT crop_id FROM crops WHERE common_name_en = ?), ?, ?, 'species')`,
			c.name, c.eppoCode, c.eppoName,
		); err != nil {
			return fmt.Errorf("seed eppo codes: %w", err)
		}
	}

	// SWASH crop catalogue; names must match what SWASH exports and what the
	// interception table uses. cropName is empty for categories with no single
	// registry crop.
	focusCrops := []struct{ swashName, cropName string }{
		{"Winter cereals", "Wheat"},
		{"Spring cereals", "Barley"},
		{"Maize", "Maize"},
		{"Winter oilseed rape", "Oilseed rape"},
		{"Spring oilseed rape", "Oilseed rape"},
		{"Potatoes", "Potato"},
		{"Sugar beet", "Sugar beet"},
		{"Apples and pears", "Apple"},
		{"Vines", "Grapevine"},
		{"Grass", "Ryegrass"},
		{"Sunflower", "Sunflower"},
		{"Field beans", "Field bean"},
		{"Olives", "Olive"},
		{"Citrus", ""},
		{"Hops", ""},
		{"Soybean", ""},
		{"Vegetables, bulb", ""},
		{"Vegetables, fruiting", ""},
		{"Vegetables, leafy", ""},
		{"Vegetables, root", ""},
	}
	for _, fc := range focusCrops {
		var err error
		if fc.cropName == "" {
			_, err = database.Exec(
				"INSERT OR IGNORE INTO focus_crops (swash_crop_name) VALUES (?)",
				fc.swashName,
			)
		} else {
			_, err = database.Exec(
				`INSERT OR IGNORE INTO focus_crops (crop_id, swash_crop_name)
				 VALUES ((SELECT crop_id FROM crops WHERE common_name_en = ?), ?)`,
				fc.cropName, fc.swashName,
			)
		}
		if err != nil {
			return fmt.Errorf("seed focus crops: %w", err)
		}
	}

	return nil
}
