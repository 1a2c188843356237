// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup goes through db.GetSchemaSQL() so that repository
// code referencing a column that does not exist in the authoritative schema
// fails immediately instead of drifting.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/cropdb/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCrop inserts a test crop and returns its id.
func seedCrop(t *testing.T, database *sql.DB, name, scientificName string) int64 {
	t.Helper()
	if name == "" {
		name = "Wheat"
	}
	var result sql.Result
	var err error
	if scientificName == "" {
		result, err = database.Exec("INSERT INTO crops (common_name_en) VALUES (?)", name)
	} else {
		result, err = database.Exec("INSERT INTO crops (common_name_en, scientific_name) VALUES (?, ?)", name, scientificName)
	}
	if err != nil {
		t.Fatalf("failed to seed crop: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read crop id: %v", err)
	}
	return id
}

// seedEppoCode inserts a test EPPO code and returns its id.
func seedEppoCode(t *testing.T, database *sql.DB, cropID int64, code, name string) int64 {
	t.Helper()
	result, err := database.Exec(
		"INSERT INTO eppo_codes (crop_id, eppo_code, eppo_name) VALUES (?, ?, ?)",
		cropID, code, name,
	)
	if err != nil {
		t.Fatalf("failed to seed eppo code: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read eppo code id: %v", err)
	}
	return id
}

// seedScenarioType inserts a scenario type row.
func seedScenarioType(t *testing.T, database *sql.DB, id int, name string) {
	t.Helper()
	_, err := database.Exec(
		"INSERT OR IGNORE INTO focus_scenario_types (scenario_type_id, name) VALUES (?, ?)",
		id, name,
	)
	if err != nil {
		t.Fatalf("failed to seed scenario type: %v", err)
	}
}

// seedScenario inserts a test scenario and returns its id.
func seedScenario(t *testing.T, database *sql.DB, code string, typeID int) int64 {
	t.Helper()
	seedScenarioType(t, database, typeID, map[int]string{1: "surface water", 2: "groundwater"}[typeID])
	result, err := database.Exec(
		"INSERT INTO focus_scenarios (scenario_code, scenario_type_id) VALUES (?, ?)",
		code, typeID,
	)
	if err != nil {
		t.Fatalf("failed to seed scenario: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read scenario id: %v", err)
	}
	return id
}

// seedFocusCrop inserts a test focus crop and returns its id.
func seedFocusCrop(t *testing.T, database *sql.DB, swashName string) int64 {
	t.Helper()
	result, err := database.Exec(
		"INSERT INTO focus_crops (swash_crop_name) VALUES (?)", swashName,
	)
	if err != nil {
		t.Fatalf("failed to seed focus crop: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read focus crop id: %v", err)
	}
	return id
}

// countRows returns the row count of a table.
func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
