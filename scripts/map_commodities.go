//go:build ignore
// +build ignore

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Candidate pairs an unmapped commodity with the crop its name matches
type Candidate struct {
	Reg396ID   int64
	Annex1Code string
	Annex1Name string
	CropID     int64
	CropName   string
}

// placeholderCrop is the parking crop the PRIMo importer files commodities
// under until someone maps them
const placeholderCrop = "Unknown (unmapped)"

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview mapping without executing")
	dbFlag := flag.String("db", "", "Database file (default crop_db.sqlite, env CROPDB_DB)")
	flag.Parse()

	path := *dbFlag
	if path == "" {
		path = os.Getenv("CROPDB_DB")
	}
	if path == "" {
		path = "crop_db.sqlite"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Find placeholder commodities whose Annex I name matches a crop exactly
	candidates, err := findCandidates(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding candidates: %v\n", err)
		os.Exit(1)
	}

	if len(candidates) == 0 {
		fmt.Println("No unmapped commodities match a crop name")
		return
	}

	fmt.Printf("Found %d commodity(ies) to map:\n\n", len(candidates))

	for _, c := range candidates {
		fmt.Printf("  %s: %s\n", c.Annex1Code, c.Annex1Name)
		fmt.Printf("    -> crop %d (%s)\n", c.CropID, c.CropName)
		fmt.Println()
	}

	if *dryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		return
	}

	fmt.Println("=== Executing mapping ===")
	fmt.Println()

	mapped := 0
	for _, c := range candidates {
		if err := mapCommodity(db, c); err != nil {
			fmt.Fprintf(os.Stderr, "Error mapping %s: %v\n", c.Annex1Code, err)
			continue
		}

		fmt.Printf("✓ Mapped %s -> %s\n", c.Annex1Code, c.CropName)
		mapped++
	}

	fmt.Printf("\n=== Mapping complete: %d/%d commodities mapped ===\n", mapped, len(candidates))
}

func findCandidates(db *sql.DB) ([]Candidate, error) {
	query := `
		SELECT r.reg396_id, r.annex1_code, r.annex1_name, c.crop_id, c.common_name_en
		FROM reg396_commodities r
		JOIN crops placeholder ON placeholder.crop_id = r.crop_id
		JOIN crops c ON LOWER(c.common_name_en) = LOWER(r.annex1_name)
		WHERE placeholder.common_name_en = ?
		  AND c.crop_id != placeholder.crop_id
		ORDER BY r.annex1_code
	`

	rows, err := db.Query(query, placeholderCrop)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		err := rows.Scan(&c.Reg396ID, &c.Annex1Code, &c.Annex1Name, &c.CropID, &c.CropName)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func mapCommodity(db *sql.DB, c Candidate) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("UPDATE reg396_commodities SET crop_id = ? WHERE reg396_id = ?", c.CropID, c.Reg396ID)
	if err != nil {
		return fmt.Errorf("failed to update reg396 row: %w", err)
	}

	// PRIMo rows share the commodity code
	_, err = tx.Exec("UPDATE primo_commodities SET crop_id = ? WHERE primo_code = ?", c.CropID, c.Annex1Code)
	if err != nil {
		return fmt.Errorf("failed to update primo rows: %w", err)
	}

	return tx.Commit()
}
