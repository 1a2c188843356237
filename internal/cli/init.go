package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the crop database and install the schema",
		Long: `Create the crop database file and install the schema.

With --seed, the FOCUS reference rows are loaded as well: scenario types,
the D1-D6/R1-R4 surface-water scenarios, the groundwater locations, and the
SWASH crop catalogue with its crop registry entries. Importers match against
these rows, so seed before the first import unless the rows come from
elsewhere.

Both the schema and the seed are idempotent; running init on an existing
database is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			seed, _ := cmd.Flags().GetBool("seed")

			path := loadConfig().ResolveDBPath(dbPath)
			fmt.Printf("Initializing crop database at %s\n", path)

			database, err := db.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			defer database.Close()

			fmt.Println("✓ Schema installed")

			if seed {
				if err := db.SeedReferenceData(database); err != nil {
					return fmt.Errorf("failed to seed reference data: %w", err)
				}
				fmt.Println("✓ FOCUS reference data seeded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  cropdb import swash --csv-dir <mdb-export dir>")
			fmt.Println("  cropdb import interception")
			fmt.Println("  cropdb status")
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().Bool("seed", false, "load the FOCUS reference rows after installing the schema")
	return cmd
}
