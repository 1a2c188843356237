package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/cli"
	"github.com/example/cropdb/internal/version"
)

func main() {
	// Optional .env carrying EPPO credentials and the database path
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "cropdb",
		Short:   "cropdb - crop and pesticide-exposure reference database",
		Version: version.String(),
		Long: `cropdb maintains a SQLite reference database of crops, EPPO codes,
FOCUS surface-water scenarios and EU commodity lists, populated from
regulatory sources: the EPPO global database API, FOCUS/SWASH exports and
EFSA PRIMo workbooks.

Importers preview by default and write only with --apply; applied runs are
recorded in an audit trail.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.VerifyCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.RunsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
