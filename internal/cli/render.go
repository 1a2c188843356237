package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/config"
	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/wire"
)

// maxDetailLines caps the per-record lines shown under a summary; the counts
// above them always cover the full batch.
const maxDetailLines = 12

// loadConfig reads the per-project config file, tolerating its absence.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return config.LoadOrDefault(cwd)
}

// buildContainer wires the services against the database selected by the
// --db flag, the environment, or the config file.
func buildContainer(cmd *cobra.Command) (*wire.Container, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	return wire.Build(wire.Options{DBPath: loadConfig().ResolveDBPath(dbPath)})
}

// addDBFlag registers the --db flag shared by every command that touches the
// database.
func addDBFlag(cmd *cobra.Command) {
	cmd.Flags().String("db", "", fmt.Sprintf("database file (default %s, env %s)", config.DefaultDBPath, config.EnvDBPath))
}

// renderReport prints one importer summary with a capped sample of
// per-record detail lines.
func renderReport(label string, r *primary.ImportReport) {
	mark := "•"
	if r.Applied {
		mark = color.New(color.FgHiGreen).Sprint("✓")
	}
	fmt.Printf("%s %s: %d upserted, %d updated, %d skipped, %d issues\n",
		mark, label, r.Upserted, r.Updated, r.Skipped, r.Issues)
	for _, line := range sampleDetails(r.Details) {
		fmt.Printf("    %s\n", line)
	}
	if r.Applied && r.RunID != "" {
		fmt.Printf("    recorded as run %s\n", shortID(r.RunID))
	}
}

func sampleDetails(details []string) []string {
	if len(details) <= maxDetailLines {
		return details
	}
	sample := make([]string, 0, maxDetailLines+1)
	sample = append(sample, details[:maxDetailLines]...)
	sample = append(sample, fmt.Sprintf("... and %d more", len(details)-maxDetailLines))
	return sample
}

// renderDryRunNotice closes every preview invocation.
func renderDryRunNotice() {
	fmt.Println()
	fmt.Println(color.New(color.FgYellow).Sprint("Dry run: nothing was written. Re-run with --apply to write to the database."))
}

// shortID trims a run UUID for display; full IDs stay in the database.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
