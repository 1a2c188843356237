package cli

import (
	"github.com/spf13/cobra"
)

// ImportCmd returns the import command tree
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import external datasets into the crop database",
		Long: `Import external datasets into the crop database.

Every importer previews by default and writes only with --apply. Records
whose natural keys do not resolve are skipped and reported individually;
a bad record never aborts the batch. Applied runs are recorded in the
import_runs audit trail (see 'cropdb runs').`,
	}
	cmd.AddCommand(importFocusSWCmd())
	cmd.AddCommand(importInterceptionCmd())
	cmd.AddCommand(importPrimoCmd())
	cmd.AddCommand(importSwashCmd())
	return cmd
}
