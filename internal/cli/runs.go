package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// RunsCmd returns the runs command
func RunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the import audit trail",
		Long: `List recorded import runs, newest first.

Every applied import writes one row per tool invocation with its counts and
timestamps; previews are never recorded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			runs, err := c.RunLog.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			if len(runs) == 0 {
				fmt.Println("No import runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tTOOL\tSOURCE\tUPSERTED\tUPDATED\tSKIPPED\tISSUES\tSTARTED")
			fmt.Fprintln(w, "---\t----\t------\t--------\t-------\t-------\t------\t-------")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
					shortID(run.RunID), run.Tool, truncate(run.Source, 40),
					run.Upserted, run.Updated, run.Skipped, run.Issues, run.StartedAt)
			}
			w.Flush()
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().Int("limit", 20, "maximum runs to list")
	return cmd
}
