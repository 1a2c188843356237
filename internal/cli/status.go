package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show table counts, unmapped commodities and recent imports",
		Long: `Show a health summary of the crop database.

Lists the row count of every domain table, the commodities still attached
to the placeholder crop (imported from PRIMo but not yet mapped), and the
most recent import runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			status, err := c.Status.GetStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			fmt.Println("Table counts:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, tc := range status.TableCounts {
				fmt.Fprintf(w, "  %s\t%d\n", tc.Table, tc.Rows)
			}
			w.Flush()

			fmt.Println()
			fmt.Printf("Commodities on the placeholder crop: %d reg396, %d primo\n",
				status.UnmappedReg396, status.UnmappedPrimo)

			if len(status.RecentRuns) > 0 {
				fmt.Println()
				fmt.Println("Recent imports:")
				w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "  RUN\tTOOL\tUPSERTED\tUPDATED\tSKIPPED\tISSUES\tFINISHED")
				for _, run := range status.RecentRuns {
					fmt.Fprintf(w, "  %s\t%s\t%d\t%d\t%d\t%d\t%s\n",
						shortID(run.RunID), run.Tool, run.Upserted, run.Updated, run.Skipped, run.Issues, run.FinishedAt)
				}
				w.Flush()
			}
			return nil
		},
	}
	addDBFlag(cmd)
	return cmd
}
