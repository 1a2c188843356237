package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/ports/primary"
)

func importInterceptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interception",
		Short: "Load the built-in EFSA crop interception table",
		Long: `Load the built-in crop interception step function.

The table maps (SWASH crop, BBCH growth stage) to the fraction of spray
intercepted by the canopy, compiled from the EFSA 2020 repair action.
Stages whose value has not been filled in yet are counted as stubs and
skipped; crops missing from focus_crops are reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply, _ := cmd.Flags().GetBool("apply")

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.Interception.ImportInterception(cmd.Context(), primary.InterceptionImportRequest{
				Apply: apply,
			})
			if err != nil {
				return fmt.Errorf("failed to import interception values: %w", err)
			}

			renderReport("Crop interception", &report.ImportReport)
			if report.Stubs > 0 {
				fmt.Printf("    %d stages still lack a value in the built-in table\n", report.Stubs)
			}
			if len(report.CropsNotFound) > 0 {
				fmt.Printf("    missing from focus_crops: %s\n", strings.Join(report.CropsNotFound, ", "))
			}

			if !apply {
				renderDryRunNotice()
			}
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().Bool("apply", false, "write changes to the database")
	return cmd
}
