package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/adapters/primo"
	"github.com/example/cropdb/internal/ports/primary"
)

func importPrimoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primo",
		Short: "Import the commodity list from an EFSA PRIMo workbook",
		Long: `Import Annex I and PRIMo commodity rows from an EFSA PRIMo workbook.

Rows come from the 'Commodity list' sheet, columns A-D. Codes Excel stored
as numbers are left-padded back to seven digits; the hierarchy level and
parent code are derived from the trailing-zero pattern. All commodities land
under the 'Unknown (unmapped)' placeholder crop pending manual mapping
('cropdb status' counts what is left).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			xlsxPath, _ := cmd.Flags().GetString("xlsx")
			version, _ := cmd.Flags().GetString("version")
			apply, _ := cmd.Flags().GetBool("apply")

			rows, err := primo.ReadCommodityList(xlsxPath)
			if err != nil {
				return fmt.Errorf("failed to read workbook: %w", err)
			}

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.PrimoImport.ImportCommodities(cmd.Context(), primary.PrimoImportRequest{
				Source:  xlsxPath,
				Version: version,
				Rows:    rows,
				Apply:   apply,
			})
			if err != nil {
				return fmt.Errorf("failed to import commodities: %w", err)
			}

			if len(report.Preview) > 0 {
				fmt.Println("First rows as parsed:")
				for _, line := range report.Preview {
					fmt.Printf("  %s\n", line)
				}
				fmt.Println()
			}

			fmt.Printf("Parsed %d Annex I commodities, %d with a PRIMo entry\n",
				report.Reg396Parsed, report.PrimoParsed)
			renderReport("Commodities", &report.ImportReport)
			if report.Applied {
				fmt.Printf("    reg396_commodities: %d inserted, primo_commodities: %d inserted\n",
					report.Reg396Inserted, report.PrimoInserted)
				fmt.Println()
				fmt.Println("Next steps:")
				fmt.Println("  map placeholder commodities to crops, then check 'cropdb status'")
			}

			if !apply {
				renderDryRunNotice()
			}
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().String("xlsx", "", "PRIMo workbook (xlsx)")
	cmd.Flags().String("version", "Rev 3.1", "PRIMo version label stored with each row")
	cmd.Flags().Bool("apply", false, "write changes to the database")
	cmd.MarkFlagRequired("xlsx")
	return cmd
}
