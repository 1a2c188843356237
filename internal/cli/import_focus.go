package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/adapters/focusjson"
	"github.com/example/cropdb/internal/ports/primary"
)

func importFocusSWCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus-sw",
		Short: "Import FOCUS surface-water scenario characteristics and irrigation",
		Long: `Import FOCUS surface-water scenario data from JSON documents.

--char-json holds per-scenario weather and soil characteristics keyed by
scenario code; --irr-json holds annual irrigation per crop and scenario.
Records are matched against the seeded focus_scenarios (surface-water type)
and focus_crops rows; unmatched records are skipped and reported. A file
that does not exist is skipped with a notice so partial deliveries import
cleanly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			charPath, _ := cmd.Flags().GetString("char-json")
			irrPath, _ := cmd.Flags().GetString("irr-json")
			apply, _ := cmd.Flags().GetBool("apply")

			if charPath == "" && irrPath == "" {
				return fmt.Errorf("nothing to import: pass --char-json and/or --irr-json")
			}

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			ran := false
			if charPath != "" {
				if _, err := os.Stat(charPath); os.IsNotExist(err) {
					fmt.Printf("Characteristics file not found, skipping: %s\n", charPath)
				} else {
					records, err := focusjson.ParseCharacteristics(charPath)
					if err != nil {
						return fmt.Errorf("failed to parse characteristics: %w", err)
					}
					report, err := c.FocusImport.ImportCharacteristics(cmd.Context(), primary.CharacteristicsImportRequest{
						Source:  charPath,
						Records: records,
						Apply:   apply,
					})
					if err != nil {
						return fmt.Errorf("failed to import characteristics: %w", err)
					}
					renderReport("Scenario characteristics", report)
					ran = true
				}
			}

			if irrPath != "" {
				if _, err := os.Stat(irrPath); os.IsNotExist(err) {
					fmt.Printf("Irrigation file not found, skipping: %s\n", irrPath)
				} else {
					records, err := focusjson.ParseIrrigation(irrPath)
					if err != nil {
						return fmt.Errorf("failed to parse irrigation: %w", err)
					}
					report, err := c.FocusImport.ImportIrrigation(cmd.Context(), primary.IrrigationImportRequest{
						Source:  irrPath,
						Records: records,
						Apply:   apply,
					})
					if err != nil {
						return fmt.Errorf("failed to import irrigation: %w", err)
					}
					renderReport("Crop irrigation", report)
					ran = true
				}
			}

			if ran && !apply {
				renderDryRunNotice()
			}
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().String("char-json", "", "scenario characteristics JSON document")
	cmd.Flags().String("irr-json", "", "crop irrigation JSON document")
	cmd.Flags().Bool("apply", false, "write changes to the database")
	return cmd
}
