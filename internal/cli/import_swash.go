package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/adapters/swash"
	"github.com/example/cropdb/internal/ports/primary"
)

// SWASH exports carry fixed file names; mdb-export writes one CSV per table.
const (
	swashCropCSV = "crop.csv"
	swashLinkCSV = "cropscenario.csv"
)

func importSwashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swash",
		Short: "Import the SWASH crop catalogue and crop x scenario matrix",
		Long: `Import SWASH crop parameters and crop x scenario combinations.

CSV mode (--csv-dir) expects ` + swashCropCSV + ` and ` + swashLinkCSV + ` as
exported from the SWASH Access database with mdb-export. Crop rows update
the agronomic columns on focus_crops (BBCH windows, canopy type, root
depth, max LAI); scenario rows link crops to the FOCUS scenarios they run
in. JSON mode (--links-json) reads a hand-maintained crop_scenarios
document and inserts default-run links only.

Names must match the seeded focus_crops and focus_scenarios rows; rows
that do not resolve are skipped and reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvDir, _ := cmd.Flags().GetString("csv-dir")
			linksJSON, _ := cmd.Flags().GetString("links-json")
			apply, _ := cmd.Flags().GetBool("apply")

			if (csvDir == "") == (linksJSON == "") {
				return fmt.Errorf("pass exactly one of --csv-dir or --links-json")
			}

			c, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if linksJSON != "" {
				links, err := swash.ReadLinksJSON(linksJSON)
				if err != nil {
					return fmt.Errorf("failed to read links document: %w", err)
				}
				report, err := c.SwashImport.ImportLinks(cmd.Context(), primary.SwashLinkImportRequest{
					Source: linksJSON,
					Links:  links,
					Apply:  apply,
				})
				if err != nil {
					return fmt.Errorf("failed to import links: %w", err)
				}
				renderReport("Crop x scenario links", report)
				if !apply {
					renderDryRunNotice()
				}
				return nil
			}

			cropPath := filepath.Join(csvDir, swashCropCSV)
			rows, cropIssues, err := swash.ReadCropCSV(cropPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", cropPath, err)
			}
			cropReport, err := c.SwashImport.ImportCropParameters(cmd.Context(), primary.SwashCropImportRequest{
				Source:      cropPath,
				Rows:        rows,
				ParseIssues: cropIssues,
				Apply:       apply,
			})
			if err != nil {
				return fmt.Errorf("failed to import crop parameters: %w", err)
			}
			renderReport("Crop parameters", cropReport)

			linkPath := filepath.Join(csvDir, swashLinkCSV)
			links, linkIssues, err := swash.ReadLinkCSV(linkPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", linkPath, err)
			}
			linkReport, err := c.SwashImport.ImportLinks(cmd.Context(), primary.SwashLinkImportRequest{
				Source:      linkPath,
				Links:       links,
				ParseIssues: linkIssues,
				Apply:       apply,
			})
			if err != nil {
				return fmt.Errorf("failed to import links: %w", err)
			}
			renderReport("Crop x scenario links", linkReport)

			if !apply {
				renderDryRunNotice()
			}
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().String("csv-dir", "", "directory holding "+swashCropCSV+" and "+swashLinkCSV)
	cmd.Flags().String("links-json", "", "crop_scenarios JSON document (alternative to --csv-dir)")
	cmd.Flags().Bool("apply", false, "write changes to the database")
	return cmd
}
