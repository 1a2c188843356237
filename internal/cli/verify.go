package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/cropdb/internal/config"
	"github.com/example/cropdb/internal/ports/primary"
	"github.com/example/cropdb/internal/wire"
)

// VerifyCmd returns the verify command
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check stored reference data against external sources",
	}
	cmd.AddCommand(verifyEppoCmd())
	return cmd
}

func verifyEppoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eppo",
		Short: "Verify stored EPPO codes against the EPPO global database",
		Long: `Verify every stored EPPO code against the EPPO global database API.

For each code the preferred English name is fetched and compared to the
stored name (case-insensitively). Mismatches queue a correction; --apply
writes the corrections back, refreshing the crop's scientific name where it
is still empty. Per-code API failures are reported and never stop the run.

The API requires a token (register at https://data.eppo.int). Resolution
order: --token, then ` + config.EnvEppoToken + ` (a local .env file is
loaded), then the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			token, _ := cmd.Flags().GetString("token")
			baseURL, _ := cmd.Flags().GetString("base-url")
			apply, _ := cmd.Flags().GetBool("apply")
			delay, _ := cmd.Flags().GetDuration("delay")
			limit, _ := cmd.Flags().GetInt("limit")

			cfg := loadConfig()
			resolvedToken := cfg.ResolveEppoToken(token)
			if resolvedToken == "" {
				return fmt.Errorf("no EPPO API token: pass --token or set %s", config.EnvEppoToken)
			}

			c, err := wire.Build(wire.Options{
				DBPath:      cfg.ResolveDBPath(dbPath),
				EppoBaseURL: cfg.ResolveEppoBaseURL(baseURL, ""),
				EppoToken:   resolvedToken,
			})
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.EppoVerify.VerifyCodes(cmd.Context(), primary.VerifyEppoRequest{
				Apply: apply,
				Limit: limit,
				Delay: delay,
			})
			if err != nil {
				return fmt.Errorf("failed to verify EPPO codes: %w", err)
			}

			fmt.Println()
			fmt.Printf("Checked %d codes: %d matched, %d mismatched, %d errors\n",
				report.Checked, report.Matched, len(report.Corrections), len(report.Issues))

			if report.Applied && report.RunID != "" {
				fmt.Printf("✓ Applied %d name corrections (run %s)\n", len(report.Corrections), shortID(report.RunID))
			} else if !apply && len(report.Corrections) > 0 {
				renderDryRunNotice()
			}
			return nil
		},
	}
	addDBFlag(cmd)
	cmd.Flags().String("token", "", "EPPO API token (overrides "+config.EnvEppoToken+")")
	cmd.Flags().String("base-url", "", "EPPO API base URL (override for testing)")
	cmd.Flags().Bool("apply", false, "write queued name corrections to the database")
	cmd.Flags().Duration("delay", 300*time.Millisecond, "pause between API calls")
	cmd.Flags().Int("limit", 0, "stop after this many codes (0 checks all)")
	return cmd
}
