package cli

import (
	"fmt"

	"github.com/rdatadao/rdat-registry/internal/cli/render"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command
func NewAuditCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check the address tables and ABIs for consistency",
		Long: `Report problems in the bundled registry data without touching the network:
contracts without a bundled ABI, malformed or non-checksummed addresses,
addresses recorded under more than one name and unreferenced ABIs.

Findings never fail the command unless --strict is set. With --strict every
finding except malformed addresses is raised from warning to error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AuditRegistry.Run(cmd.Context(), usecase.AuditRegistryParams{Strict: strict})
			if err != nil {
				return err
			}

			if err := render.NewAuditRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}

			if strict && result.HasErrors() {
				return fmt.Errorf("audit found %d errors", result.ErrorCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat every finding as an error and exit non-zero when any is reported")

	return cmd
}
