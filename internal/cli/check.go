package cli

import (
	"fmt"

	"github.com/rdatadao/rdat-registry/internal/cli/render"
	"github.com/rdatadao/rdat-registry/internal/domain/models"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [chain]",
		Short: "Verify that recorded addresses hold contract code",
		Long: `Connect to a chain and check that every recorded address has code.

The RPC endpoint is the chain default, overridden by foundry.toml
[rpc_endpoints] and then by --rpc. Contracts that are not deployed yet are
reported as pending and do not fail the check.`,
		Example: `  rdat check vanaMoksha
  rdat check 84532 --rpc http://localhost:8545`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CheckDeploymentsParams{}
			if len(args) > 0 {
				params.Chain = args[0]
			}

			result, err := app.CheckDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := render.NewCheckRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}

			if !result.Healthy() {
				failed := result.Count(models.StatusNoCode) + result.Count(models.StatusError)
				return fmt.Errorf("%d recorded contracts failed the check", failed)
			}
			return nil
		},
	}

	cmd.Flags().String("rpc", "", "RPC URL to use instead of the configured endpoint")

	return cmd
}
