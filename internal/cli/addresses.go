package cli

import (
	"github.com/rdatadao/rdat-registry/internal/cli/render"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/spf13/cobra"
)

// NewAddressesCmd creates the addresses command
func NewAddressesCmd() *cobra.Command {
	var (
		all      bool
		deployed bool
		format   string
	)

	cmd := &cobra.Command{
		Use:     "addresses [chain]",
		Aliases: []string{"addr", "ls"},
		Short:   "Show deployed contract addresses",
		Long: `Show the contract address table of a chain.

The chain is a chain ID (14800) or a name (vanaMoksha). Without a chain the
--network flag is used, and otherwise an interactive selector is shown.
Entries without an address have not been deployed to that chain yet.`,
		Example: `  rdat addresses vanaMoksha
  rdat addresses 84532 --format json
  rdat addresses --all --deployed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			outFormat, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			params := usecase.ShowAddressesParams{
				All:          all,
				DeployedOnly: deployed,
			}
			if len(args) > 0 {
				params.Chain = args[0]
			}

			result, err := app.ShowAddresses.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewAddressesRenderer(cmd.OutOrStdout(), outFormat).Render(result)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every chain")
	cmd.Flags().BoolVar(&deployed, "deployed", false, "Hide contracts that are not deployed yet")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")

	return cmd
}
