package cli

import (
	"github.com/rdatadao/rdat-registry/internal/cli/render"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/spf13/cobra"
)

// NewABICmd creates the abi command
func NewABICmd() *cobra.Command {
	var methods bool

	cmd := &cobra.Command{
		Use:   "abi [name]",
		Short: "List or print bundled ABIs",
		Long: `Without arguments, list the bundled ABIs. With a name, print the ABI
JSON. Address table names such as RDAT resolve to their contract ABI.`,
		Example: `  rdat abi
  rdat abi vRDAT
  rdat abi RDAT --methods`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowABIParams{Summary: methods}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.ShowABI.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewABIRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVarP(&methods, "methods", "m", false, "Print method, event and error signatures instead of JSON")

	return cmd
}
