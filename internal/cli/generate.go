package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rdatadao/rdat-registry/internal/cli/render"
	"github.com/rdatadao/rdat-registry/internal/usecase"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		dryRun  bool
		initCfg bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate contract bindings from Foundry artifacts",
		Long: `Generate contract bindings as configured in bindgen.toml.

The foundry plugin reads the included artifacts from the project's out
directory. The abigen plugin writes Go bindings to the configured out file
and the abi plugin writes one JSON file per contract.`,
		Example: `  rdat generate
  rdat generate --build
  rdat generate --config contracts/bindgen.toml --dry-run
  rdat generate --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if err := requireProject(app); err != nil {
				return err
			}

			if initCfg {
				initResult, err := app.InitBindgen.Run(cmd.Context(), usecase.InitBindgenParams{Force: force})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Wrote "+relPath(app.Config.ProjectRoot, initResult.Path)))
				return nil
			}

			result, err := app.GenerateBindings.Run(cmd.Context(), usecase.GenerateBindingsParams{DryRun: dryRun})
			if err != nil {
				return err
			}

			return render.NewGenerateRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot).Render(result)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Path to the generator config (default bindgen.toml)")
	cmd.Flags().Bool("build", false, "Run forge build before reading artifacts")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render bindings without writing files")
	cmd.Flags().BoolVar(&initCfg, "init", false, "Write a starter generator config and exit")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing config when used with --init")

	return cmd
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
