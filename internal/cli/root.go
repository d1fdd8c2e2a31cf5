package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rdatadao/rdat-registry/internal/app"
	"github.com/rdatadao/rdat-registry/internal/config"
	"github.com/rdatadao/rdat-registry/internal/domain"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// commands that never need the app
var skipInit = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// NewRootCmd creates the root command of the rdat CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rdat",
		Short: "Contract registry for the RDAT token system",
		Long: `rdat reads the deployed RDAT contract addresses and bundled ABIs,
checks recorded deployments on-chain and generates contract bindings
from Foundry artifacts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipInit[cmd.Name()] {
				return nil
			}

			appInstance, err := initApp(cmd)
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (chain ID or name, e.g. vanaMoksha)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "registry",
		Title: "Registry Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tooling",
		Title: "Tooling Commands",
	})

	// Registry commands
	addressesCmd := NewAddressesCmd()
	addressesCmd.GroupID = "registry"
	rootCmd.AddCommand(addressesCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "registry"
	rootCmd.AddCommand(networksCmd)

	abiCmd := NewABICmd()
	abiCmd.GroupID = "registry"
	rootCmd.AddCommand(abiCmd)

	// Tooling commands
	generateCmd := NewGenerateCmd()
	generateCmd.GroupID = "tooling"
	rootCmd.AddCommand(generateCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "tooling"
	rootCmd.AddCommand(checkCmd)

	auditCmd := NewAuditCmd()
	auditCmd.GroupID = "tooling"
	rootCmd.AddCommand(auditCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initApp resolves the project root and wires the app for cmd
func initApp(cmd *cobra.Command) (*app.App, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// Registry commands work outside a Foundry project
	projectRoot, err := config.FindProjectRoot(cwd)
	if err != nil && !errors.Is(err, domain.ErrNoProject) {
		return nil, err
	}

	v := config.SetupViper(projectRoot, cmd)

	appInstance, err := app.InitApp(v)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return appInstance, nil
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// requireProject fails commands that need foundry.toml
func requireProject(a *app.App) error {
	if !a.Config.HasProject {
		return domain.ErrNoProject
	}
	return nil
}
