package cli

import (
	"fmt"
	"runtime"

	"github.com/rdatadao/rdat-registry/internal/config"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rdat",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rdat version %s (commit %s, built %s, %s)\n",
				config.Version, config.Commit, config.Date, runtime.Version())
		},
	}
}
