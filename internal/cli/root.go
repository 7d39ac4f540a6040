package cli

import (
	"errors"

	"github.com/pkglist-dev/pkglist/internal/branding"
	"github.com/pkglist-dev/pkglist/internal/config"
	"github.com/pkglist-dev/pkglist/internal/logging"
	"github.com/pkglist-dev/pkglist/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` resolves the project or solution to inspect, checks that the
requested listing options can be combined, and hands the work to the .NET
package listing command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := config.LogLevel()
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		return logging.Setup(cmd.ErrOrStderr(), level, verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	var exitErr *runner.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The external command reports its own failures.
		logging.Default().Error(err.Error())
	}
	return err
}
