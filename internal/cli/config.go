package cli

import (
	"fmt"
	"io"

	"github.com/pkglist-dev/pkglist/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.pkglist/config.yaml.

Keys: command, log_level, profiles_file. Each can also be set through the
matching PKGLIST_ environment variable (e.g. PKGLIST_COMMAND).`,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print one setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return &config.UnknownKeyError{Key: args[0]}
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change one setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (saved to %s)\n", args[0], args[1], config.FilePath())
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every setting with its effective value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listSettings(cmd.OutOrStdout())
	},
}

func listSettings(w io.Writer) {
	for _, key := range config.Keys {
		fmt.Fprintf(w, "%s = %s\n", key, config.Get(key))
	}
}
