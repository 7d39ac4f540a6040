package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/pkglist-dev/pkglist/internal/branding"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	Command string `json:"command"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, _ := cmd.Flags().GetBool("short")
			asJSON, _ := cmd.Flags().GetBool("json")
			return printVersion(cmd.OutOrStdout(), currentVersion(), short, asJSON)
		},
	}
	cmd.Flags().Bool("short", false, "Print version number only")
	cmd.Flags().Bool("json", false, "Print version info as JSON")
	cmd.MarkFlagsMutuallyExclusive("short", "json")
	return cmd
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func currentVersion() versionInfo {
	return versionInfo{
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
		Go:      runtime.Version(),
		Command: branding.DefaultCommand(),
	}
}

func printVersion(w io.Writer, info versionInfo, short, asJSON bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("encoding version info: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s version %s (commit: %s, built: %s, %s)\n",
		branding.CLIName(), info.Version, info.Commit, info.Date, info.Go)
	return err
}
