package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkglist-dev/pkglist/internal/config"
	"github.com/pkglist-dev/pkglist/internal/options"
	"github.com/pkglist-dev/pkglist/internal/profile"
	"github.com/spf13/cobra"
)

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileValidateCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect saved flag profiles",
	Long: `Inspect the flag profiles used by "list --profile".

Profiles live in ~/.pkglist/profiles.yaml unless the profiles_file setting
points elsewhere.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := profile.Load(config.ProfilesFile())
		if err != nil {
			return err
		}
		if len(file.Profiles) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No profiles defined in %s\n", config.ProfilesFile())
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tOPTIONS\tDESCRIPTION")
		for _, p := range file.Profiles {
			desc := p.Description
			if desc == "" {
				desc = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, strings.Join(p.Flags, " "), desc)
		}
		return w.Flush()
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the options a profile forwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := loadProfileOptions(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(flags.Forwarded(), " "))
		return nil
	},
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a profiles file",
	Long: `Check a profiles file against the profile schema, then check that every
profile names known options in a valid combination.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProfilesFile()
		if len(args) == 1 {
			path = args[0]
		}
		return validateProfilesFile(cmd, path)
	},
}

func validateProfilesFile(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("profiles file %s: %w", path, err)
	}

	file, err := profile.Load(path)
	if err != nil {
		var invalid *profile.InvalidFileError
		if errors.As(err, &invalid) {
			for _, issue := range invalid.Issues {
				fmt.Fprintf(out, "  [FAIL] %s\n", issue)
			}
		}
		return err
	}

	failed := 0
	for _, p := range file.Profiles {
		if err := checkProfile(p); err != nil {
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", p.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", p.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d profile(s) invalid", failed, len(file.Profiles))
	}
	fmt.Fprintf(out, "%s is valid (%d profile(s))\n", path, len(file.Profiles))
	return nil
}

// checkProfile reports whether a profile names known options with valid
// values and no conflicting pair. Dependent options may rely on a gating
// option given on the command line, so they are not checked here.
func checkProfile(p profile.Profile) error {
	flags, err := p.FlagSet()
	if err != nil {
		return err
	}
	return options.ValidatePartial(flags)
}
