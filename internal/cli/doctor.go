package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkglist-dev/pkglist/internal/config"
	"github.com/pkglist-dev/pkglist/internal/options"
	"github.com/pkglist-dev/pkglist/internal/profile"
	"github.com/pkglist-dev/pkglist/internal/sdk"
	"github.com/spf13/cobra"
)

var (
	checkCommand  bool
	checkSDK      bool
	checkConfig   bool
	checkProfiles bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkCommand, "check-command", false, "Verify the external listing command is on PATH")
	doctorCmd.Flags().BoolVar(&checkSDK, "check-sdk", false, "Verify the .NET SDK supports every query mode")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Show the config file and effective settings")
	doctorCmd.Flags().BoolVar(&checkProfiles, "check-profiles", false, "Validate the profiles file")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the pkglist environment",
	Long:  `Run diagnostic checks on the external command, the .NET SDK, settings and profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := !(checkCommand || checkSDK || checkConfig || checkProfiles)
		out := cmd.OutOrStdout()
		problems := 0

		if all || checkCommand {
			problems += runCommandCheck(out)
		}
		if all || checkSDK {
			problems += runSDKCheck(cmd.Context(), out)
		}
		if all || checkConfig {
			runConfigCheck(out)
		}
		if all || checkProfiles {
			problems += runProfilesCheck(out, config.ProfilesFile())
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

func runCommandCheck(w io.Writer) int {
	fmt.Fprintln(w, "External command:")
	command, err := config.Command()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	path, err := exec.LookPath(command[0])
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", command[0])
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", command[0], path)
	return 0
}

func runSDKCheck(ctx context.Context, w io.Writer) int {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(w, "\n.NET SDK:")
	command, err := config.Command()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	version, err := sdk.Detect(ctx, command)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] SDK %s\n", version)
	return reportSDKSupport(w, version)
}

// reportSDKSupport prints one line per gating option and returns how many
// the SDK cannot run.
func reportSDKSupport(w io.Writer, version string) int {
	unsupported := 0
	for _, opt := range options.GatingFlags {
		ok, err := sdk.Supports(version, opt)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] --%s: %v\n", opt, err)
			unsupported++
			continue
		}
		if !ok {
			minimum, _ := sdk.MinimumFor(opt)
			fmt.Fprintf(w, "  [WARN] --%s needs SDK %s or later\n", opt, minimum)
			unsupported++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] --%s supported\n", opt)
	}
	return unsupported
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "\nSettings:")
	if _, err := os.Stat(config.FilePath()); err != nil {
		fmt.Fprintf(w, "  [ -- ] %s not created yet (defaults in use)\n", config.FilePath())
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", config.FilePath())
	}
	for _, key := range config.Keys {
		fmt.Fprintf(w, "         %s = %s\n", key, config.Get(key))
	}
}

func runProfilesCheck(w io.Writer, path string) int {
	fmt.Fprintln(w, "\nProfiles:")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [ -- ] %s not found (no profiles)\n", path)
		return 0
	}

	file, err := profile.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}

	problems := 0
	for _, p := range file.Profiles {
		if err := checkProfile(p); err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", p.Name, err)
			problems++
		}
	}
	if problems == 0 {
		fmt.Fprintf(w, "  [ OK ] %d profile(s) in %s\n", len(file.Profiles), path)
	}
	return problems
}
