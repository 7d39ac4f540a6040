package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkglist-dev/pkglist/internal/command"
	"github.com/pkglist-dev/pkglist/internal/config"
	"github.com/pkglist-dev/pkglist/internal/logging"
	"github.com/pkglist-dev/pkglist/internal/options"
	"github.com/pkglist-dev/pkglist/internal/profile"
	"github.com/pkglist-dev/pkglist/internal/runner"
	"github.com/pkglist-dev/pkglist/internal/target"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [PROJECT | SOLUTION | DIR]",
		Short: "List package references of a project or solution",
		Long: `List the package references of a project or solution.

When a directory is given (the current directory by default), it must contain
exactly one solution file, or no solution file and exactly one project file.

Only one of --outdated, --deprecated and --vulnerable may be used. The options
--include-prerelease, --highest-patch, --highest-minor, --config and --source
need one of them.`,
		Example: `  pkglist list --outdated
  pkglist list src/App/App.csproj --vulnerable --include-transitive
  pkglist list --profile ci-vulnerable --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}

	// Keep command-line order so forwarded options stay in the order given.
	cmd.Flags().SortFlags = false
	registerOptionFlags(cmd.Flags())
	cmd.Flags().String("profile", "", "Apply a saved flag profile before command-line options")
	cmd.Flags().Bool("dry-run", false, "Print the external command instead of running it")
	return cmd
}

// registerOptionFlags adds one flag per forwarded listing option.
func registerOptionFlags(fs *pflag.FlagSet) {
	for _, spec := range options.Registry {
		switch spec.Kind {
		case options.KindBool:
			fs.Bool(spec.Name, false, spec.Usage)
		case options.KindValue:
			fs.String(spec.Name, "", spec.Usage)
		case options.KindMulti:
			fs.StringArray(spec.Name, nil, spec.Usage)
		}
	}
}

// collectOptions builds a FlagSet from the listing options that were set on
// the command line, in the order they were first given. Switches given as
// false are returned in cleared so they can remove a profile's copy.
func collectOptions(fs *pflag.FlagSet) (set *options.FlagSet, cleared []string, err error) {
	set = options.NewFlagSet()
	var visitErr error
	fs.Visit(func(f *pflag.Flag) {
		if visitErr != nil {
			return
		}
		spec, ok := options.Lookup(f.Name)
		if !ok {
			return
		}
		switch spec.Kind {
		case options.KindBool:
			on, err := fs.GetBool(f.Name)
			if err != nil {
				visitErr = err
				return
			}
			if on {
				set.Set(f.Name)
			} else {
				cleared = append(cleared, f.Name)
			}
		case options.KindValue:
			v, err := fs.GetString(f.Name)
			if err != nil {
				visitErr = err
				return
			}
			set.Set(f.Name, v)
		case options.KindMulti:
			vs, err := fs.GetStringArray(f.Name)
			if err != nil {
				visitErr = err
				return
			}
			set.Set(f.Name, vs...)
		}
	})
	if visitErr != nil {
		return nil, nil, fmt.Errorf("reading options: %w", visitErr)
	}
	return set, cleared, nil
}

// loadProfileOptions returns the options of the named profile.
func loadProfileOptions(name string) (*options.FlagSet, error) {
	path := config.ProfilesFile()
	file, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	p, err := file.Find(name)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, path)
	}
	return p.FlagSet()
}

func runList(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	flags, cleared, err := collectOptions(cmd.Flags())
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		base, err := loadProfileOptions(name)
		if err != nil {
			return err
		}
		logging.Default().Debug("applying profile", "profile", name, "options", base.Names())
		flags = options.Merge(base, flags)
		for _, name := range cleared {
			flags.Unset(name)
		}
	}

	resolver := target.NewResolver(target.NewOSFileSystem())
	argv, err := command.Build(resolver, path, flags)
	if err != nil {
		return err
	}

	external, err := config.Command()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	rt := runner.Dispatch(dryRun, external, cmd.OutOrStdout(), cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt)
	defer stop()

	output, err := rt.Run(ctx, argv)
	if err != nil {
		return err
	}
	if output.ExitCode != 0 {
		return &runner.ExitError{Code: output.ExitCode}
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
