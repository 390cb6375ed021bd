// Package neaten is the command line interface of neaten.
package neaten

import (
	"github.com/arthur-debert/neaten/internal/version"
	"github.com/arthur-debert/neaten/pkg/config"
	"github.com/arthur-debert/neaten/pkg/errors"
	"github.com/arthur-debert/neaten/pkg/executor"
	"github.com/arthur-debert/neaten/pkg/filesystem"
	"github.com/arthur-debert/neaten/pkg/logging"
	"github.com/arthur-debert/neaten/pkg/report"
	"github.com/arthur-debert/neaten/pkg/ruleset"
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags of the root command and the settings they
// resolve to
type rootOptions struct {
	configFile  string
	destination string
	kind        string
	patterns    []string
	dryRun      bool
	verbosity   int
	format      string

	settings *config.Settings
	fs       types.FS
}

// NewRootCmd creates the neaten command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "neaten",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownArgs, args)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadSettings(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVarP(&opts.destination, "destination", "d", "", MsgFlagDestination)
	flags.StringVarP(&opts.kind, "kind", "k", "", MsgFlagKind)
	flags.StringSliceVarP(&opts.patterns, "patterns", "p", nil, MsgFlagPatterns)

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	persistent.BoolVar(&opts.dryRun, "dryrun", false, MsgFlagDryRun)
	_ = persistent.MarkHidden("dryrun")
	persistent.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	persistent.StringVar(&opts.format, "format", "", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("kind", fixedCompletions(types.KindFolder.String(), types.KindFile.String()))
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletions("auto", "term", "text", "json"))
	_ = rootCmd.MarkFlagFilename("config", "json")
	_ = rootCmd.MarkFlagDirname("destination")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid flags")
	})

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if tm, err := setupHelpTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		rootCmd.AddCommand(newTopicsCmd(tm))
	}

	return rootCmd
}

// loadSettings merges flags over the settings layers and sets up logging
func (o *rootOptions) loadSettings(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("dry-run") || flags.Changed("dryrun") {
		overrides[config.KeyDryRun] = o.dryRun
	}
	if flags.Changed("format") {
		overrides[config.KeyOutputFormat] = o.format
	}
	if o.verbosity > 0 {
		overrides[config.KeyLoggingVerbosity] = o.verbosity
	}

	settings, err := config.Load(config.Options{Overrides: overrides})
	if err != nil {
		return err
	}
	o.settings = settings

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: settings.Logging.Verbosity,
		LogToFile: settings.Logging.File,
		Console:   cmd.ErrOrStderr(),
	})
	return nil
}

// runClean validates the rules, then executes them
func runClean(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger("cli")
	loader := ruleset.NewLoader(opts.fs, nil)
	dryRun := opts.settings.Run.DryRun

	direct := opts.destination != "" || opts.kind != "" || len(opts.patterns) > 0

	var (
		rules types.RuleSet
		err   error
	)
	switch {
	case opts.configFile != "" && direct:
		return errors.New(errors.ErrInvalidInput, MsgErrExclusive)
	case opts.configFile != "":
		rules, err = loader.FromFile(opts.configFile, ruleset.Options{DryRun: dryRun})
	case direct:
		rules, err = loader.FromInput(ruleset.Input{
			Destination: opts.destination,
			Kind:        opts.kind,
			Patterns:    opts.patterns,
			DryRun:      dryRun,
		})
	default:
		return errors.New(errors.ErrInvalidInput, MsgErrNoInput)
	}
	if err != nil {
		return err
	}

	reporter, err := report.New(opts.settings.Format(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	exec := executor.New(executor.Options{Reporter: reporter, FS: opts.fs})
	summary, runErr := exec.Run(cmd.Context(), rules)
	if err := reporter.Finish(summary); err != nil {
		logger.Warn().Err(err).Msg("Failed to write report")
	}
	if runErr != nil {
		return errors.Wrap(runErr, errors.ErrInternal, "run interrupted")
	}
	return nil
}

func fixedCompletions(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
