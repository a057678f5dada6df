package templater

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/templater/internal/version"
	"github.com/arthur-debert/templater/pkg/commands"
	"github.com/arthur-debert/templater/pkg/config"
	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/filesystem"
	"github.com/arthur-debert/templater/pkg/logging"
	"github.com/arthur-debert/templater/pkg/report"
	"github.com/arthur-debert/templater/pkg/style"
	"github.com/arthur-debert/templater/pkg/tree"
	"github.com/arthur-debert/templater/pkg/types"
)

type rootOptions struct {
	verbosity   int
	from        string
	to          string
	dryRun      bool
	jobs        int
	configFile  string
	printConfig bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:     "templater [flags...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.printConfig {
				return nil
			}
			return validateFlags(args)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			style.Configure(os.Stdout)
			log.Debug().Str("command", cmd.Name()).Strs("flags", args).Msg("Command started")
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeFlags(opts.from, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&opts.from, "from", ".", MsgFlagFrom)
	rootCmd.Flags().StringVar(&opts.to, "to", ".", MsgFlagTo)
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 1, MsgFlagJobs)
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVar(&opts.printConfig, "print-config", false, MsgFlagPrintConfig)

	_ = rootCmd.MarkFlagDirname("from")
	_ = rootCmd.MarkFlagDirname("to")
	_ = rootCmd.MarkFlagFilename("config", "toml")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

func validateFlags(args []string) error {
	if len(args) == 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrNoFlags)
	}
	for _, a := range args {
		if a == "" {
			return errors.New(errors.ErrInvalidInput, MsgErrEmptyFlag)
		}
	}
	return nil
}

// completeFlags offers the flags named by conditions under from that are not
// already on the command line
func completeFlags(from string, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	logging.SetupLogger(0)

	declared, err := declaredFlags(from)
	if err != nil {
		log.Debug().Err(err).Str("from", from).Msg("Flag completion failed")
		return nil, cobra.ShellCompDirectiveError
	}

	given := types.NewFlagSet(args...)
	var out []string
	for _, f := range declared.Sorted() {
		if !given.Has(f) && strings.HasPrefix(f, toComplete) {
			out = append(out, f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func declaredFlags(from string) (types.FlagSet, error) {
	cfg, err := config.Load(config.LoadOptions{SourceRoot: from})
	if err != nil {
		return nil, err
	}
	fsys := filesystem.NewOS()
	files, err := tree.Walk(fsys, from, append(append([]string{}, cfg.Walk.Ignore...), config.RootConfigFile))
	if err != nil {
		return nil, err
	}
	return report.ScanConditions(fsys, from, files)
}

func runRoot(cmd *cobra.Command, args []string, opts rootOptions) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("jobs") {
		overrides["jobs"] = opts.jobs
	}

	cfg, err := config.Load(config.LoadOptions{
		SourceRoot: opts.from,
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	if opts.printConfig {
		out, err := cfg.TOML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if err := style.UseSheet(cfg.Output.Styles); err != nil {
		return fmt.Errorf(MsgErrLoadStyles, err)
	}

	log.Info().
		Str("from", opts.from).
		Str("to", opts.to).
		Bool("dry_run", opts.dryRun).
		Int("jobs", cfg.Jobs).
		Msg("Rendering template tree")

	result, err := commands.RenderTree(cmd.Context(), commands.RenderTreeOptions{
		SourceRoot:  opts.from,
		DestRoot:    opts.to,
		Flags:       args,
		Ignore:      append(append([]string{}, cfg.Walk.Ignore...), config.RootConfigFile),
		FileMode:    cfg.Output.FileMode.Perm(),
		DirMode:     cfg.Output.DirMode.Perm(),
		DryRun:      opts.dryRun,
		Jobs:        cfg.Jobs,
		MaxDistance: cfg.Suggest.MaxDistance,
	})
	if err != nil {
		if errors.IsStructural(err) {
			return err
		}
		return fmt.Errorf(MsgErrRender, opts.from, err)
	}

	return renderResult(cmd.OutOrStdout(), result, opts.verbosity)
}
