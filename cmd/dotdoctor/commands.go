package dotdoctor

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/dotdoctor/internal/version"
	"github.com/arthur-debert/dotdoctor/pkg/cobrax/topics"
	"github.com/arthur-debert/dotdoctor/pkg/config"
	"github.com/arthur-debert/dotdoctor/pkg/doctor"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/style"
	"github.com/arthur-debert/dotdoctor/pkg/types"
	"github.com/arthur-debert/dotdoctor/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity   int
	root        string
	configFile  string
	only        []string
	format      string
	timeout     string
	concurrency int
}

// loadOptions maps the flags onto the configuration layers. Only flags
// set on the command line become overrides.
func (o *globalOptions) loadOptions(cmd *cobra.Command) config.LoadOptions {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("timeout") {
		overrides["engine.timeout"] = o.timeout
	}
	if cmd.Flags().Changed("concurrency") {
		overrides["engine.concurrency"] = o.concurrency
	}
	return config.LoadOptions{
		Root:       o.root,
		ConfigFile: o.configFile,
		Overrides:  overrides,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotdoctor",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			runID := logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Str("run", runID).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.root, "root", "", MsgFlagRoot)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringSliceVar(&opts.only, "only", nil, MsgFlagOnly)
	flags.StringVar(&opts.format, "format", ui.FormatAuto.String(), MsgFlagFormat)
	flags.StringVar(&opts.timeout, "timeout", "", MsgFlagTimeout)
	flags.IntVarP(&opts.concurrency, "concurrency", "j", 0, MsgFlagConcurrency)

	_ = rootCmd.RegisterFlagCompletionFunc("only", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return types.Categories, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(stdoutIsTerminal()),
		}
		if _, err := topics.Initialize(rootCmd, sub, topicOpts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
}

// runCheck loads the configuration, runs the plan and prints the report.
// A report with warnings or failures is returned as an ExitError.
func runCheck(cmd *cobra.Command, opts *globalOptions) error {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	only, err := doctor.ParseCategories(opts.only)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.loadOptions(cmd))
	if err != nil {
		return err
	}

	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "diagnose")
	rep, err := doctor.Diagnose(cmd.Context(), doctor.PlanOptions{
		Config: cfg,
		Runner: runner.New(),
		Only:   only,
	})
	done()
	if err != nil {
		return err
	}

	renderOpts := style.RenderOptions{
		Color:   ui.UseColor(format, os.Stdout),
		Verbose: opts.verbosity >= 1,
	}
	if err := style.RenderReport(cmd.OutOrStdout(), rep, renderOpts); err != nil {
		return err
	}

	logger.Info().
		Int("passed", rep.Passed).
		Int("warned", rep.Warned).
		Int("failed", rep.Failed).
		Int("exitCode", int(rep.ExitCode)).
		Msg("Report written")

	if rep.ExitCode != types.ExitOK {
		return &ExitError{Code: int(rep.ExitCode)}
	}
	return nil
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.loadOptions(cmd))
			if err != nil {
				return err
			}
			content, err := config.GenerateConfigContent(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// newTopicsCmd is a shortcut for "help topics"
func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Name() != "help" {
				return fmt.Errorf("help command not found")
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
