package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/agenthands/nlox/pkg/config"
	"github.com/agenthands/nlox/pkg/logging"
	"github.com/agenthands/nlox/pkg/runner"
)

// Exit codes follow sysexits(3).
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitDataErr = 65
)

type options struct {
	cfgFile   string
	envFile   string
	mode      string
	logLevel  string
	logFormat string
	noColor   bool
}

// NewRootCmd builds the nlox command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "nlox [script]",
		Short: "Scan and parse nlox source",
		Long: `nlox runs the front end of the nlox scripting language.

With a script argument the file is scanned (and parsed in ast mode) and the
result is printed. Without arguments an interactive prompt reads one line at
a time; an empty line or end of input leaves the prompt.

Modes:
  tokens - print one token per line
  ast    - parse one expression and print it in prefix form`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with NLOX_* variables")
	flags.StringVar(&opts.mode, "mode", "", "output mode: tokens or ast")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured diagnostics")

	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	PrintError(root, err)
	return err
}

// PrintError writes err to the command's error stream. Lexical and syntax
// errors are skipped because their diagnostics were already printed.
func PrintError(c *cobra.Command, err error) {
	if err == nil || errors.Is(err, runner.ErrLexical) || errors.Is(err, runner.ErrSyntax) {
		return
	}
	c.PrintErrln("Error:", err)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, runner.ErrLexical), errors.Is(err, runner.ErrSyntax):
		return ExitDataErr
	default:
		return ExitFailure
	}
}

func runRoot(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log, cmd.ErrOrStderr())
	r := runner.New(cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if len(args) == 1 {
		return r.ExecuteFile(args[0])
	}
	if err := r.Prompt(cmd.Context(), cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadConfig layers defaults, the config file, the environment and flags, in that order.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return cfg, err
		}
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = opts.mode
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if opts.noColor {
		cfg.Color = false
	}
	return cfg, cfg.Validate()
}
