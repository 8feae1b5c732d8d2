package main

import (
	plog "github.com/phuslu/log"
	"github.com/spf13/cobra"
)

// app holds the global flags and the state derived from them before an
// operation runs.
type app struct {
	configPath string
	input      string
	format     string
	path       string
	output     string
	verbose    bool

	seed   int64
	seeded bool
	log    plog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "underz",
		Short: "Functional collection operations over JSON and YAML documents",
		Long: `underz applies the underz collection algorithms to a JSON or YAML
document read from a file or stdin and prints the result.

Use --path to narrow the document with a gjson path before the operation
runs, and --config to load defaults from a YAML file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML file with default settings")
	flags.StringVarP(&a.input, "input", "i", "", "input file (default stdin)")
	flags.StringVar(&a.format, "format", formatJSON, "input format: json or yaml")
	flags.StringVar(&a.path, "path", "", "gjson path selecting the part of the document to operate on")
	flags.StringVar(&a.output, "output", formatJSON, "output format: json or yaml")
	flags.BoolVar(&a.verbose, "verbose", false, "log debug output to stderr")

	for _, op := range operations() {
		root.AddCommand(op.command(a))
	}
	root.AddCommand(newListCmd())
	return root
}

// prepare merges the config file under the flags and sets up logging.
func (a *app) prepare(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := readConfigFile(a.configPath)
		if err != nil {
			return err
		}
		a.apply(cmd, cfg)
	}
	if cmd.Flags().Changed("seed") {
		a.seeded = true
	}

	level := plog.InfoLevel
	if a.verbose {
		level = plog.DebugLevel
	}
	a.log = plog.Logger{
		Level:      level,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &plog.IOWriter{Writer: cmd.ErrOrStderr()},
	}
	a.log.Debug().Str("command", cmd.Name()).Str("format", a.format).Str("output", a.output).Msg("starting")
	return nil
}

// apply fills every setting the command line left unset from cfg.
func (a *app) apply(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if cfg.Format != "" && !flags.Changed("format") {
		a.format = cfg.Format
	}
	if cfg.Output != "" && !flags.Changed("output") {
		a.output = cfg.Output
	}
	if cfg.Verbose && !flags.Changed("verbose") {
		a.verbose = true
	}
	if cfg.Seed != nil && !flags.Changed("seed") {
		a.seed = *cfg.Seed
		a.seeded = true
	}
}
