package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rfilter/internal/app"
	"github.com/kk-code-lab/rfilter/internal/config"
	"github.com/kk-code-lab/rfilter/internal/history"
	"github.com/kk-code-lab/rfilter/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	cfgFile  string
	filter   string
	invert   bool
	printDir bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "rfilter [directory]",
		Short: "Browse a directory through regex and glob filters",
		Long: `rfilter lists a directory and narrows it with filters:

  =   local filter, applied while typing (Enter keeps it, Esc restores)
  :   name filter, a regex or {glob} that hides or shows matches
  F   hide the selected entries
  R/U remove and restore the name filters

Configuration is read from $XDG_CONFIG_HOME/rfilter/config.yaml and
RFILTER_* environment variables.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts.cfgFile)
			if err != nil {
				return err
			}

			log, err := logger.New(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
			if err != nil {
				return err
			}
			defer func() { _ = log.Close() }()

			dir := ""
			if len(args) == 1 {
				if dir, err = filepath.Abs(args[0]); err != nil {
					return err
				}
			}
			return run(logger.WithLogger(cmd.Context(), log.Logger), cmd, cfg, dir, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/rfilter/config.yaml)")
	flags.StringVarP(&opts.filter, "filter", "f", "", "initial name filter")
	flags.BoolVarP(&opts.invert, "invert", "i", false, "flip the meaning of the initial name filter")
	flags.BoolVar(&opts.printDir, "print-dir", false, "print the last visited directory on exit")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("ignore-case", false, "match filters case-insensitively")
	flags.Bool("watch", true, "reload the listing when the directory changes")

	return rootCmd
}

// flagKeys maps command line flags to the config keys they override.
var flagKeys = map[string]string{
	"log-file":    "logging.file",
	"log-level":   "logging.level",
	"ignore-case": "filter.ignore_case",
	"watch":       "view.watch",
}

// loadConfig merges defaults, the config file, the environment and the
// flags that were set explicitly, in increasing precedence.
func loadConfig(cmd *cobra.Command, cfgFile string) (*config.Config, error) {
	v, err := config.New(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func run(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dir string, opts rootOptions) error {
	log := logger.FromContext(ctx)

	hist, err := history.Open(config.HistoryFile(), cfg.Filter.HistorySize, log.WithName("history"))
	if err != nil {
		// A broken history file should not keep the browser from starting.
		log.Error(err, "filter history disabled", "path", config.HistoryFile())
		hist = nil
	}

	appOpts := apppkg.Options{
		Path:         dir,
		Settings:     cfg.Settings(),
		Logger:       log,
		Watch:        cfg.View.Watch,
		ManualFilter: opts.filter,
		Invert:       opts.invert,
	}
	if hist != nil {
		appOpts.History = hist
	}

	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(appOpts)
	if err != nil {
		return fmt.Errorf("cannot start: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	if opts.printDir {
		fmt.Fprintln(cmd.OutOrStdout(), app.CurrentPath())
	}
	return nil
}
