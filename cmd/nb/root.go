package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanderheijden86/notebook/pkg/config"
	"github.com/vanderheijden86/notebook/pkg/debug"
	"github.com/vanderheijden86/notebook/pkg/navigator"
	"github.com/vanderheijden86/notebook/pkg/notebook"
	"github.com/vanderheijden86/notebook/pkg/translate"
	"github.com/vanderheijden86/notebook/pkg/ui"
	"github.com/vanderheijden86/notebook/pkg/version"
	"github.com/vanderheijden86/notebook/pkg/watcher"
)

// noteWrapWidth is the word-wrap width for markdown-rendered notes.
const noteWrapWidth = 80

type rootOptions struct {
	dir        string
	configPath string
	target     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nb",
		Short: "Keep plain-text notes in notebooks from an interactive menu",
		Long: `nb manages notebooks (directories) of plain-text notes through
interactive menus. Notes can be created, viewed, edited, deleted and
translated.

Configuration is read from ~/.config/nb/config.yaml. Flags override it.
Variables in a .env file in the working directory or next to the config
file are loaded into the environment unless already set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				debug.SetEnabled(true)
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/nb/config.yaml)")

	flags := cmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", "", "notebooks directory (default ~/.local/share/nb/notebooks)")
	flags.StringVarP(&opts.target, "target", "t", "", "translation target language, e.g. es")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging to the log file")

	cmd.AddCommand(newVersionCmd(), newInitCmd(opts))
	return cmd
}

// loadConfig loads .env files, reads the config file and applies flag
// overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvPaths()...); err != nil {
		return config.Config{}, err
	}

	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if dir := strings.TrimSpace(o.dir); dir != "" {
		cfg.BaseDir = dir
	}
	if target := strings.TrimSpace(o.target); target != "" {
		cfg.Translate.TargetLanguage = target
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// run wires the store, translator and prompter and drives the menus until
// the user exits or ctx is cancelled.
func run(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	logger, err := debug.New(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting nb",
		zap.String("version", version.Version),
		zap.String("base_dir", cfg.BaseDir),
		zap.String("provider", cfg.Translate.Provider),
	)

	store := notebook.New(cfg.BaseDir)
	if err := store.Init(); err != nil {
		return fmt.Errorf("preparing notebooks directory: %w", err)
	}

	translator, err := translate.New(cfg.Translate)
	if err != nil {
		return err
	}

	var changes navigator.ChangeTracker
	if cfg.WatchEnabled() {
		w, err := watcher.New(watcher.WithOnError(func(err error) {
			logger.Warn("watch error", zap.Error(err))
		}))
		if err != nil {
			logger.Warn("change notices disabled", zap.Error(err))
		} else {
			defer w.Close()
			changes = w
		}
	}

	nav := navigator.New(navigator.Options{
		Store: store,
		Prompter: navigator.NewHuhPrompter(
			navigator.WithAccessible(cfg.UI.Accessible),
			navigator.WithEditor(cfg.UI.Editor),
		),
		Translator:     translator,
		Renderer:       ui.NewNoteRenderer(cfg.UI.RenderMarkdown, noteWrapWidth),
		Changes:        changes,
		Logger:         logger,
		Out:            out,
		Err:            errOut,
		TargetLanguage: cfg.Translate.TargetLanguage,
		Pace:           cfg.UI.Pace,
	})

	err = nav.Run(ctx)
	logger.Info("exiting nb", zap.Error(err))
	return err
}
