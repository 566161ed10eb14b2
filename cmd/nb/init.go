package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/notebook/pkg/config"
	"github.com/vanderheijden86/notebook/pkg/notebook"
	"github.com/vanderheijden86/notebook/pkg/ui"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file and create the notebooks directory",
		Long: `Write a config file with the default settings and create the notebooks
directory it points at.

An existing config file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if path == "" {
				path = config.ConfigPath()
			}
			if path == "" {
				return errors.New("cannot determine config directory")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking config: %w", err)
			}

			cfg := config.DefaultConfig()
			if root.configPath != "" {
				if err := config.SaveTo(cfg, path); err != nil {
					return err
				}
			} else if err := config.Save(cfg); err != nil {
				return err
			}

			if err := notebook.New(cfg.BaseDir).Init(); err != nil {
				return fmt.Errorf("preparing notebooks directory: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Success("Wrote "+path))
			fmt.Fprintln(out, ui.Info("Notebooks live in "+cfg.BaseDir))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
