package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/util"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// appContext is resolved once per invocation by the root command.
type appContext struct {
	config *ProjectConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{config: &ProjectConfig{}, logger: slog.Default()}

	cmd := &cobra.Command{
		Use:           "lucidex",
		Short:         "Lucidex explores the Qatar GBA design system: tokens, themes and layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig(flags.configPath)
			if err != nil {
				return err
			}
			if flags.logLevel != "" {
				cfg.Log.Level = flags.logLevel
			}
			if flags.logFormat != "" {
				cfg.Log.Format = flags.logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			lc := cfg.loggerConfig()
			lc.Output = cmd.ErrOrStderr()
			app.config = cfg
			app.logger = util.NewLogger(lc)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Project config file (default .lucidex/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newComponentsCmd(app))
	cmd.AddCommand(newSetupCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
