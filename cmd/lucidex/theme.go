package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/theme"
)

// Theme output formats.
const (
	formatCSS      = "css"
	formatTailwind = "tailwind"
	formatFigma    = "figma"
	formatJSON     = "json"
)

type themeOptions struct {
	format string
	output string
}

func newThemeCmd(app *appContext) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme [config]",
		Short: "Render a theme config (YAML or JSON) as CSS, Tailwind, Figma tokens or JSON",
		Long: "Render a theme config as CSS custom properties, a Tailwind config, Figma Tokens Studio\n" +
			"sets or the full generated bundle. Without a config the built-in Qatar GBA theme is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := theme.DefaultThemeConfig()
			if len(args) == 1 {
				loaded, err := theme.LoadConfigFile(args[0])
				if err != nil {
					return err
				}
				cfg = loaded
			}

			generated, err := theme.NewGenerator(1, app.logger).Generate(cfg)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := renderTheme(&buf, generated, opts.format); err != nil {
				return err
			}
			if opts.output == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			app.logger.Info("theme written", "path", opts.output, "format", opts.format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatCSS, "Output format: css, tailwind, figma, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func renderTheme(w io.Writer, generated *theme.GeneratedTheme, format string) error {
	switch format {
	case formatCSS:
		_, err := io.WriteString(w, generated.CSS)
		return err
	case formatTailwind:
		return writeJSON(w, generated.TailwindConfig)
	case formatFigma:
		return writeJSON(w, generated.FigmaTokens)
	case formatJSON:
		return writeJSON(w, generated)
	default:
		return fmt.Errorf("unknown format %q (want css, tailwind, figma or json)", format)
	}
}
