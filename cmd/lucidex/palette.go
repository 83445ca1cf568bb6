package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/theme"
)

type paletteOptions struct {
	name          string
	accessible    bool
	complementary bool
	jsonOutput    bool
}

func newPaletteCmd() *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <hex>",
		Short: "Show the 50-950 shade scale of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "primary", "Palette name")
	cmd.Flags().BoolVar(&opts.accessible, "accessible", false, "Use the contrast-preserving accessible scale")
	cmd.Flags().BoolVar(&opts.complementary, "complementary", false, "Also show complementary, triadic and analogous colors")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPalette(w io.Writer, hex string, opts *paletteOptions) error {
	var (
		token *theme.ColorToken
		err   error
	)
	if opts.accessible {
		token, err = theme.GenerateAccessiblePalette(hex)
	} else {
		token, err = theme.GenerateColorVariants(hex, opts.name)
	}
	if err != nil {
		return err
	}

	var harmony []theme.HarmonyColor
	if opts.complementary {
		if harmony, err = theme.GenerateComplementaryColors(hex); err != nil {
			return err
		}
	}

	if opts.jsonOutput {
		out := map[string]any{"palette": token}
		if harmony != nil {
			out["harmony"] = harmony
		}
		return writeJSON(w, out)
	}

	fmt.Fprintf(w, "%s  %s\n\n", headerStyle.Render(token.Name), mutedStyle.Render(fmt.Sprintf("hsl(%s)", token.HSL.CSS())))
	fmt.Fprintln(w, renderScale(token))
	for _, v := range token.Variants {
		ratio, _ := theme.CalculateContrastRatio(v.Value, "#ffffff")
		fmt.Fprintf(w, "  %-4s %s  %s on white  %s\n", v.Name, v.Value, formatRatio(ratio), levelBadge(theme.WCAGLevel(ratio)))
	}

	if len(harmony) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("harmony"))
		blocks := make([]string, len(harmony))
		for i, h := range harmony {
			blocks[i] = lipgloss.JoinVertical(lipgloss.Center, swatch(h.Value, h.Value), mutedStyle.Render(h.Name))
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, spaced(blocks)...))
	}
	return nil
}

// renderScale lays the shades out as one row of labeled swatches.
func renderScale(token *theme.ColorToken) string {
	blocks := make([]string, len(token.Variants))
	for i, v := range token.Variants {
		blocks[i] = lipgloss.JoinVertical(lipgloss.Center, swatch(v.Value, v.Name), mutedStyle.Render(strings.TrimPrefix(v.Value, "#")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced(blocks)...)
}

func spaced(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, b)
	}
	return out
}
