package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/theme"
)

func newContrastCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "WCAG 2.1 contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := theme.CalculateContrastRatio(args[0], args[1])
			if err != nil {
				return err
			}
			level := theme.WCAGLevel(ratio)
			w := cmd.OutOrStdout()

			if jsonOutput {
				return writeJSON(w, map[string]any{
					"foreground": args[0],
					"background": args[1],
					"ratio":      ratio,
					"level":      level,
				})
			}

			fmt.Fprintf(w, "%s %s  %s  %s\n", swatch(args[0], "fg"), swatch(args[1], "bg"), formatRatio(ratio), levelBadge(level))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
