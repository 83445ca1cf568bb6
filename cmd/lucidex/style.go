package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gnana997/lucidex/pkg/theme"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#15803D"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C"))
)

// swatchWidth fits the longest label, "#rrggbb".
const swatchWidth = 9

// swatch renders label on a block of hex, with black or white text
// depending on which reads better.
func swatch(hex, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(readableOn(hex))).
		Width(swatchWidth).
		Align(lipgloss.Center).
		Render(label)
}

// readableOn picks the text color with the higher contrast against hex.
func readableOn(hex string) string {
	white, errW := theme.CalculateContrastRatio("#ffffff", hex)
	black, errB := theme.CalculateContrastRatio("#000000", hex)
	if errW != nil || errB != nil || black >= white {
		return "#000000"
	}
	return "#ffffff"
}

// levelBadge colors a WCAG level: Fail in red, anything else in green.
func levelBadge(level string) string {
	if level == "Fail" {
		return failStyle.Render(level)
	}
	return passStyle.Render(level)
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
