package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
)

// Color palette shared by the static report and the interactive view.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - full compatibility
	colorYellow = lipgloss.Color("220") // Amber - partial compatibility
	colorRed    = lipgloss.Color("167") // Soft red - no compatibility
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSection = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleGray    = lipgloss.NewStyle().Foreground(colorGray)

	styleFull    = lipgloss.NewStyle().Foreground(colorGreen)
	stylePartial = lipgloss.NewStyle().Foreground(colorYellow)
	styleNone    = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconFull    = "✓"
	iconPartial = "~"
	iconNone    = "✗"
)

// statusIcon returns the colored icon for a compatibility status.
func statusIcon(s compat.Status) string {
	switch s {
	case compat.StatusFull:
		return styleFull.Render(iconFull)
	case compat.StatusPartial:
		return stylePartial.Render(iconPartial)
	default:
		return styleNone.Render(iconNone)
	}
}

// printSection prints a bucket heading.
func printSection(format string, args ...any) {
	fmt.Println(styleSection.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + styleValue.Render(value))
}
