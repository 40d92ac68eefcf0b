package output

import (
	"fmt"
	"strings"
)

// PercentBar renders a visual progress bar for a 0-100 percentage.
// Example: "████████░░ 80%"
func PercentBar(percent int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case percent >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case percent >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d%%", percent)))
}

// Sparkline renders a compact bar-per-value chart for a ratio series.
// Values above 100 clip to the tallest bar, keeping over-delivery visible
// without distorting the rest of the week.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	levels := []rune("▁▂▃▄▅▆▇█")

	var sb strings.Builder
	for _, v := range values {
		idx := v * (len(levels) - 1) / 100
		if idx >= len(levels) {
			idx = len(levels) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(levels[idx])
	}
	return StyleAccent.Render(sb.String())
}

// Streak renders a streak count with a flame marker when it is alive.
func Streak(days int) string {
	if days <= 0 {
		return StyleMuted.Render("no streak")
	}
	label := fmt.Sprintf("🔥 %d day", days)
	if days > 1 {
		label += "s"
	}
	return StyleBold.Render(label)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
