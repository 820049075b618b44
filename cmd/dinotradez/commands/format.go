package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// Every scan command renders through these helpers
// ═══════════════════════════════════════════════════════════

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// PrintTitle prints a styled section title
func PrintTitle(title string) {
	fmt.Println()
	fmt.Println(titleStyle.Render(title))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(upStyle.Render("✅ " + message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(warnStyle.Render("⚠️  " + message))
}

// PrintInfo prints a muted info line
func PrintInfo(message string) {
	fmt.Println(mutedStyle.Render(message))
}

// renderTable lays out rows under headers with two-space column gaps.
// Widths are measured with lipgloss so styled cells stay aligned.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = pad(headerStyle.Render(h), widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	b.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	b.WriteString(mutedStyle.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// pad right-pads s to width visible cells
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// formatChange colors a percent change green or red
func formatChange(pct float64) string {
	text := fmt.Sprintf("%+.2f%%", pct)
	switch {
	case pct > 0:
		return upStyle.Render(text)
	case pct < 0:
		return downStyle.Render(text)
	default:
		return text
	}
}

// formatPercent renders an optional percentage, "n/a" when absent
func formatPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

// formatVolume abbreviates share counts: 950, 12.3K, 4.5M, 1.2B
func formatVolume(v int64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(v)/1e9)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1e6)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(v)/1e3)
	default:
		return fmt.Sprintf("%d", v)
	}
}

// orDash dereferences an optional string, "-" when absent
func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// flag renders a boolean as a short marker
func flag(b bool) string {
	if b {
		return warnStyle.Render("yes")
	}
	return mutedStyle.Render("no")
}
