package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a score out of max.
// Example: "████████░░ 16/20"
func ScoreBar(score, max, width int) string {
	if width <= 0 {
		width = 20
	}
	if max <= 0 {
		max = 1
	}

	ratio := float64(score) / float64(max)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case ratio >= 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case ratio >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/%d", score, max)))
}

// FeedbackLine styles a feedback string by its qualitative marker prefix:
// "✓" positive, "✗" negative, anything else muted.
func FeedbackLine(line string) string {
	switch {
	case strings.HasPrefix(line, "✓"):
		return StyleSuccess.Render(line)
	case strings.HasPrefix(line, "✗"):
		return StyleError.Render(line)
	default:
		return StyleMuted.Render(line)
	}
}

// PriorityBadge renders a colored roadmap priority label.
func PriorityBadge(priority string) string {
	label := "[" + strings.ToUpper(priority) + "]"
	switch strings.ToLower(priority) {
	case "high":
		return StyleError.Render(label)
	case "medium":
		return StyleWarning.Render(label)
	default:
		return StyleMuted.Render(label)
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
