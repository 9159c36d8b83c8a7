package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/repogauge/internal/engine"
	"github.com/blackwell-systems/repogauge/internal/output"
)

// renderReport prints the full styled analysis report.
func renderReport(result *engine.AnalysisResult) {
	fmt.Println(output.Section(result.Repository))
	fmt.Printf("\n %s %s   %s %s   %s %s\n",
		output.StyleMuted.Render("Overall"),
		output.ScoreBar(result.OverallScore, result.MaxScore, 24),
		output.StyleMuted.Render("Tier"),
		output.StyleBold.Render(string(result.Tier)),
		output.StyleMuted.Render("Level"),
		output.StyleBold.Render(string(result.SkillLevel)),
	)

	fmt.Println(output.Section("Dimensions"))
	for _, name := range engine.DimensionOrder {
		dim := result.Dimensions[name]
		fmt.Printf("\n %s %s\n",
			output.StyleLabel.Render(dim.Name),
			output.ScoreBar(dim.Score, dim.MaxScore, 20),
		)
		for _, line := range dim.Feedback {
			fmt.Printf("   %s\n", output.FeedbackLine(line))
		}
	}

	fmt.Println(output.Section("Summary"))
	fmt.Println()
	fmt.Println(indent(renderMarkdown(result.Summary), 1))

	renderRoadmap(result)
}

// renderRoadmap prints only the roadmap portion of a report.
func renderRoadmap(result *engine.AnalysisResult) {
	fmt.Println(output.Section("Roadmap"))
	for i, item := range result.Roadmap {
		fmt.Printf("\n %d. %s %s\n", i+1,
			output.PriorityBadge(string(item.Priority)),
			output.StyleBold.Render(item.Title),
		)
		fmt.Printf("    %s\n", output.StyleMuted.Render(item.Description))
		for _, action := range item.ActionItems {
			fmt.Printf("    • %s\n", action)
		}
	}
}

// renderMarkdown applies light terminal styling to the summary's Markdown:
// headers become styled section titles, bullets stay as-is.
func renderMarkdown(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "## "); ok {
			lines[i] = output.StyleHeader.Render(rest)
		}
	}
	return strings.Join(lines, "\n")
}

// indent prefixes every non-empty line with n spaces.
func indent(s string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
