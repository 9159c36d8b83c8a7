package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// Summary classification thresholds on a dimension's own percentage.
const (
	strengthThreshold = 70
	weaknessThreshold = 40
)

// buildSummary composes the Markdown narrative report from dimension
// percentages and metadata highlights.
func buildSummary(now time.Time, r *github.Repository, result *AnalysisResult) string {
	var strengths, weaknesses []string
	for _, name := range DimensionOrder {
		pct := result.Dimensions[name].Percent()
		switch {
		case pct >= strengthThreshold:
			strengths = append(strengths, strings.ToLower(name))
		case pct < weaknessThreshold:
			weaknesses = append(weaknesses, strings.ToLower(name))
		}
	}

	var sb strings.Builder
	pct := result.Percentage()

	switch {
	case pct >= 80:
		fmt.Fprintf(&sb, "This repository demonstrates excellent engineering practices, scoring %d out of %d.",
			result.OverallScore, result.MaxScore)
	case pct >= 65:
		fmt.Fprintf(&sb, "This repository shows strong engineering fundamentals, scoring %d out of %d.",
			result.OverallScore, result.MaxScore)
	case pct >= 50:
		fmt.Fprintf(&sb, "This repository has a solid foundation to build on, scoring %d out of %d.",
			result.OverallScore, result.MaxScore)
	default:
		fmt.Fprintf(&sb, "This repository has significant room for improvement, scoring %d out of %d.",
			result.OverallScore, result.MaxScore)
	}

	if len(strengths) > 0 {
		fmt.Fprintf(&sb, " Notable strengths: %s.", strings.Join(strengths, ", "))
	}
	if len(weaknesses) > 0 {
		fmt.Fprintf(&sb, " Areas needing attention: %s.", strings.Join(weaknesses, ", "))
	}

	sb.WriteString("\n\n## Key Observations\n")
	for _, obs := range keyObservations(now, r, result) {
		fmt.Fprintf(&sb, "- %s\n", obs)
	}

	sb.WriteString("\n## Recommendation\n")
	sb.WriteString(recommendation(pct, weaknesses))

	return sb.String()
}

// keyObservations builds the observation bullets in fixed check order.
func keyObservations(now time.Time, r *github.Repository, result *AnalysisResult) []string {
	var obs []string

	if len(r.Readme) > 1000 {
		obs = append(obs, "Thorough README documentation")
	}
	if r.Readme == "" {
		obs = append(obs, "Missing README — the first thing visitors look for")
	}

	if result.Dimensions[DimCodeQuality].Ratio() > 0.7 {
		obs = append(obs, "Code quality signals are strong")
	}
	if result.Dimensions[DimTesting].Ratio() < 0.4 {
		obs = append(obs, "Testing practices appear underdeveloped")
	}

	if r.Stars > 10 || r.Forks > 5 {
		obs = append(obs, "The project has real-world traction")
	}

	// Staleness is checked before freshness; the two are mutually
	// exclusive and the mid-range produces no bullet.
	updatedDays := daysSince(now, r.UpdatedAt)
	if updatedDays > 90 {
		obs = append(obs, "No updates in over 90 days")
	} else if updatedDays < 7 {
		obs = append(obs, "Updated within the last week")
	}

	return obs
}

// recommendation writes the closing paragraph, naming the first weakness
// when one exists.
func recommendation(pct float64, weaknesses []string) string {
	focus := "polishing the remaining rough edges"
	if len(weaknesses) > 0 {
		focus = weaknesses[0]
	}

	switch {
	case pct >= 75:
		return fmt.Sprintf("Keep up the momentum. Focus on %s to reach the next level.", focus)
	case pct >= 60:
		return fmt.Sprintf("A few targeted improvements would go a long way. Start with %s.", focus)
	default:
		return fmt.Sprintf("Prioritize the fundamentals, beginning with %s.", focus)
	}
}
