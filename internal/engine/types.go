// Package engine scores a repository's engineering quality from its
// metadata and recent commit history, producing per-dimension scores, an
// aggregate classification, a narrative summary, and an improvement roadmap.
package engine

import "fmt"

// Dimension names, in fixed evaluation and rendering order.
const (
	DimCodeQuality          = "Code Quality"
	DimProjectStructure     = "Project Structure"
	DimDocumentation        = "Documentation"
	DimTesting              = "Testing"
	DimRealWorldRelevance   = "Real-World Relevance"
	DimDevelopmentPractices = "Development Practices"
)

// DimensionOrder is the fixed evaluation order of the six dimensions.
// Feedback ordering and roadmap rule ordering both depend on it.
var DimensionOrder = []string{
	DimCodeQuality,
	DimProjectStructure,
	DimDocumentation,
	DimTesting,
	DimRealWorldRelevance,
	DimDevelopmentPractices,
}

// Per-dimension maximum scores. They sum to 100.
const (
	maxCodeQuality          = 20
	maxProjectStructure     = 15
	maxDocumentation        = 25
	maxTesting              = 15
	maxRealWorldRelevance   = 10
	maxDevelopmentPractices = 15
)

// ScoreDimension is the result of one dimension scorer.
type ScoreDimension struct {
	// Name is the dimension name.
	Name string `json:"name"`

	// Score is the awarded score, always within [0, MaxScore].
	Score int `json:"score"`

	// MaxScore is the dimension-specific maximum.
	MaxScore int `json:"max_score"`

	// Feedback holds human-readable feedback lines in evaluation order,
	// each prefixed with a qualitative marker.
	Feedback []string `json:"feedback"`
}

// Ratio returns Score/MaxScore as a fraction in [0, 1].
func (d ScoreDimension) Ratio() float64 {
	if d.MaxScore == 0 {
		return 0
	}
	return float64(d.Score) / float64(d.MaxScore)
}

// Percent returns Score/MaxScore as a percentage.
func (d ScoreDimension) Percent() float64 {
	return d.Ratio() * 100
}

// add awards points and appends one feedback line.
func (d *ScoreDimension) add(points int, feedback string) {
	d.Score += points
	d.Feedback = append(d.Feedback, feedback)
}

func newDimension(name string, maxScore int) ScoreDimension {
	return ScoreDimension{Name: name, MaxScore: maxScore}
}

// SkillLevel is the coarse skill classification derived from the aggregate
// percentage.
type SkillLevel string

// Skill levels, lowest to highest.
const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Tier is the coarse overall-quality label derived from the aggregate
// percentage.
type Tier string

// Tiers, lowest to highest.
const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// Priority ranks roadmap items.
type Priority string

// Roadmap priorities.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// RoadmapItem is one prioritized improvement suggestion.
type RoadmapItem struct {
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"action_items"`
}

// AnalysisResult is the immutable output of one analysis run.
type AnalysisResult struct {
	// Repository is the owner/name identifier the analysis was run for.
	Repository string `json:"repository"`

	// Dimensions holds the six dimension results keyed by name. Iterate
	// with DimensionOrder for deterministic rendering.
	Dimensions map[string]ScoreDimension `json:"dimensions"`

	// OverallScore is the sum of all dimension scores.
	OverallScore int `json:"overall_score"`

	// MaxScore is the sum of all dimension maxima, always 100.
	MaxScore int `json:"max_score"`

	// SkillLevel is the derived skill classification.
	SkillLevel SkillLevel `json:"skill_level"`

	// Tier is the derived quality tier.
	Tier Tier `json:"tier"`

	// Summary is the Markdown narrative report.
	Summary string `json:"summary"`

	// Roadmap lists at most 5 prioritized improvement items.
	Roadmap []RoadmapItem `json:"roadmap"`
}

// Percentage returns OverallScore/MaxScore as a percentage.
func (r *AnalysisResult) Percentage() float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return float64(r.OverallScore) / float64(r.MaxScore) * 100
}

// Feedback line markers.
const (
	markerGood = "✓"
	markerNote = "→"
	markerBad  = "✗"
)

func good(format string, args ...any) string {
	return markerGood + " " + fmt.Sprintf(format, args...)
}

func note(format string, args ...any) string {
	return markerNote + " " + fmt.Sprintf(format, args...)
}

func bad(format string, args ...any) string {
	return markerBad + " " + fmt.Sprintf(format, args...)
}
