package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// ErrInvalidInput indicates the supplied metadata is missing required
// fields. Optional-field absence is never an error; it is a scored branch.
var ErrInvalidInput = errors.New("invalid repository metadata")

// scorerFunc evaluates one dimension. Scorers are pure: they never fail,
// never read the wall clock, and treat absent optional fields as normal
// branches.
type scorerFunc func(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension

// scorers is the fixed dimension table, evaluated in DimensionOrder.
var scorers = map[string]scorerFunc{
	DimCodeQuality:          scoreCodeQuality,
	DimProjectStructure:     scoreProjectStructure,
	DimDocumentation:        scoreDocumentation,
	DimTesting:              scoreTesting,
	DimRealWorldRelevance:   scoreRealWorldRelevance,
	DimDevelopmentPractices: scoreDevelopmentPractices,
}

// Analyze runs the full analysis for one repository snapshot and returns an
// immutable result. "Now" is captured once and threaded through every
// scorer, so two calls with identical inputs differ only by clock drift
// between them; use AnalyzeAt for fully reproducible output.
func Analyze(meta *github.Repository, history *github.CommitHistory, identifier string) (*AnalysisResult, error) {
	return AnalyzeAt(time.Now().UTC(), meta, history, identifier)
}

// AnalyzeAt is Analyze with an explicit evaluation time. Identical inputs
// always produce identical results.
func AnalyzeAt(now time.Time, meta *github.Repository, history *github.CommitHistory, identifier string) (*AnalysisResult, error) {
	if err := validate(meta); err != nil {
		return nil, err
	}
	if identifier == "" {
		identifier = meta.FullName
	}

	result := &AnalysisResult{
		Repository: identifier,
		Dimensions: make(map[string]ScoreDimension, len(DimensionOrder)),
	}

	for _, name := range DimensionOrder {
		dim := scorers[name](now, meta, history)
		result.Dimensions[name] = dim
		result.OverallScore += dim.Score
		result.MaxScore += dim.MaxScore
	}

	pct := result.Percentage()
	result.SkillLevel = classifySkillLevel(pct)
	result.Tier = classifyTier(pct)
	result.Summary = buildSummary(now, meta, result)
	result.Roadmap = buildRoadmap(result.Dimensions)

	return result, nil
}

// validate fails fast on metadata the engine cannot score at all. The
// fetch layer supplies validated input, so this only guards direct callers.
func validate(meta *github.Repository) error {
	if meta == nil {
		return fmt.Errorf("%w: nil metadata", ErrInvalidInput)
	}
	if meta.Name == "" {
		return fmt.Errorf("%w: missing repository name", ErrInvalidInput)
	}
	if meta.CreatedAt.IsZero() || meta.UpdatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation or update timestamp", ErrInvalidInput)
	}
	return nil
}
