package engine

import (
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// scoreRealWorldRelevance evaluates community adoption, push recency, issue
// load, and project maturity. Max 10.
func scoreRealWorldRelevance(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension {
	d := newDimension(DimRealWorldRelevance, maxRealWorldRelevance)

	switch {
	case r.Stars > 100:
		d.add(4, good("Strong community adoption (%d stars)", r.Stars))
	case r.Stars > 10:
		d.add(3, good("Growing community (%d stars)", r.Stars))
	case r.Stars > 0:
		d.add(1, note("Early community interest (%d stars)", r.Stars))
	default:
		d.add(0, bad("No community adoption yet"))
	}

	pushedDays := daysSince(now, r.PushedAt)
	switch {
	case pushedDays < 7:
		d.add(3, good("Actively developed (pushed %d days ago)", pushedDays))
	case pushedDays < 30:
		d.add(2, good("Recent development activity"))
	default:
		d.add(0, bad("No recent pushes — development may have stalled"))
	}

	switch {
	case r.OpenIssues == 0:
		d.add(2, good("No open issues"))
	case r.OpenIssues < 10:
		d.add(1, note("A few open issues (%d)", r.OpenIssues))
	default:
		d.add(0, bad("Issue backlog building up (%d open)", r.OpenIssues))
	}

	// Maturity: only the year-old branch scores; the younger branches
	// differ in feedback text alone.
	age := daysSince(now, r.CreatedAt)
	switch {
	case age > 365:
		d.add(1, good("Mature project (over a year old)"))
	case age > 90:
		d.add(0, note("Established project, still building history"))
	default:
		d.add(0, note("Young project — early days"))
	}

	return d
}
