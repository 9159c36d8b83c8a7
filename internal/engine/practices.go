package engine

import (
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// cadenceSampleSize caps how many recent commits feed the cadence average.
const cadenceSampleSize = 10

// cadenceMinCommits is the minimum sample size for cadence to be evaluated.
const cadenceMinCommits = 5

// scoreDevelopmentPractices evaluates commit volume, commit cadence, branch
// naming convention, lifetime activity ratio, and license presence. Max 15.
func scoreDevelopmentPractices(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension {
	d := newDimension(DimDevelopmentPractices, maxDevelopmentPractices)

	total := 0
	if history != nil {
		total = history.TotalCount
	}
	switch {
	case total > 50:
		d.add(5, good("Active commit history (%d commits)", total))
	case total > 10:
		d.add(3, good("Healthy commit history (%d commits)", total))
	case total > 0:
		d.add(1, note("Limited commit history (%d commits)", total))
	}

	if history != nil && len(history.Commits) >= cadenceMinCommits {
		avgDays := averageCommitGapDays(history.Commits)
		switch {
		case avgDays < 14:
			d.add(3, good("Consistent commit cadence (about %.0f days between commits)", avgDays))
		case avgDays < 30:
			d.add(2, note("Moderate commit cadence"))
		default:
			d.add(1, note("Infrequent commits"))
		}
	}

	if r.DefaultBranch == "main" || r.DefaultBranch == "master" {
		d.add(2, good("Conventional default branch (%s)", r.DefaultBranch))
	}

	updateAge := daysSince(now, r.UpdatedAt)
	repoAge := daysSince(now, r.CreatedAt)
	switch {
	case float64(updateAge) < 0.1*float64(repoAge):
		d.add(3, good("Recently active relative to project age"))
	case float64(updateAge) < 0.5*float64(repoAge):
		d.add(2, note("Moderately active over the project's lifetime"))
	default:
		d.add(0, bad("Inactive for most of the project's lifetime"))
	}

	if r.License != nil {
		d.add(2, good("License in place"))
	} else {
		d.add(0, bad("No license — a barrier for contributors"))
	}

	return d
}

// averageCommitGapDays averages the gaps between consecutive commit
// timestamps from the newest-first sample, using at most cadenceSampleSize
// commits.
func averageCommitGapDays(commits []github.Commit) float64 {
	n := len(commits)
	if n > cadenceSampleSize {
		n = cadenceSampleSize
	}

	var totalGap time.Duration
	for i := 0; i < n-1; i++ {
		totalGap += commits[i].AuthoredAt.Sub(commits[i+1].AuthoredAt)
	}

	avg := totalGap / time.Duration(n-1)
	return avg.Hours() / 24
}
