package engine

import (
	"strings"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// goodCommitMinLength is the message length a commit must exceed to count
// as descriptive.
const goodCommitMinLength = 10

// lazyCommitPrefix marks auto-generated "Update <file>" commit messages.
// Deliberately narrow: "update " and "Updated " do not match, and changing
// that would change scored output.
const lazyCommitPrefix = "Update "

// scoreCodeQuality evaluates language signals, update recency, commit
// message quality, codebase size, and license presence. Max 20.
func scoreCodeQuality(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension {
	d := newDimension(DimCodeQuality, maxCodeQuality)

	if r.Language != "" {
		d.add(3, good("Primary language: %s", r.Language))
	} else {
		d.add(0, bad("No primary language detected"))
	}

	if len(r.Languages) > 1 {
		d.add(2, good("Multi-language codebase (%d languages)", len(r.Languages)))
	} else {
		d.add(0, note("Single-language codebase"))
	}

	updatedDays := daysSince(now, r.UpdatedAt)
	switch {
	case updatedDays < 30:
		d.add(5, good("Recently updated (%d days ago)", updatedDays))
	case updatedDays < 90:
		d.add(3, good("Updated within the last 90 days"))
	default:
		d.add(0, bad("Not updated in over 90 days"))
	}

	if history != nil && len(history.Commits) > 0 {
		ratio := goodCommitRatio(history.Commits)
		pct := int(ratio * 100)
		switch {
		case ratio > 0.7:
			d.add(5, good("Descriptive commit messages (%d%% of recent commits)", pct))
		case ratio > 0.4:
			d.add(3, note("Commit messages are a mixed bag (%d%% descriptive)", pct))
		default:
			d.add(1, bad("Commit messages are mostly short or generic"))
		}
	}

	switch {
	case r.Size > 1000:
		d.add(3, good("Substantial codebase"))
	case r.Size > 100:
		d.add(2, note("Moderately sized codebase"))
	default:
		d.add(0, note("Small codebase"))
	}

	if r.License != nil {
		d.add(2, good("Licensed under %s", r.License.Name))
	} else {
		d.add(0, bad("No license detected"))
	}

	return d
}

// goodCommitRatio returns the fraction of sampled commits whose message is
// longer than goodCommitMinLength and does not start with lazyCommitPrefix.
func goodCommitRatio(commits []github.Commit) float64 {
	goodCount := 0
	for _, c := range commits {
		if len(c.Message) > goodCommitMinLength && !strings.HasPrefix(c.Message, lazyCommitPrefix) {
			goodCount++
		}
	}
	return float64(goodCount) / float64(len(commits))
}
