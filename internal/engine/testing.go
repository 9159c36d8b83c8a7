package engine

import (
	"strings"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// ciSignals are README substrings indicating a CI pipeline.
var ciSignals = []string{"travis", "circleci", "github actions", "build passing", "workflow"}

// testFrameworks are well-known test framework names recognized in READMEs.
var testFrameworks = []string{"jest", "mocha", "pytest", "junit", "rspec", "phpunit", "unittest"}

// testingFloor is the score below which the participation bonus applies.
const testingFloor = 5

// scoreTesting evaluates testing signals found in the README text alone; no
// file tree is inspected. Max 15.
func scoreTesting(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension {
	d := newDimension(DimTesting, maxTesting)

	readme := strings.ToLower(r.Readme)

	switch {
	case strings.Contains(readme, "test") && strings.Contains(readme, "coverage"):
		d.add(5, good("Testing with coverage tracking mentioned"))
	case strings.Contains(readme, "test"):
		d.add(3, good("Testing mentioned in README"))
	default:
		d.add(0, bad("No mention of testing in README"))
	}

	if containsAny(readme, ciSignals) {
		d.add(5, good("CI/CD signals found"))
	} else {
		d.add(0, bad("No CI/CD signals found"))
	}

	for _, framework := range testFrameworks {
		if strings.Contains(readme, framework) {
			d.add(3, good("Test framework mentioned: %s", framework))
			break
		}
	}

	// Participation bonus: weak testing signals still get credit for
	// having somewhere to start from.
	if d.Score < testingFloor {
		d.Feedback = append(d.Feedback,
			note("Start small: pick a test framework and write one test"),
			note("Even a handful of tests builds confidence quickly"),
		)
		d.Score += 2
	}

	return d
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
