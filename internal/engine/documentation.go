package engine

import (
	"strings"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// scoreDocumentation evaluates the README: length, then independent
// case-insensitive content checks. A missing README short-circuits to zero
// with two critical feedback lines. Max 25.
func scoreDocumentation(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension {
	d := newDimension(DimDocumentation, maxDocumentation)

	if r.Readme == "" {
		d.add(0, bad("No README found — documentation is the first thing visitors look for"))
		d.add(0, bad("Add a README.md covering what the project does, how to install it, and how to use it"))
		return d
	}

	readme := strings.ToLower(r.Readme)

	switch {
	case len(r.Readme) > 2000:
		d.add(10, good("Comprehensive README (%d characters)", len(r.Readme)))
	case len(r.Readme) > 500:
		d.add(6, good("Solid README coverage"))
	default:
		d.add(3, note("README present but minimal"))
	}

	if strings.Contains(readme, "install") || strings.Contains(readme, "setup") {
		d.add(3, good("Installation instructions included"))
	}

	if strings.Contains(readme, "usage") || strings.Contains(readme, "example") {
		d.add(3, good("Usage examples included"))
	}

	if strings.Contains(readme, "contributing") || strings.Contains(readme, "contribution") {
		d.add(2, good("Contribution guidelines mentioned"))
	}

	if strings.Contains(readme, "license") {
		d.add(2, good("License documented in README"))
	}

	if strings.Contains(readme, "![") || strings.Contains(readme, "<img") {
		d.add(2, good("Visual documentation (images or diagrams)"))
	} else {
		d.add(0, note("Consider adding screenshots or diagrams"))
	}

	if strings.Contains(readme, "```") || strings.Contains(readme, "`") {
		d.add(2, good("Code examples formatted"))
	}

	if strings.Contains(readme, "badge") || strings.Contains(readme, "shields.io") ||
		strings.Contains(readme, "img.shields.io") {
		d.add(1, good("Status badges present"))
	}

	return d
}
