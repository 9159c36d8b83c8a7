package engine

import (
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

// scoreProjectStructure evaluates description quality, enabled collaboration
// features, and community engagement. Max 15.
func scoreProjectStructure(now time.Time, r *github.Repository, history *github.CommitHistory) ScoreDimension {
	d := newDimension(DimProjectStructure, maxProjectStructure)

	switch {
	case len(r.Description) > 20:
		d.add(4, good("Clear, detailed description"))
	case r.Description != "":
		d.add(2, note("Description present but brief"))
	default:
		d.add(0, bad("No description provided"))
	}

	if r.HasIssues {
		d.add(3, good("Issue tracking enabled"))
	} else {
		d.add(0, note("Issue tracking disabled"))
	}

	if r.HasWiki {
		d.add(2, good("Wiki enabled"))
	} else {
		d.add(0, note("No wiki"))
	}

	if r.HasProjects {
		d.add(2, good("Projects board enabled"))
	} else {
		d.add(0, note("No projects board"))
	}

	switch {
	case r.Stars > 10:
		d.add(2, good("Community recognition (%d stars)", r.Stars))
	case r.Stars > 0:
		d.add(1, note("Early community interest (%d stars)", r.Stars))
	default:
		d.add(0, bad("No stars yet"))
	}

	if r.Forks > 0 {
		d.add(2, good("Forked by %d users", r.Forks))
	} else {
		d.add(0, note("No forks yet"))
	}

	return d
}
