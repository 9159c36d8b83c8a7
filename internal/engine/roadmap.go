package engine

// maxRoadmapItems caps the roadmap length. Truncation keeps rule-evaluation
// order; it never reorders by priority.
const maxRoadmapItems = 5

// roadmapRule triggers one fixed item when its dimension's score ratio
// falls below the cutoff.
type roadmapRule struct {
	dimension string
	cutoff    float64
	item      RoadmapItem
}

// roadmapRules is the fixed rule table, evaluated in order.
var roadmapRules = []roadmapRule{
	{
		dimension: DimDocumentation,
		cutoff:    0.6,
		item: RoadmapItem{
			Priority:    PriorityHigh,
			Title:       "Strengthen Documentation",
			Description: "A thorough README is the front door of the project. Visitors decide within a minute whether a repository is worth their time.",
			ActionItems: []string{
				"Write a README with a clear one-paragraph project summary",
				"Add installation and setup instructions",
				"Include usage examples with code blocks",
				"Add a screenshot or diagram showing the project in action",
				"Document how to contribute",
				"State the license in the README",
			},
		},
	},
	{
		dimension: DimTesting,
		cutoff:    0.5,
		item: RoadmapItem{
			Priority:    PriorityHigh,
			Title:       "Build a Testing Habit",
			Description: "Visible testing practices are one of the strongest signals of engineering maturity.",
			ActionItems: []string{
				"Choose a test framework appropriate for the stack",
				"Write tests for the core logic first",
				"Set up a CI workflow that runs tests on every push",
				"Track and publish test coverage",
				"Add a build status badge to the README",
			},
		},
	},
	{
		dimension: DimCodeQuality,
		cutoff:    0.6,
		item: RoadmapItem{
			Priority:    PriorityHigh,
			Title:       "Raise Code Quality Signals",
			Description: "Consistent habits around commits, licensing, and upkeep make a codebase look and feel professional.",
			ActionItems: []string{
				"Write descriptive commit messages explaining why, not just what",
				"Adopt a conventional commit style",
				"Add a license file",
				"Keep the repository active with regular small updates",
				"Declare the primary language and toolchain clearly",
			},
		},
	},
	{
		dimension: DimProjectStructure,
		cutoff:    0.6,
		item: RoadmapItem{
			Priority:    PriorityMedium,
			Title:       "Improve Project Presentation",
			Description: "Repository settings and metadata shape the first impression before anyone reads a line of code.",
			ActionItems: []string{
				"Write a concise, specific repository description",
				"Enable issue tracking and triage incoming issues",
				"Add topics/tags so the project is discoverable",
				"Set up a project board for planned work",
				"Pin the repository on your profile if it represents your best work",
			},
		},
	},
	{
		dimension: DimDevelopmentPractices,
		cutoff:    0.6,
		item: RoadmapItem{
			Priority:    PriorityMedium,
			Title:       "Tighten Development Practices",
			Description: "A steady, visible development rhythm tells collaborators the project is alive and maintained.",
			ActionItems: []string{
				"Commit in small, regular increments instead of rare large drops",
				"Use a conventional default branch name (main or master)",
				"Open pull requests even for solo work to document changes",
				"Tag releases when milestones are reached",
				"Keep a CHANGELOG of notable changes",
			},
		},
	},
	{
		dimension: DimRealWorldRelevance,
		cutoff:    0.5,
		item: RoadmapItem{
			Priority:    PriorityLow,
			Title:       "Grow Real-World Traction",
			Description: "Adoption compounds slowly; small, consistent visibility work pays off over time.",
			ActionItems: []string{
				"Share the project where its audience already gathers",
				"Respond promptly to issues and questions",
				"Write a short post about why the project exists",
				"Keep pushing improvements so the project stays fresh",
				"Close or label stale issues to keep the backlog honest",
			},
		},
	},
}

// continueExcellenceItem is the fallback when no rule triggers.
var continueExcellenceItem = RoadmapItem{
	Priority:    PriorityLow,
	Title:       "Continue Excellence",
	Description: "Every dimension is in good shape. Maintenance and incremental polish are the priority now.",
	ActionItems: []string{
		"Keep dependencies up to date",
		"Review and refresh documentation periodically",
		"Watch for flaky tests and fix them promptly",
		"Mentor contributors to spread project knowledge",
		"Revisit this analysis after major changes",
	},
}

// buildRoadmap evaluates the fixed rule table against the dimension results
// and returns at most maxRoadmapItems items in rule order. The roadmap is
// never empty.
func buildRoadmap(dims map[string]ScoreDimension) []RoadmapItem {
	var items []RoadmapItem
	for _, rule := range roadmapRules {
		if dims[rule.dimension].Ratio() < rule.cutoff {
			items = append(items, rule.item)
		}
	}

	if len(items) == 0 {
		items = append(items, continueExcellenceItem)
	}
	if len(items) > maxRoadmapItems {
		items = items[:maxRoadmapItems]
	}
	return items
}
