// Package github fetches repository metadata, README text, language
// byte-counts, and recent commit history from the GitHub REST API.
package github

import "time"

// Repository holds the repository metadata consumed by the analysis engine.
// It is assembled once by the fetch layer and treated as an immutable
// snapshot thereafter. Optional fields use their zero value when absent:
// empty Description, empty Readme, nil License.
type Repository struct {
	// Owner is the user or organization that owns the repository.
	Owner string `json:"owner"`

	// Name is the repository name without the owner prefix.
	Name string `json:"name"`

	// FullName is the canonical "owner/name" identifier.
	FullName string `json:"full_name"`

	// Description is the repository description, empty if unset.
	Description string `json:"description"`

	// Language is the primary language reported by GitHub, empty if none.
	Language string `json:"language"`

	// Languages maps language name to byte count across the repository.
	Languages map[string]int64 `json:"languages"`

	// Stars is the stargazer count.
	Stars int `json:"stars"`

	// Forks is the fork count.
	Forks int `json:"forks"`

	// OpenIssues is the open issue count.
	OpenIssues int `json:"open_issues"`

	// Size is the repository size metric reported by the API (KB).
	Size int `json:"size"`

	// CreatedAt is the repository creation time.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last metadata update time.
	UpdatedAt time.Time `json:"updated_at"`

	// PushedAt is the last push time.
	PushedAt time.Time `json:"pushed_at"`

	// HasWiki indicates whether the wiki feature is enabled.
	HasWiki bool `json:"has_wiki"`

	// HasIssues indicates whether the issues feature is enabled.
	HasIssues bool `json:"has_issues"`

	// HasProjects indicates whether the projects feature is enabled.
	HasProjects bool `json:"has_projects"`

	// License is the detected license, nil if none.
	License *License `json:"license,omitempty"`

	// Readme is the full README text, empty if the repository has none.
	Readme string `json:"readme,omitempty"`

	// DefaultBranch is the default branch name.
	DefaultBranch string `json:"default_branch"`
}

// License identifies a repository license.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Commit is a single commit record from the sampled history.
type Commit struct {
	// Message is the full commit message.
	Message string `json:"message"`

	// AuthoredAt is the author timestamp.
	AuthoredAt time.Time `json:"authored_at"`
}

// CommitHistory is a newest-first sample of up to 100 commits plus the
// total commit count observed for the default branch. The sample length is
// always <= TotalCount; TotalCount itself may undercount the true history
// when the Link-header estimate is unavailable.
type CommitHistory struct {
	// TotalCount is the total number of commits observed.
	TotalCount int `json:"total_count"`

	// Commits is the newest-first sample, at most 100 entries.
	Commits []Commit `json:"commits"`
}
