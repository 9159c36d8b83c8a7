package github

import "errors"

// Sentinel error conditions surfaced to the CLI layer. The analysis engine
// never interprets these; it only runs once a Repository exists.
var (
	// ErrNotFound indicates the repository does not exist or is not visible.
	ErrNotFound = errors.New("repository not found")

	// ErrRateLimited indicates the API rate limit is exhausted.
	ErrRateLimited = errors.New("rate limited by GitHub API")

	// ErrFetchFailed wraps any other upstream failure (network, 5xx,
	// malformed payload).
	ErrFetchFailed = errors.New("fetching repository data failed")

	// ErrInvalidRepoSpec indicates the input could not be reduced to an
	// owner/repository pair.
	ErrInvalidRepoSpec = errors.New("invalid repository spec")
)
