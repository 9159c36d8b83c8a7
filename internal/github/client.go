package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// commitSampleSize is the maximum number of commits fetched per repository.
const commitSampleSize = 100

// Cache is a read-through store for assembled fetch results. Implementations
// own freshness; Get returns false for missing or expired entries.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, payload []byte) error
}

// Client fetches repository data from the GitHub REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	cache   Cache
}

// NewClient creates a Client against the given base URL. An empty baseURL
// selects the public API. An empty token sends unauthenticated requests.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetCache attaches a read-through cache for whole-repository fetches.
func (c *Client) SetCache(cache Cache) {
	c.cache = cache
}

// cachedFetch is the cache payload for one repository fetch.
type cachedFetch struct {
	Repository *Repository    `json:"repository"`
	History    *CommitHistory `json:"history"`
}

// Fetch retrieves the repository record, language byte-counts, README text,
// and a recent commit sample for owner/repo. The repository record is
// mandatory; README, languages, and commits degrade to their absent form
// when the API reports them missing.
func (c *Client) Fetch(ctx context.Context, owner, repo string) (*Repository, *CommitHistory, error) {
	key := "repo:" + owner + "/" + repo
	if c.cache != nil {
		if payload, ok := c.cache.Get(key); ok {
			var cached cachedFetch
			if err := json.Unmarshal(payload, &cached); err == nil && cached.Repository != nil {
				return cached.Repository, cached.History, nil
			}
		}
	}

	r, err := c.fetchRepo(ctx, owner, repo)
	if err != nil {
		return nil, nil, err
	}

	history := &CommitHistory{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		langs, err := c.fetchLanguages(gctx, owner, repo)
		if err != nil {
			return err
		}
		r.Languages = langs
		return nil
	})
	g.Go(func() error {
		readme, err := c.fetchReadme(gctx, owner, repo)
		if err != nil {
			return err
		}
		r.Readme = readme
		return nil
	})
	g.Go(func() error {
		commits, err := c.fetchCommits(gctx, owner, repo)
		if err != nil {
			return err
		}
		history.Commits = commits
		return nil
	})
	g.Go(func() error {
		total, err := c.fetchCommitCount(gctx, owner, repo)
		if err != nil {
			return err
		}
		history.TotalCount = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// The Link-header count is an estimate; the sample is ground truth.
	if history.TotalCount < len(history.Commits) {
		history.TotalCount = len(history.Commits)
	}

	if c.cache != nil {
		if payload, err := json.Marshal(cachedFetch{Repository: r, History: history}); err == nil {
			_ = c.cache.Put(key, payload)
		}
	}

	return r, history, nil
}

// repoPayload mirrors the fields of the repository record we consume.
type repoPayload struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	OpenIssues  int    `json:"open_issues_count"`
	Size        int    `json:"size"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	PushedAt    string `json:"pushed_at"`
	HasWiki     bool   `json:"has_wiki"`
	HasIssues   bool   `json:"has_issues"`
	HasProjects bool   `json:"has_projects"`
	License     *struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"license"`
	DefaultBranch string `json:"default_branch"`
}

func (c *Client) fetchRepo(ctx context.Context, owner, repo string) (*Repository, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), "")
	if err != nil {
		return nil, err
	}

	var p repoPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: decoding repository record: %v", ErrFetchFailed, err)
	}

	r := &Repository{
		Owner:         owner,
		Name:          p.Name,
		FullName:      p.FullName,
		Description:   p.Description,
		Language:      p.Language,
		Stars:         p.Stars,
		Forks:         p.Forks,
		OpenIssues:    p.OpenIssues,
		Size:          p.Size,
		HasWiki:       p.HasWiki,
		HasIssues:     p.HasIssues,
		HasProjects:   p.HasProjects,
		DefaultBranch: p.DefaultBranch,
		CreatedAt:     parseTime(p.CreatedAt),
		UpdatedAt:     parseTime(p.UpdatedAt),
		PushedAt:      parseTime(p.PushedAt),
	}
	if p.License != nil && p.License.Name != "" {
		r.License = &License{Name: p.License.Name, URL: p.License.URL}
	}
	if r.Name == "" {
		r.Name = repo
	}
	if r.FullName == "" {
		r.FullName = owner + "/" + repo
	}
	return r, nil
}

func (c *Client) fetchLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, repo), "")
	if err != nil {
		if isAbsent(err) {
			return map[string]int64{}, nil
		}
		return nil, err
	}

	langs := make(map[string]int64)
	if err := json.Unmarshal(body, &langs); err != nil {
		return nil, fmt.Errorf("%w: decoding languages: %v", ErrFetchFailed, err)
	}
	return langs, nil
}

func (c *Client) fetchReadme(ctx context.Context, owner, repo string) (string, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/readme", owner, repo), "application/vnd.github.raw+json")
	if err != nil {
		if isAbsent(err) {
			return "", nil
		}
		return "", err
	}
	return string(body), nil
}

// commitPayload mirrors the commit list entries we consume.
type commitPayload struct {
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

func (c *Client) fetchCommits(ctx context.Context, owner, repo string) ([]Commit, error) {
	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=%d", owner, repo, commitSampleSize)
	body, _, err := c.get(ctx, path, "")
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, err
	}

	var payload []commitPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding commits: %v", ErrFetchFailed, err)
	}

	commits := make([]Commit, 0, len(payload))
	for _, p := range payload {
		commits = append(commits, Commit{
			Message:    p.Commit.Message,
			AuthoredAt: parseTime(p.Commit.Author.Date),
		})
	}
	return commits, nil
}

// lastPageRe extracts the page number of the rel="last" link.
var lastPageRe = regexp.MustCompile(`[?&]page=(\d+)>; rel="last"`)

// fetchCommitCount estimates the total commit count using the per_page=1
// pagination idiom: the rel="last" page number equals the commit count.
func (c *Client) fetchCommitCount(ctx context.Context, owner, repo string) (int, error) {
	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=1", owner, repo)
	body, header, err := c.get(ctx, path, "")
	if err != nil {
		if isAbsent(err) {
			return 0, nil
		}
		return 0, err
	}

	if m := lastPageRe.FindStringSubmatch(header.Get("Link")); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, nil
		}
	}

	// No Link header: the single page is the whole history.
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, nil
	}
	return len(payload), nil
}

// get performs one API request and maps failure statuses onto the package
// error conditions.
func (c *Client) get(ctx context.Context, path, accept string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if accept == "" {
		accept = "application/vnd.github+json"
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading response: %v", ErrFetchFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, resp.Header, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return nil, nil, ErrRateLimited
	case resp.StatusCode == http.StatusConflict:
		// Empty repositories return 409 on the commits endpoint.
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return nil, nil, fmt.Errorf("%w: %s returned %s", ErrFetchFailed, path, resp.Status)
	}
}

// isAbsent reports whether an error represents a missing sub-resource
// rather than a hard failure.
func isAbsent(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// parseTime parses an RFC3339 timestamp, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
