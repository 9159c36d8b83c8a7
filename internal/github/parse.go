package github

import (
	"fmt"
	"strings"
)

// ParseRepoSpec extracts an owner/repository pair from user input. Accepted
// forms:
//
//	owner/repo
//	https://github.com/owner/repo[.git][/extra/path]
//	http://github.com/owner/repo
//	github.com/owner/repo
//	git@github.com:owner/repo[.git]
func ParseRepoSpec(spec string) (owner, repo string, err error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return "", "", fmt.Errorf("%w: empty input", ErrInvalidRepoSpec)
	}

	// SSH form: git@github.com:owner/repo.git
	if rest, ok := strings.CutPrefix(s, "git@github.com:"); ok {
		s = rest
	} else {
		// URL forms: strip scheme and host if present.
		s = strings.TrimPrefix(s, "https://")
		s = strings.TrimPrefix(s, "http://")
		if rest, ok := strings.CutPrefix(s, "github.com/"); ok {
			s = rest
		} else if strings.Contains(s, "://") || strings.HasPrefix(spec, "http") {
			return "", "", fmt.Errorf("%w: %q is not a github.com URL", ErrInvalidRepoSpec, spec)
		}
	}

	s = strings.Trim(s, "/")
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q (want owner/repo)", ErrInvalidRepoSpec, spec)
	}

	owner = parts[0]
	repo = strings.TrimSuffix(parts[1], ".git")
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("%w: %q (want owner/repo)", ErrInvalidRepoSpec, spec)
	}
	return owner, repo, nil
}
