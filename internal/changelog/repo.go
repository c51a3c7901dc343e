package changelog

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

// DetectRepoURL discovers the repository base URL for footer comparison
// links by reading the "origin" remote of the git repository containing
// path. SSH remote forms are normalized to https, and a trailing ".git"
// is stripped.
func DetectRepoURL(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", path, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("reading origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	return normalizeRemoteURL(urls[0]), nil
}

// normalizeRemoteURL converts a git remote URL to a browsable https URL:
//
//	git@github.com:owner/repo.git -> https://github.com/owner/repo
//	https://github.com/owner/repo.git -> https://github.com/owner/repo
func normalizeRemoteURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	if rest, ok := strings.CutPrefix(url, "git@"); ok {
		host, path, found := strings.Cut(rest, ":")
		if found {
			return "https://" + host + "/" + path
		}
	}
	if rest, ok := strings.CutPrefix(url, "ssh://git@"); ok {
		return "https://" + rest
	}
	return url
}
