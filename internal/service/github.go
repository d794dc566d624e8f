package service

import (
	"context"
	"net/http"

	"hackathon-portal-backend/internal/config"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubService verifies that submitted repository links point at an
// existing GitHub repository. When disabled it accepts any well-formed link.
type GitHubService struct {
	client  *github.Client
	enabled bool
}

// NewGitHubService creates a new GitHub service from configuration.
// An unset token still works for public repositories, at a lower rate limit.
func NewGitHubService(cfg *config.Config) *GitHubService {
	if !cfg.GitHubCheckEnabled {
		return &GitHubService{}
	}

	var httpClient *http.Client
	if cfg.GitHubToken != "" {
		httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.GitHubToken},
		))
	}

	return &GitHubService{
		client:  github.NewClient(httpClient),
		enabled: true,
	}
}

// Enabled reports whether repository existence checks are active
func (s *GitHubService) Enabled() bool {
	return s.enabled
}

// RepoExists checks whether owner/repo exists on GitHub
func (s *GitHubService) RepoExists(ctx context.Context, owner, repo string) (bool, error) {
	if !s.enabled {
		return true, nil
	}

	_, resp, err := s.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
