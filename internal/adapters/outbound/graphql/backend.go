package graphql

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/smellview/smellview/internal/domain"
)

var _ domain.Backend = (*Client)(nil)

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.Do(ctx, GetProjects, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) AvailableRefactorings(ctx context.Context) ([]domain.Refactoring, error) {
	var refactorings []domain.Refactoring
	if err := c.Do(ctx, GetAvailableRefactorings, nil, &refactorings); err != nil {
		return nil, err
	}
	return refactorings, nil
}

// BadSmellsForHash returns the raw, undeduplicated smells of a commit.
func (c *Client) BadSmellsForHash(ctx context.Context, hash string) ([]domain.BadSmell, error) {
	var smells []domain.BadSmell
	if err := c.Do(ctx, GetBadSmellsForHash, map[string]any{"hash": hash}, &smells); err != nil {
		return nil, err
	}
	return smells, nil
}

func (c *Client) AddProject(ctx context.Context, name, url string) (domain.Project, error) {
	var p domain.Project
	vars := map[string]any{"projectName": name, "projectUrl": url}
	if err := c.Do(ctx, AddProject, vars, &p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (c *Client) Refactor(ctx context.Context, identifiers []string) (string, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, Refactor, map[string]any{"badSmellIdentifier": identifiers}, &raw); err != nil {
		return "", err
	}
	return scalarText(raw), nil
}

func (c *Client) Login(ctx context.Context) (string, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, Login, map[string]any{"notNeeded": ""}, &raw); err != nil {
		return "", err
	}
	return scalarText(raw), nil
}

func (c *Client) ProjectConfig(ctx context.Context, projectURL string) (domain.ProjectConfig, error) {
	var cfg *domain.ProjectConfig
	if err := c.Do(ctx, GetProjectConfig, map[string]any{"projectUrl": projectURL}, &cfg); err != nil {
		return domain.ProjectConfig{}, err
	}
	if cfg == nil {
		return domain.ProjectConfig{}, domain.ErrNotFound
	}
	return *cfg, nil
}

func (c *Client) AddProjectConfig(ctx context.Context, cfg domain.ProjectConfig) (domain.ProjectConfig, error) {
	var saved domain.ProjectConfig
	if err := c.Do(ctx, AddProjectConfig, map[string]any{"projectConfig": cfg}, &saved); err != nil {
		return domain.ProjectConfig{}, err
	}
	return saved, nil
}

func (c *Client) GitHubCommits(ctx context.Context, projectName string) ([]domain.Commit, error) {
	var commits []domain.Commit
	if err := c.Do(ctx, GetGitHubCommitsForProject, map[string]any{"projectName": projectName}, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// scalarText renders an opaque scalar result: strings unquoted, anything else
// as its JSON text.
func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
