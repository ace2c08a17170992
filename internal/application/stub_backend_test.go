package application_test

import (
	"context"

	"github.com/smellview/smellview/internal/domain"
)

// stubBackend is an in-memory domain.Backend.
type stubBackend struct {
	projects     []domain.Project
	refactorings []domain.Refactoring
	smells       map[string][]domain.BadSmell
	commits      map[string][]domain.Commit
	configs      map[string]domain.ProjectConfig
	err          error

	refactored  [][]string
	added       []domain.Project
	savedConfig []domain.ProjectConfig
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		smells:  map[string][]domain.BadSmell{},
		commits: map[string][]domain.Commit{},
		configs: map[string]domain.ProjectConfig{},
	}
}

func (b *stubBackend) Projects(context.Context) ([]domain.Project, error) {
	return b.projects, b.err
}

func (b *stubBackend) AvailableRefactorings(context.Context) ([]domain.Refactoring, error) {
	return b.refactorings, b.err
}

func (b *stubBackend) BadSmellsForHash(_ context.Context, hash string) ([]domain.BadSmell, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.smells[hash], nil
}

func (b *stubBackend) AddProject(_ context.Context, name, url string) (domain.Project, error) {
	if b.err != nil {
		return domain.Project{}, b.err
	}
	p := domain.Project{ProjectName: name, ProjectURL: url}
	b.added = append(b.added, p)
	return p, nil
}

func (b *stubBackend) Refactor(_ context.Context, ids []string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.refactored = append(b.refactored, ids)
	return "Refactoring done", nil
}

func (b *stubBackend) Login(context.Context) (string, error) {
	return "logged in", b.err
}

func (b *stubBackend) ProjectConfig(_ context.Context, url string) (domain.ProjectConfig, error) {
	if b.err != nil {
		return domain.ProjectConfig{}, b.err
	}
	cfg, ok := b.configs[url]
	if !ok {
		return domain.ProjectConfig{}, domain.ErrNotFound
	}
	return cfg, nil
}

func (b *stubBackend) AddProjectConfig(_ context.Context, cfg domain.ProjectConfig) (domain.ProjectConfig, error) {
	if b.err != nil {
		return domain.ProjectConfig{}, b.err
	}
	b.savedConfig = append(b.savedConfig, cfg)
	b.configs[cfg.ProjectURL] = cfg
	return cfg, nil
}

func (b *stubBackend) GitHubCommits(_ context.Context, name string) ([]domain.Commit, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.commits[name], nil
}
