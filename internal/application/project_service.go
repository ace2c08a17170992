package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smellview/smellview/internal/domain"
)

// ProjectService serves project listings, registrations and per-project
// configuration to the UI surfaces.
type ProjectService struct {
	backend domain.Backend
	logger  *slog.Logger
}

func NewProjectService(backend domain.Backend, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectService{backend: backend, logger: logger}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.backend.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}
	return domain.FilterDuplicates(projects), nil
}

// AddProject registers a repository. When name is empty it is derived from
// the URL's repository segment.
func (s *ProjectService) AddProject(ctx context.Context, name, url string) (domain.Project, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.Project{}, fmt.Errorf("%w: project url is required", domain.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		ownerRepo := domain.OwnerRepoName(url)
		name = ownerRepo[strings.LastIndex(ownerRepo, "/")+1:]
	}
	if name == "" {
		return domain.Project{}, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}

	p, err := s.backend.AddProject(ctx, name, url)
	if err != nil {
		return domain.Project{}, fmt.Errorf("adding project %s: %w", name, err)
	}
	s.logger.Info("project added", "project", p.ProjectName, "url", p.ProjectURL)
	return p, nil
}

func (s *ProjectService) Commits(ctx context.Context, projectName string) ([]domain.Commit, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}
	commits, err := s.backend.GitHubCommits(ctx, projectName)
	if err != nil {
		return nil, fmt.Errorf("fetching commits for %s: %w", projectName, err)
	}
	return commits, nil
}

func (s *ProjectService) Config(ctx context.Context, projectURL string) (domain.ProjectConfig, error) {
	if strings.TrimSpace(projectURL) == "" {
		return domain.ProjectConfig{}, fmt.Errorf("%w: project url is required", domain.ErrInvalidInput)
	}
	cfg, err := s.backend.ProjectConfig(ctx, projectURL)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("fetching config for %s: %w", projectURL, err)
	}
	return cfg, nil
}

// SaveConfig stores cfg, defaulting an empty source folder to ".".
func (s *ProjectService) SaveConfig(ctx context.Context, cfg domain.ProjectConfig) (domain.ProjectConfig, error) {
	cfg.ProjectURL = strings.TrimSpace(cfg.ProjectURL)
	if cfg.ProjectURL == "" {
		return domain.ProjectConfig{}, fmt.Errorf("%w: project url is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(cfg.SourceFolder) == "" {
		cfg.SourceFolder = domain.DefaultSourceFolder
	}
	saved, err := s.backend.AddProjectConfig(ctx, cfg)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("saving config for %s: %w", cfg.ProjectURL, err)
	}
	s.logger.Info("project config saved", "url", saved.ProjectURL, "source_folder", saved.SourceFolder)
	return saved, nil
}
