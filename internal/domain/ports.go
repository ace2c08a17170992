package domain

import "context"

// Backend is the bad-smell analysis service reached over GraphQL.
type Backend interface {
	Projects(ctx context.Context) ([]Project, error)
	AvailableRefactorings(ctx context.Context) ([]Refactoring, error)
	BadSmellsForHash(ctx context.Context, hash string) ([]BadSmell, error)
	AddProject(ctx context.Context, name, url string) (Project, error)
	Refactor(ctx context.Context, identifiers []string) (string, error)
	Login(ctx context.Context) (string, error)
	ProjectConfig(ctx context.Context, projectURL string) (ProjectConfig, error)
	AddProjectConfig(ctx context.Context, cfg ProjectConfig) (ProjectConfig, error)
	GitHubCommits(ctx context.Context, projectName string) ([]Commit, error)
}

// SmellCache keeps the last raw bad-smell response per commit hash.
type SmellCache interface {
	Load(hash string) ([]BadSmell, bool, error)
	Save(hash string, smells []BadSmell) error
	Invalidate(hash string) error
}

// SnapshotHistory records one summary per fetched commit.
type SnapshotHistory interface {
	Save(snapshot CommitSnapshot) error
	Load(project string) ([]CommitSnapshot, error)
}

// GitInfo reads metadata from a local checkout.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	RecentCommits(path string, n int) ([]string, error)
	RemoteURL(path string) (string, error)
}

// ConfigLoader loads client configuration.
type ConfigLoader interface {
	Load(path string) (ClientConfig, error)
}
