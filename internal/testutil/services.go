package testutil

import (
	"path/filepath"
	"testing"

	"github.com/smellview/smellview/internal/adapters/outbound/cache"
	"github.com/smellview/smellview/internal/adapters/outbound/graphql"
	"github.com/smellview/smellview/internal/adapters/outbound/history"
	"github.com/smellview/smellview/internal/application"
	"github.com/smellview/smellview/internal/domain"
)

// NewServices wires the application services against fb, with the cache and
// history stored under a per-test temp dir.
func NewServices(t *testing.T, fb *FakeBackend) application.Services {
	t.Helper()
	dir := t.TempDir()

	cfg := domain.DefaultClientConfig()
	cfg.Endpoint = fb.URL
	cfg.RequestsPerSecond = 0
	client := graphql.NewClient(cfg)

	hist, err := history.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("opening history: %v", err)
	}
	t.Cleanup(func() { _ = hist.Close() })

	return application.Services{
		Projects:  application.NewProjectService(client, nil),
		Smells:    application.NewSmellService(client, cache.New(filepath.Join(dir, "cache")), hist, nil),
		Refactors: application.NewRefactorService(client, nil),
	}
}
