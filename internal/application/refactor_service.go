package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smellview/smellview/internal/domain"
)

// RefactorService lists automatic refactorings and triggers them.
type RefactorService struct {
	backend domain.Backend
	logger  *slog.Logger
}

func NewRefactorService(backend domain.Backend, logger *slog.Logger) *RefactorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefactorService{backend: backend, logger: logger}
}

func (s *RefactorService) AvailableRefactorings(ctx context.Context) ([]domain.Refactoring, error) {
	refs, err := s.backend.AvailableRefactorings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching refactorings: %w", err)
	}
	return refs, nil
}

// Refactor asks the backend to fix the given bad smells. Blank and repeated
// identifiers are dropped before sending.
func (s *RefactorService) Refactor(ctx context.Context, identifiers []string) (string, error) {
	ids := make([]string, 0, len(identifiers))
	seen := make(map[string]bool, len(identifiers))
	for _, id := range identifiers {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("%w: at least one bad smell identifier is required", domain.ErrInvalidInput)
	}

	status, err := s.backend.Refactor(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("refactoring %d smells: %w", len(ids), err)
	}
	s.logger.Info("refactoring requested", "count", len(ids), "status", status)
	return status, nil
}

func (s *RefactorService) Login(ctx context.Context) (string, error) {
	status, err := s.backend.Login(ctx)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return status, nil
}
