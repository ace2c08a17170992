package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/smellview/smellview/internal/domain"
	"github.com/smellview/smellview/internal/observability"
)

// SmellService fetches a commit's bad smells and cleans them for display:
// fetch -> cache raw -> dedupe by snippet -> filter -> record snapshot.
type SmellService struct {
	backend domain.Backend
	cache   domain.SmellCache
	history domain.SnapshotHistory
	logger  *slog.Logger
	now     func() time.Time
}

// NewSmellService wires the service. cache and history may be nil.
func NewSmellService(
	backend domain.Backend,
	cache domain.SmellCache,
	history domain.SnapshotHistory,
	logger *slog.Logger,
) *SmellService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SmellService{
		backend: backend,
		cache:   cache,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// SmellsResult is the cleaned smell list for one commit.
type SmellsResult struct {
	Project    string            `json:"project,omitempty"`
	CommitHash string            `json:"commit_hash"`
	Smells     []domain.BadSmell `json:"smells"`
	RawCount   int               `json:"raw_count"`
	FromCache  bool              `json:"from_cache"`
}

// SmellsForCommit returns the deduplicated and filtered smells for hash.
// project only labels the recorded history snapshot. When the backend is
// unreachable a cached copy is served instead.
func (s *SmellService) SmellsForCommit(ctx context.Context, project, hash string, filter domain.SmellFilter) (*SmellsResult, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return nil, fmt.Errorf("%w: commit hash is required", domain.ErrInvalidInput)
	}

	raw, fromCache, err := s.fetch(ctx, hash)
	if err != nil {
		return nil, err
	}

	unique := domain.FilterDuplicateBadSmells(raw)
	observability.DuplicateSmellsDropped.Add(float64(len(raw) - len(unique)))

	if !fromCache {
		s.record(project, hash, raw, unique)
	}

	filtered, err := domain.FilterBadSmells(unique, filter)
	if err != nil {
		return nil, err
	}

	return &SmellsResult{
		Project:    project,
		CommitHash: hash,
		Smells:     filtered,
		RawCount:   len(raw),
		FromCache:  fromCache,
	}, nil
}

func (s *SmellService) fetch(ctx context.Context, hash string) ([]domain.BadSmell, bool, error) {
	raw, err := s.backend.BadSmellsForHash(ctx, hash)
	if err == nil {
		if s.cache != nil {
			if cerr := s.cache.Save(hash, raw); cerr != nil {
				s.logger.Warn("caching smells failed", "hash", hash, "error", cerr)
			}
		}
		return raw, false, nil
	}

	if s.cache == nil || !errors.Is(err, domain.ErrBackendUnavailable) {
		return nil, false, fmt.Errorf("fetching smells for %s: %w", hash, err)
	}

	cached, ok, cerr := s.cache.Load(hash)
	if cerr != nil || !ok {
		observability.SmellCacheHits.WithLabelValues("miss").Inc()
		return nil, false, fmt.Errorf("fetching smells for %s: %w", hash, err)
	}
	observability.SmellCacheHits.WithLabelValues("hit").Inc()
	s.logger.Warn("backend unavailable, serving cached smells", "hash", hash, "error", err)
	return cached, true, nil
}

// record stores a history snapshot. Failures are logged, not returned.
func (s *SmellService) record(project, hash string, raw, unique []domain.BadSmell) {
	if s.history == nil {
		return
	}
	snap := domain.CommitSnapshot{
		Project:     project,
		CommitHash:  hash,
		FetchedAt:   s.now().UTC(),
		RawCount:    len(raw),
		UniqueCount: len(unique),
		RuleCounts:  domain.CountByRule(unique),
	}
	if err := s.history.Save(snap); err != nil {
		s.logger.Warn("recording snapshot failed", "hash", hash, "error", err)
	}
}

// History returns recorded snapshots for project, oldest first.
func (s *SmellService) History(project string) ([]domain.CommitSnapshot, error) {
	if s.history == nil {
		return nil, nil
	}
	snaps, err := s.history.Load(project)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return snaps, nil
}

// InvalidateCache drops the cached response for hash.
func (s *SmellService) InvalidateCache(hash string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(hash)
}
