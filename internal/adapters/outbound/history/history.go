package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/smellview/smellview/internal/domain"
)

const (
	driverName  = "sqlite"
	maxAttempts = 5
)

// Store implements domain.SnapshotHistory on a SQLite file.
type Store struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

var _ domain.SnapshotHistory = (*Store)(nil)

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("history path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("history path %q is a directory, expected file", cleanPath)
	}

	dir := filepath.Dir(cleanPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory %q: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", cleanPath)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite history %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite history %q: %w", cleanPath, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize sqlite schema %q: %w", cleanPath, err)
	}
	return &Store{path: cleanPath, db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Path() string { return s.path }

// Save upserts the snapshot for (project, commit hash).
func (s *Store) Save(snapshot domain.CommitSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(snapshot.CommitHash) == "" {
		return fmt.Errorf("%w: snapshot without commit hash", domain.ErrInvalidInput)
	}
	project := strings.TrimSpace(snapshot.Project)
	if project == "" {
		project = "default"
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now().UTC()
	}
	counts := snapshot.RuleCounts
	if counts == nil {
		counts = map[string]int{}
	}
	countsJSON, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encode rule counts: %w", err)
	}

	query := `
INSERT INTO commit_snapshots (project, commit_hash, fetched_at_utc, raw_count, unique_count, rule_counts_json)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(project, commit_hash) DO UPDATE SET
  fetched_at_utc=excluded.fetched_at_utc,
  raw_count=excluded.raw_count,
  unique_count=excluded.unique_count,
  rule_counts_json=excluded.rule_counts_json
`
	return s.withRetry("save snapshot", func() error {
		_, err := s.db.Exec(query,
			project,
			snapshot.CommitHash,
			snapshot.FetchedAt.UTC().Format(time.RFC3339Nano),
			snapshot.RawCount,
			snapshot.UniqueCount,
			string(countsJSON),
		)
		return err
	})
}

// Load returns the project's snapshots, oldest first.
func (s *Store) Load(project string) ([]domain.CommitSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project = strings.TrimSpace(project)
	if project == "" {
		project = "default"
	}

	var rows *sql.Rows
	err := s.withRetry("load snapshots", func() error {
		var qErr error
		rows, qErr = s.db.Query(`
SELECT project, commit_hash, fetched_at_utc, raw_count, unique_count, rule_counts_json
FROM commit_snapshots
WHERE project = ?
ORDER BY fetched_at_utc ASC, commit_hash ASC`, project)
		return qErr
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]domain.CommitSnapshot, 0)
	for rows.Next() {
		var (
			snap       domain.CommitSnapshot
			fetchedRaw string
			countsRaw  string
		)
		if err := rows.Scan(&snap.Project, &snap.CommitHash, &fetchedRaw, &snap.RawCount, &snap.UniqueCount, &countsRaw); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, fetchedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse snapshot timestamp %q: %w", fetchedRaw, err)
		}
		snap.FetchedAt = ts.UTC()
		if err := json.Unmarshal([]byte(countsRaw), &snap.RuleCounts); err != nil {
			return nil, fmt.Errorf("parse rule counts for %s: %w", snap.CommitHash, err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return snapshots, nil
}

func (s *Store) withRetry(op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isLockError(err) || attempt == maxAttempts {
			break
		}
		time.Sleep(time.Duration(attempt*25) * time.Millisecond)
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}

func isLockError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy")
}
