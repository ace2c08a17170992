package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smellview/smellview/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in a directory.
	FileName = ".smellview.yaml"

	EnvEndpoint = "SMELLVIEW_ENDPOINT"
	EnvToken    = "SMELLVIEW_TOKEN"
)

// YAMLLoader implements domain.ConfigLoader by reading .smellview.yaml.
type YAMLLoader struct {
	getenv func(string) string
}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader reading overrides from the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader { return &YAMLLoader{getenv: getenv} }

// Load reads the config at path. A directory path is joined with FileName.
// Returns DefaultClientConfig plus env overrides if the file does not exist.
// Keys present in the file replace the defaults, including explicit zero
// values. The result is not validated: callers apply their own overrides
// first and then call Validate.
func (l *YAMLLoader) Load(path string) (domain.ClientConfig, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	cfg := domain.DefaultClientConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return domain.ClientConfig{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ClientConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	}

	if v := l.getenv(EnvEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := l.getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}
