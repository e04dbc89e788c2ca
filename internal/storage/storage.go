// Package storage persists generated command artifacts. Two backends
// exist: a local JSON document store and a GitHub repository written
// through the contents API. Both expose the same Store interface so
// the server does not care where artifacts live.
package storage

import (
	"context"
	"errors"
	"fmt"

	"command-forge/internal/config"
	"command-forge/internal/generator"
)

var (
	// ErrNotFound is returned when no artifact exists under the name.
	ErrNotFound = errors.New("command not found")

	// ErrConflict is returned by Save when an artifact already exists
	// under the name and overwriting was not requested.
	ErrConflict = errors.New("command already exists")
)

type Store interface {
	// Save persists an artifact. With overwrite false an existing
	// artifact under the same name is an ErrConflict.
	Save(ctx context.Context, artifact *generator.Artifact, overwrite bool) error
	Load(ctx context.Context, name string) (*generator.Artifact, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*generator.Artifact, error)
	Close() error
}

// New builds the store selected by the configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "", "file":
		return NewFileStore(cfg.StoragePath)
	case "github":
		return NewGitHubStore(GitHubConfig{
			Token:  cfg.GitHubToken,
			Owner:  cfg.GitHubOwner,
			Repo:   cfg.GitHubRepo,
			Path:   cfg.GitHubPath,
			Branch: cfg.GitHubBranch,
		}), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
