package storage

import (
	"context"
	"errors"
	"fmt"

	"command-forge/internal/generator"
	"command-forge/pkg/datastore"
)

// FileStore keeps artifacts in a single local JSON file through the
// document store, one document per command name.
type FileStore struct {
	db *datastore.Store
}

func NewFileStore(path string) (*FileStore, error) {
	db, err := datastore.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open command store: %w", err)
	}
	return &FileStore{db: db}, nil
}

func (s *FileStore) Save(_ context.Context, artifact *generator.Artifact, overwrite bool) error {
	if !overwrite && s.db.Has(artifact.Name) {
		return fmt.Errorf("%w: %s", ErrConflict, artifact.Name)
	}
	return s.db.Put(artifact.Name, artifact)
}

func (s *FileStore) Load(_ context.Context, name string) (*generator.Artifact, error) {
	var artifact generator.Artifact
	if err := s.db.Get(name, &artifact); err != nil {
		if errors.Is(err, datastore.ErrNoDocument) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return &artifact, nil
}

func (s *FileStore) Delete(_ context.Context, name string) error {
	if err := s.db.Delete(name); err != nil {
		if errors.Is(err, datastore.ErrNoDocument) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return nil
}

func (s *FileStore) List(_ context.Context) ([]*generator.Artifact, error) {
	names := s.db.Keys()
	out := make([]*generator.Artifact, 0, len(names))
	for _, name := range names {
		var artifact generator.Artifact
		if err := s.db.Get(name, &artifact); err != nil {
			// deleted between Keys and Get
			if errors.Is(err, datastore.ErrNoDocument) {
				continue
			}
			return nil, err
		}
		out = append(out, &artifact)
	}
	return out, nil
}

func (s *FileStore) Close() error {
	return s.db.Close()
}
