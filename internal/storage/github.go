package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"command-forge/internal/generator"
	"command-forge/pkg/retrylimit"
)

// GitHubConfig identifies the repository location artifacts are
// written to. Each artifact becomes one JSON file under Path.
type GitHubConfig struct {
	Token  string
	Owner  string
	Repo   string
	Path   string
	Branch string

	// BaseURL overrides the API endpoint, empty means api.github.com.
	BaseURL string
}

// GitHubStore persists artifacts through the repository contents API.
// Writes carry the blob SHA obtained from the previous read, which is
// how the API detects concurrent modification. All calls go through an
// adaptive limiter so a burst of saves degrades to whatever rate the
// API tolerates instead of erroring out.
type GitHubStore struct {
	cfg     GitHubConfig
	client  *http.Client
	limiter *retrylimit.AdaptiveLimiter

	mu   sync.Mutex
	shas map[string]string // file path -> last seen blob SHA
}

func NewGitHubStore(cfg GitHubConfig) *GitHubStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	return &GitHubStore{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: retrylimit.NewAdaptiveLimiter(5, 1, 20, 1, 0.5),
		shas:    make(map[string]string),
	}
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("github api: %d %s", e.Status, e.Message)
}

func (e *apiError) StatusCode() int { return e.Status }

type contentsFile struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (s *GitHubStore) filePath(name string) string {
	return strings.TrimSuffix(s.cfg.Path, "/") + "/" + name + ".json"
}

func (s *GitHubStore) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		s.cfg.BaseURL, s.cfg.Owner, s.cfg.Repo, path)
}

func (s *GitHubStore) Save(ctx context.Context, artifact *generator.Artifact, overwrite bool) error {
	path := s.filePath(artifact.Name)

	existing, err := s.fetchFile(ctx, path)
	if err != nil && !isStatus(err, http.StatusNotFound) {
		return fmt.Errorf("failed to check for existing command: %w", err)
	}
	if existing != nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrConflict, artifact.Name)
	}

	content, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal command %q: %w", artifact.Name, err)
	}

	body := map[string]any{
		"message": fmt.Sprintf("Update command %s", artifact.Name),
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  s.cfg.Branch,
	}
	if existing == nil {
		body["message"] = fmt.Sprintf("Add command %s", artifact.Name)
	} else {
		body["sha"] = existing.SHA
	}

	var saved struct {
		Content contentsFile `json:"content"`
	}
	if err := s.do(ctx, http.MethodPut, s.contentsURL(path), body, &saved); err != nil {
		return fmt.Errorf("failed to save command %q: %w", artifact.Name, err)
	}

	s.mu.Lock()
	s.shas[path] = saved.Content.SHA
	s.mu.Unlock()
	return nil
}

func (s *GitHubStore) Load(ctx context.Context, name string) (*generator.Artifact, error) {
	file, err := s.fetchFile(ctx, s.filePath(name))
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to load command %q: %w", name, err)
	}
	return decodeArtifact(file)
}

func (s *GitHubStore) Delete(ctx context.Context, name string) error {
	path := s.filePath(name)

	file, err := s.fetchFile(ctx, path)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("failed to delete command %q: %w", name, err)
	}

	body := map[string]any{
		"message": fmt.Sprintf("Delete command %s", name),
		"sha":     file.SHA,
		"branch":  s.cfg.Branch,
	}
	if err := s.do(ctx, http.MethodDelete, s.contentsURL(path), body, nil); err != nil {
		return fmt.Errorf("failed to delete command %q: %w", name, err)
	}

	s.mu.Lock()
	delete(s.shas, path)
	s.mu.Unlock()
	return nil
}

func (s *GitHubStore) List(ctx context.Context) ([]*generator.Artifact, error) {
	dirURL := s.contentsURL(strings.TrimSuffix(s.cfg.Path, "/")) + "?ref=" + url.QueryEscape(s.cfg.Branch)

	var entries []contentsFile
	if err := s.do(ctx, http.MethodGet, dirURL, nil, &entries); err != nil {
		// directory absent means no commands saved yet
		if isStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}

	out := make([]*generator.Artifact, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "file" || !strings.HasSuffix(entry.Name, ".json") {
			continue
		}
		file, err := s.fetchFile(ctx, entry.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", entry.Path, err)
		}
		artifact, err := decodeArtifact(file)
		if err != nil {
			return nil, err
		}
		out = append(out, artifact)
	}
	return out, nil
}

// Close is a no-op, the store holds no local state worth flushing.
func (s *GitHubStore) Close() error { return nil }

func (s *GitHubStore) fetchFile(ctx context.Context, path string) (*contentsFile, error) {
	u := s.contentsURL(path) + "?ref=" + url.QueryEscape(s.cfg.Branch)

	var file contentsFile
	if err := s.do(ctx, http.MethodGet, u, nil, &file); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.shas[path] = file.SHA
	s.mu.Unlock()
	return &file, nil
}

// do performs one API call under the limiter with retries. Client-side
// errors other than 429 are fatal: retrying a 404 or 422 only burns
// the rate budget.
func (s *GitHubStore) do(ctx context.Context, method, u string, body, out any) error {
	return retrylimit.WithRetry(ctx, func() error {
		var reader io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return &retrylimit.FatalError{Err: err}
			}
			reader = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return &retrylimit.FatalError{Err: err}
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			apiErr := &apiError{Status: resp.StatusCode}
			var msg struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
				apiErr.Message = msg.Message
			}
			if resp.StatusCode >= 400 && resp.StatusCode < 500 &&
				resp.StatusCode != http.StatusTooManyRequests {
				return &retrylimit.FatalError{Err: apiErr}
			}
			return apiErr
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &retrylimit.FatalError{Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		return nil
	}, s.limiter)
}

func decodeArtifact(file *contentsFile) (*generator.Artifact, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file.Path, err)
	}
	var artifact generator.Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file.Path, err)
	}
	return &artifact, nil
}

func isStatus(err error, status int) bool {
	for err != nil {
		if apiErr, ok := err.(*apiError); ok {
			return apiErr.Status == status
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
