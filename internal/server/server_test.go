package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"command-forge/internal/config"
	"command-forge/internal/generator"
	"command-forge/internal/storage"
)

const testToken = "test-secret"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "commands.json"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{ListenAddr: ":0", APIToken: testToken}
	return New(cfg, store).routes()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Api-Token", testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func slashSpec(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "Test command",
		"type":        "slash",
		"content":     "Hello {user.username}!",
	}
}

func TestAuthRequired(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/commands", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("X-Api-Token", "wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthNeedsNoToken(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCommand(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/commands/create", slashSpec("greet"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var artifact generator.Artifact
	decodeBody(t, rec, &artifact)
	assert.Equal(t, "greet", artifact.Name)
	assert.Contains(t, artifact.Code, "${user.username}")
	assert.True(t, strings.HasSuffix(artifact.Code, "\n"))
}

func TestCreateCommandValidation(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/commands/create", map[string]any{
		"name": "bad name", "description": "", "type": "cron",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error    string   `json:"error"`
		Problems []string `json:"problems"`
	}
	decodeBody(t, rec, &resp)
	assert.GreaterOrEqual(t, len(resp.Problems), 3)
}

func TestCreateCommandUnknownTemplate(t *testing.T) {
	h := newTestServer(t)

	body := slashSpec("ghost")
	body["template"] = "no-such-template"
	rec := doRequest(t, h, http.MethodPost, "/api/commands/create", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCommandConflict(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/commands/create", slashSpec("greet"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/commands/create", slashSpec("greet"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	body := slashSpec("greet")
	body["overwrite"] = true
	rec = doRequest(t, h, http.MethodPost, "/api/commands/create", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetListDeleteCommand(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/commands/create", slashSpec("greet"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/commands/greet", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/commands", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []generator.Artifact
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "greet", list[0].Name)

	rec = doRequest(t, h, http.MethodDelete, "/api/commands/greet", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/commands/greet", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCommandsEmpty(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/commands", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestListTemplates(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []string       `json:"categories"`
		Templates  []templateInfo `json:"templates"`
	}
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.Categories, "moderation")
	assert.NotEmpty(t, resp.Templates)

	rec = doRequest(t, h, http.MethodGet, "/api/templates/moderation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	for _, info := range resp.Templates {
		assert.Equal(t, "moderation", info.Category)
	}

	rec = doRequest(t, h, http.MethodGet, "/api/templates/nonsense", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreviewTemplate(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/templates/preview", map[string]any{
		"name": "ping", "description": "Latency check", "type": "slash", "template": "ping",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp["code"], "ws.ping")

	// preview persists nothing
	rec = doRequest(t, h, http.MethodGet, "/api/commands/ping", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListVariables(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/variables", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user.username")

	rec = doRequest(t, h, http.MethodGet, "/api/variables/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user.username")

	rec = doRequest(t, h, http.MethodGet, "/api/variables/nonsense", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchVariables(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/variables/search/avatar", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "avatar")

	rec = doRequest(t, h, http.MethodGet, "/api/variables/search/zzzzz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Matches []any `json:"matches"`
	}
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Matches)
}
