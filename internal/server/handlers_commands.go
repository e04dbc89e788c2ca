package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"command-forge/internal/formatter"
	"command-forge/internal/generator"
	"command-forge/internal/spec"
	"command-forge/internal/storage"
	"command-forge/internal/template"
)

type createRequest struct {
	spec.CommandSpec
	Overwrite bool `json:"overwrite,omitempty"`
}

func (s *Server) handleCreateCommand(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	artifact, err := s.gen.Generate(&req.CommandSpec)
	if err != nil {
		var verr *spec.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, r, http.StatusBadRequest, "command validation failed", verr.Problems...)
		case errors.Is(err, template.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "template not found: "+req.Template)
		default:
			writeError(w, r, http.StatusInternalServerError, "generation failed: "+err.Error())
		}
		return
	}
	artifact.Code = formatter.Format(artifact.Code)

	if err := s.store.Save(r.Context(), artifact, req.Overwrite); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			writeError(w, r, http.StatusConflict, "command already exists: "+artifact.Name)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to save command: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, artifact)
}

func (s *Server) handleListCommands(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to list commands: "+err.Error())
		return
	}
	if list == nil {
		list = []*generator.Artifact{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetCommand(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	artifact, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "command not found: "+name)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to load command: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, artifact)
}

func (s *Server) handleDeleteCommand(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := s.store.Delete(r.Context(), name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "command not found: "+name)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to delete command: "+err.Error())
		return
	}
	s.gen.Invalidate(name)

	writeJSON(w, http.StatusOK, map[string]string{"deleted": name})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
