package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"command-forge/internal/formatter"
	"command-forge/internal/spec"
	"command-forge/internal/template"
)

type templateInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Options     []spec.OptionSpec `json:"options,omitempty"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	units := template.List(category)
	if category != "" && len(units) == 0 {
		writeError(w, r, http.StatusNotFound, "unknown template category: "+category)
		return
	}

	infos := make([]templateInfo, 0, len(units))
	for _, u := range units {
		infos = append(infos, templateInfo{
			Name:        u.Name,
			Description: u.Description,
			Category:    u.Category,
			Options:     u.Options,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": template.Categories(),
		"templates":  infos,
	})
}

// handlePreviewTemplate generates code for a spec without persisting
// anything, so the caller can see what a template produces before
// committing to a name.
func (s *Server) handlePreviewTemplate(w http.ResponseWriter, r *http.Request) {
	var req spec.CommandSpec
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	artifact, err := s.gen.Generate(&req)
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
	s.gen.Invalidate(req.Name)

	writeJSON(w, http.StatusOK, map[string]string{
		"name": artifact.Name,
		"code": formatter.Format(artifact.Code),
	})
}
