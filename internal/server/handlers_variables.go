package server

import (
	"net/http"

	"command-forge/internal/catalogue"
)

func (s *Server) handleListVariables(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	if category == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": catalogue.Categories(),
			"variables":  catalogue.All(),
		})
		return
	}

	entries := catalogue.ByCategory(catalogue.Category(category))
	if entries == nil {
		writeError(w, r, http.StatusNotFound, "unknown variable category: "+category)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category":  category,
		"variables": entries,
	})
}

func (s *Server) handleSearchVariables(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")

	matches := catalogue.Search(term)
	if matches == nil {
		matches = []catalogue.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"term":    term,
		"matches": matches,
	})
}
