package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxRequestBody caps tool argument payloads.
const maxRequestBody = 1 << 20

// listTools returns every registered tool with its input schema.
func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.toolReg.AllTools())
}

// callTool runs one tool with the JSON object body as its arguments. An
// empty body means no arguments.
func (s *Server) callTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	args := map[string]any{}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.toolReg.Execute(r.Context(), name, args)
	if err != nil {
		handleToolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	result, err := s.toolReg.Execute(r.Context(), "list_blog_categories", nil)
	if err != nil {
		handleToolError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
