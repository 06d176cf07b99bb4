package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/logger"
	"github.com/soochol/awsblogs/internal/tools"
)

// Error codes returned in the "code" field of error bodies.
const (
	codeBadRequest       = "bad_request"
	codeInvalidInput     = "invalid_input"
	codeInvalidURL       = "invalid_url"
	codeCategoryNotFound = "category_not_found"
	codeToolNotFound     = "tool_not_found"
	codeFetchFailure     = "fetch_failure"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternal         = "internal_error"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler writes a response for err and reports whether it did.
type errorHandler func(w http.ResponseWriter, err error) bool

var errorHandlers = []errorHandler{
	sentinelHandler(blog.ErrInvalidInput, http.StatusBadRequest, codeInvalidInput),
	sentinelHandler(blog.ErrInvalidURL, http.StatusBadRequest, codeInvalidURL),
	sentinelHandler(blog.ErrCategoryNotFound, http.StatusNotFound, codeCategoryNotFound),
	sentinelHandler(tools.ErrUnknownTool, http.StatusNotFound, codeToolNotFound),
	sentinelHandler(blog.ErrFetchFailure, http.StatusBadGateway, codeFetchFailure),
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

// handleToolError maps a tool error to its HTTP status.
func handleToolError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range errorHandlers {
		if h(w, err) {
			return
		}
	}
	logger.FromContext(r.Context()).Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
