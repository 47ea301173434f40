package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/errors"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCacheStatus(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.taxCache.Status())
}

// handleTaxonomy serves the taxonomy snapshot, fetching it from the
// remote authority when no usable snapshot exists.
func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	if tax, ok := s.taxCache.Load(); ok {
		s.respond(w, http.StatusOK, tax)
		return
	}
	if s.fetcher == nil {
		s.respondError(w, errors.New(errors.ErrCodeNotFound, "no taxonomy snapshot available"))
		return
	}
	tax, err := s.fetcher.FetchLicenses(r.Context())
	if err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeNetwork, err, "failed to fetch license taxonomy"))
		return
	}
	s.respond(w, http.StatusOK, tax)
}

type createScanRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleCreateScan(w http.ResponseWriter, r *http.Request) {
	var req createScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.New(errors.ErrCodeInvalidPath, "request body must be JSON with a path field"))
		return
	}

	result, err := s.auditor.Run(r.Context(), req.Path)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.storeScan(r, result); err != nil {
		s.logger.Warn("failed to persist scan result", "run_id", result.RunID, "error", err)
	}
	s.respond(w, http.StatusCreated, result)
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		s.respondError(w, errors.New(errors.ErrCodeScanNotFound, "scan IDs are UUIDs"))
		return
	}

	data, found, err := s.backend.Get(r.Context(), s.keyer.ScanKey(id))
	if err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeCache, err, "failed to read scan result"))
		return
	}
	if !found {
		s.respondError(w, errors.New(errors.ErrCodeScanNotFound, "no scan with that ID"))
		return
	}

	var result audit.Result
	if err := json.Unmarshal(data, &result); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeCache, err, "stored scan result is corrupt"))
		return
	}
	s.respond(w, http.StatusOK, &result)
}

func (s *Server) storeScan(r *http.Request, result *audit.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.backend.Set(r.Context(), s.keyer.ScanKey(result.RunID), data, scanTTL)
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	s.respond(w, statusFor(code), errorResponse{
		Code:  string(code),
		Error: errors.UserMessage(err),
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidPath, errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidPackage, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePackageNotFound, errors.ErrCodeScanNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
