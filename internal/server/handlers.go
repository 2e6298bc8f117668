package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/conneroisu/vlistdata/internal/dataset"
	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/validation"
	"github.com/conneroisu/vlistdata/internal/version"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	params := validation.ParseListParams(r.URL.Query(), s.limits)

	if !s.delay(w, r, params.Delay) {
		return
	}

	page := dataset.Window(params.Offset, params.Limit, params.Total)
	w.Header().Set(headerTotalCount, strconv.Itoa(page.Total))
	s.writeJSON(w, r, page)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	segment := r.PathValue("id")
	params := validation.ParseDetailParams(r.URL.Query(), s.limits)

	if !s.delay(w, r, params.Delay) {
		return
	}

	id, ok := validation.ParseUserID(segment)
	if !ok {
		s.writeError(w, r, errors.ErrUserNotFound(segment, params.Total))
		return
	}
	user, found := dataset.ByID(id, params.Total)
	if !found {
		s.writeError(w, r, errors.ErrUserNotFound(segment, params.Total))
		return
	}

	s.writeJSON(w, r, user)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.info)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, HealthResponse{
		Status:  "ok",
		Version: version.GetShortVersion(),
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.ErrRouteNotFound(r.URL.Path))
}

// delay performs the requested artificial latency. It reports false, after
// answering the request, when the wait was cut short.
func (s *Server) delay(w http.ResponseWriter, r *http.Request, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	if err := s.sleep(r.Context(), d); err != nil {
		s.logger.Debug(r.Context(), "Delay interrupted", "delay_ms", d.Milliseconds(), "reason", err.Error())
		if r.Context().Err() == context.Canceled && s.baseCtx.Err() == nil {
			// client went away; nobody is listening for an answer
			return false
		}
		s.writeError(w, r, errors.ErrUnavailable("request abandoned during shutdown"))
		return false
	}
	return true
}

// writeJSON encodes v before writing any header so an encoding failure can
// still produce a proper error response.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.writeError(w, r, errors.NewInternalError(errors.ErrCodeInternalError, "failed to encode response", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.StatusOf(err) >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), err, "Request failed", "path", r.URL.Path)
	} else if errors.IsNotFound(err) {
		s.logger.Debug(r.Context(), "Not found", "path", r.URL.Path, "reason", err.Error())
	}
	if werr := errors.WriteJSON(w, err); werr != nil {
		s.logger.Warn(r.Context(), werr, "Failed to write error response")
	}
}
