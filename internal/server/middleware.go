package server

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/conneroisu/vlistdata/internal/errors"
	"github.com/conneroisu/vlistdata/internal/logging"
	"github.com/conneroisu/vlistdata/internal/validation"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// chain applies middlewares so that the first one listed runs first.
func chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

const (
	headerRequestID  = "X-Request-ID"
	headerTotalCount = "X-Total-Count"

	maxRequestIDLength = 128
)

var allowedMethods = []string{http.MethodGet, http.MethodOptions}

// statusRecorder captures the status code and body size for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errors.NewInternalError(errors.ErrCodeInternalError, "internal server error",
					fmt.Errorf("panic: %v", rec))
				s.logger.Error(r.Context(), err, "Recovered from panic", "path", r.URL.Path)
				_ = errors.WriteJSON(w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware keeps a well-formed incoming X-Request-ID or assigns
// a new UUID, echoes it and stores it in the request context.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		w.Header().Set(headerRequestID, id)
		ctx := logging.ContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) || c == ' ' {
			return false
		}
	}
	return true
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info(r.Context(), "Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", rec.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware allows any origin when no origins are configured.
// Otherwise only listed origins are echoed back and others get no
// Access-Control-Allow-Origin header.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowed := s.config.Server.AllowedOrigins
	methods := strings.Join(allowedMethods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		if len(allowed) == 0 {
			h.Set("Access-Control-Allow-Origin", "*")
		} else {
			h.Add("Vary", "Origin")
			origin := r.Header.Get("Origin")
			if validation.ValidateOrigin(origin, allowed) == nil {
				h.Set("Access-Control-Allow-Origin", origin)
			}
		}

		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+headerRequestID)
		h.Set("Access-Control-Expose-Headers", headerTotalCount+", "+headerRequestID)
		h.Set("Access-Control-Max-Age", "600")

		next.ServeHTTP(w, r)
	})
}

// methodGuardMiddleware answers preflight requests and rejects anything
// other than GET before routing.
func methodGuardMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			// ServeMux would answer unclean paths with an HTML redirect.
			if r.URL.Path != cleanPath(r.URL.Path) {
				_ = errors.WriteJSON(w, errors.ErrRouteNotFound(r.URL.Path))
				return
			}
			next.ServeHTTP(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
		default:
			_ = errors.WriteJSON(w, errors.ErrMethodNotAllowed(r.Method, allowedMethods...))
		}
	})
}

// cleanPath returns the canonical form ServeMux routes on, keeping a
// trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}
