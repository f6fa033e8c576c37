// Package server exposes route resolution over HTTP for editor and tooling
// integrations that prefer a local endpoint over shelling out.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/routelens/routelens/pkg/detector"
	"github.com/routelens/routelens/pkg/resolver"
	"github.com/routelens/routelens/pkg/scanner"
)

// Server serves resolution requests for one project.
type Server struct {
	projectRoot string
	cfg         resolver.Config
	router      chi.Router
	resolver    *resolver.Resolver
	http        *http.Server
}

// New creates a server for the given project root and resolver config.
func New(projectRoot string, cfg resolver.Config) *Server {
	s := &Server{
		projectRoot: projectRoot,
		cfg:         cfg,
		router:      chi.NewRouter(),
		resolver:    resolver.New(nil),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Post("/v1/resolve", s.handleResolve)
	s.router.Post("/v1/detect", s.handleDetect)
	s.router.Get("/v1/routes", s.handleRoutes)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Listen starts the server on addr and blocks until it stops.
func (s *Server) Listen(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

// Close shuts the listener down.
func (s *Server) Close() error {
	if s.http == nil {
		return nil
	}
	return s.http.Close()
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// resolveRequest is the body of POST /v1/resolve.
type resolveRequest struct {
	Route string `json:"route"`
}

// resolveResponse reports where a route's definition file lives. FilePath is
// populated even when Exists is false so clients can offer to create it.
type resolveResponse struct {
	Route    string `json:"route"`
	FilePath string `json:"filePath"`
	Exists   bool   `json:"exists"`
	ViaGroup bool   `json:"viaGroup,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Route == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("route is required"))
		return
	}

	writeJSON(w, http.StatusOK, s.resolve(req.Route))
}

// resolve runs direct resolution with the group-aware fallback.
func (s *Server) resolve(route string) resolveResponse {
	res := s.resolver.ResolveDirect(route, s.projectRoot, s.cfg)
	resp := resolveResponse{Route: route, FilePath: res.FilePath, Exists: res.Exists}
	if !res.Exists {
		if path, ok := s.resolver.ResolveWithGroups(route, s.projectRoot, s.cfg); ok {
			resp.FilePath = path
			resp.Exists = true
			resp.ViaGroup = true
		}
	}
	return resp
}

// detectRequest is the body of POST /v1/detect. File is relative to the
// project root or absolute; Offset is a byte offset into the file.
type detectRequest struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
}

// detectResponse reports the route literal at the cursor, if any, and where
// its definition file lives.
type detectResponse struct {
	Found       bool   `json:"found"`
	Route       string `json:"route,omitempty"`
	StartOffset int    `json:"startOffset,omitempty"`
	EndOffset   int    `json:"endOffset,omitempty"`
	FilePath    string `json:"filePath,omitempty"`
	Exists      bool   `json:"exists,omitempty"`
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.File == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("file is required"))
		return
	}

	path := req.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.projectRoot, path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("read %s: %w", req.File, err))
		return
	}

	lit, err := detector.NewParser().DetectAt(r.Context(), source, req.Offset)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if lit == nil {
		// Not sitting on a route literal: a normal outcome, not an error.
		writeJSON(w, http.StatusOK, detectResponse{Found: false})
		return
	}

	resolved := s.resolve(lit.Text)
	writeJSON(w, http.StatusOK, detectResponse{
		Found:       true,
		Route:       lit.Text,
		StartOffset: lit.StartOffset,
		EndOffset:   lit.EndOffset,
		FilePath:    resolved.FilePath,
		Exists:      resolved.Exists,
	})
}

// routesResponse is the body of GET /v1/routes.
type routesResponse struct {
	Routes []routeEntry `json:"routes"`
	Total  int          `json:"total"`
}

type routeEntry struct {
	Route   string `json:"route"`
	Pattern string `json:"pattern"`
	File    string `json:"file"`
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	appDir := filepath.Join(s.projectRoot, s.cfg.AppDir)
	result, err := scanner.New(appDir, s.cfg.DefinitionBase).Scan()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := routesResponse{Routes: make([]routeEntry, 0, len(result.Routes))}
	for _, route := range result.Routes {
		resp.Routes = append(resp.Routes, routeEntry{
			Route:   route.Route,
			Pattern: route.Pattern,
			File:    route.FilePath,
		})
	}
	resp.Total = len(resp.Routes)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
