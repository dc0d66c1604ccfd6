// Package server provides the HTTP handlers and routing for the MCP
// registry server.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dynamic-mcp/internal/registry"
)

// Config contains server configuration values.
type Config struct {
	Port string
}

// Server contains the configured router, registry, and logger.
type Server struct {
	cfg      Config
	router   *chi.Mux
	registry *registry.Registry
	logger   *zap.Logger
}

// New constructs a Server with middleware and routes configured.
func New(cfg Config, reg *registry.Registry, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		registry: reg,
		logger:   logger,
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/list-endpoints", s.handleListEndpoints)

	s.router.Route("/mcp", func(r chi.Router) {
		r.Get("/{endpoint}", s.handleConfig)
		r.Get("/{endpoint}/server", s.handleServerInfo)
		r.Get("/{endpoint}/tools", s.handleTools)
		r.Get("/{endpoint}/tools/{toolName}", s.handleTool)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps registry lookup failures onto 404 responses carrying
// the lookup's own message, which enumerates valid alternatives.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var nf *registry.NotFoundError
	if errors.As(err, &nf) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"detail": nf.Error()})
		return
	}
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type endpointInfo struct {
	ServerName string `json:"server_name"`
	ToolsCount int    `json:"tools_count"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	keys := s.registry.Keys()
	info := make(map[string]endpointInfo, len(keys))
	for _, key := range keys {
		cfg, err := s.registry.Get(key)
		if err != nil {
			continue
		}
		info[key] = endpointInfo{
			ServerName: cfg.Server.Name,
			ToolsCount: len(cfg.Tools),
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":             "Dynamic MCP Demo Server",
		"available_endpoints": keys,
		"endpoints_info":      info,
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.registry.Get(chi.URLParam(r, "endpoint"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleServerInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.registry.ServerInfo(chi.URLParam(r, "endpoint"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	tools, err := s.registry.Tools(chi.URLParam(r, "endpoint"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tools)
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	tool, err := s.registry.Tool(chi.URLParam(r, "endpoint"), chi.URLParam(r, "toolName"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tool)
}

type toolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type endpointSummary struct {
	Endpoint          string        `json:"endpoint"`
	ServerName        string        `json:"server_name"`
	ServerVersion     string        `json:"server_version"`
	ServerDescription string        `json:"server_description"`
	Tools             []toolSummary `json:"tools"`
}

func (s *Server) handleListEndpoints(w http.ResponseWriter, _ *http.Request) {
	keys := s.registry.Keys()
	endpoints := make([]endpointSummary, 0, len(keys))
	for _, key := range keys {
		cfg, err := s.registry.Get(key)
		if err != nil {
			continue
		}
		tools := make([]toolSummary, 0, len(cfg.Tools))
		for _, t := range cfg.Tools {
			tools = append(tools, toolSummary{Name: t.Name, Description: t.Description})
		}
		endpoints = append(endpoints, endpointSummary{
			Endpoint:          key,
			ServerName:        cfg.Server.Name,
			ServerVersion:     cfg.Server.Version,
			ServerDescription: cfg.Server.Description,
			Tools:             tools,
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"endpoints": endpoints})
}
