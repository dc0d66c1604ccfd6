// Package registry holds the static mapping from endpoint names to MCP
// configurations and answers read-only lookups against it.
package registry

import (
	"fmt"
	"strings"
)

// Tool describes an MCP tool and its input schema. The schema is opaque
// data passed through to clients, never interpreted here.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ServerInfo identifies the MCP server behind an endpoint.
type ServerInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Config is the full MCP configuration for one endpoint: server metadata
// plus its tools in declaration order.
type Config struct {
	Server ServerInfo `json:"server"`
	Tools  []Tool     `json:"tools"`
}

// NotFoundError reports an unknown endpoint, or an unknown tool within a
// known endpoint when Tool is non-empty. Available lists the valid
// alternatives so callers can surface them.
type NotFoundError struct {
	Endpoint  string
	Tool      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("tool '%s' not found in endpoint '%s'. Available tools: %s",
			e.Tool, e.Endpoint, strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("MCP endpoint '%s' not found. Available endpoints: %s",
		e.Endpoint, strings.Join(e.Available, ", "))
}

// Registry is an immutable endpoint-to-Config mapping. It is populated
// once at construction and never mutated, so concurrent reads need no
// locking. Keys keep insertion order for deterministic enumeration.
type Registry struct {
	keys    []string
	configs map[string]Config
}

type entry struct {
	key    string
	config Config
}

func newRegistry(entries []entry) *Registry {
	r := &Registry{configs: make(map[string]Config, len(entries))}
	for _, e := range entries {
		r.keys = append(r.keys, e.key)
		r.configs[e.key] = e.config
	}
	return r
}

// Keys returns the registered endpoint names in insertion order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the full configuration for the endpoint.
func (r *Registry) Get(key string) (Config, error) {
	cfg, ok := r.configs[key]
	if !ok {
		return Config{}, &NotFoundError{Endpoint: key, Available: r.Keys()}
	}
	return cfg, nil
}

// ServerInfo returns the server metadata for the endpoint.
func (r *Registry) ServerInfo(key string) (ServerInfo, error) {
	cfg, err := r.Get(key)
	if err != nil {
		return ServerInfo{}, err
	}
	return cfg.Server, nil
}

// Tools returns the endpoint's tools in declaration order.
func (r *Registry) Tools(key string) ([]Tool, error) {
	cfg, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	return cfg.Tools, nil
}

// Tool returns the named tool from the endpoint. The error distinguishes
// an unknown endpoint from an unknown tool name within a known endpoint.
func (r *Registry) Tool(key, name string) (Tool, error) {
	cfg, err := r.Get(key)
	if err != nil {
		return Tool{}, err
	}
	for _, t := range cfg.Tools {
		if t.Name == name {
			return t, nil
		}
	}
	names := make([]string, 0, len(cfg.Tools))
	for _, t := range cfg.Tools {
		names = append(names, t.Name)
	}
	return Tool{}, &NotFoundError{Endpoint: key, Tool: name, Available: names}
}
