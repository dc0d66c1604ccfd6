package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dynamic-mcp/internal/registry"
)

func newTestServer() *Server {
	return New(Config{}, registry.New(), zap.NewNop())
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NoError(t, json.NewDecoder(rr.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	rr := get(t, newTestServer(), "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	decode(t, rr, &resp)
	assert.Equal(t, "ok", resp["status"])
}

func TestRoot(t *testing.T) {
	s := newTestServer()
	rr := get(t, s, "/")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message            string   `json:"message"`
		AvailableEndpoints []string `json:"available_endpoints"`
		EndpointsInfo      map[string]struct {
			ServerName string `json:"server_name"`
			ToolsCount int    `json:"tools_count"`
		} `json:"endpoints_info"`
	}
	decode(t, rr, &resp)

	assert.Equal(t, "Dynamic MCP Demo Server", resp.Message)
	assert.Equal(t, []string{"weather", "database", "file", "api"}, resp.AvailableEndpoints)
	require.Len(t, resp.EndpointsInfo, 4)
	assert.Equal(t, "Weather MCP Server", resp.EndpointsInfo["weather"].ServerName)

	// tools_count must agree with the per-endpoint tools route.
	for _, key := range resp.AvailableEndpoints {
		toolsRR := get(t, s, "/mcp/"+key+"/tools")
		require.Equal(t, http.StatusOK, toolsRR.Code)
		var tools []registry.Tool
		decode(t, toolsRR, &tools)
		assert.Len(t, tools, resp.EndpointsInfo[key].ToolsCount, "key %q", key)
	}
}

func TestGetConfiguration(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/weather")
	require.Equal(t, http.StatusOK, rr.Code)

	var cfg registry.Config
	decode(t, rr, &cfg)
	assert.Equal(t, "Weather MCP Server", cfg.Server.Name)
	assert.Equal(t, "1.0.0", cfg.Server.Version)
	require.Len(t, cfg.Tools, 2)
	assert.Equal(t, "get_weather", cfg.Tools[0].Name)
	assert.Equal(t, "get_forecast", cfg.Tools[1].Name)
}

func TestGetConfigurationNotFound(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/unknown")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	decode(t, rr, &resp)
	assert.Contains(t, resp["detail"], "MCP endpoint 'unknown' not found")
	assert.Contains(t, resp["detail"], "weather, database, file, api")
}

func TestGetServerInfo(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/database/server")
	require.Equal(t, http.StatusOK, rr.Code)

	var info registry.ServerInfo
	decode(t, rr, &info)
	assert.Equal(t, "Database MCP Server", info.Name)
	assert.Equal(t, "1.0.0", info.Version)
	assert.NotEmpty(t, info.Description)
}

func TestGetServerInfoNotFound(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/unknown/server")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTools(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/file/tools")
	require.Equal(t, http.StatusOK, rr.Code)

	var tools []registry.Tool
	decode(t, rr, &tools)
	require.Len(t, tools, 3)
	names := []string{tools[0].Name, tools[1].Name, tools[2].Name}
	assert.Equal(t, []string{"read_file", "write_file", "list_directory"}, names)
}

func TestGetTool(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/file/tools/write_file")
	require.Equal(t, http.StatusOK, rr.Code)

	var tool registry.Tool
	decode(t, rr, &tool)
	assert.Equal(t, "write_file", tool.Name)
	assert.Equal(t, []interface{}{"path", "content"}, tool.InputSchema["required"])
}

func TestGetToolUnknownName(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/weather/tools/nonexistent_tool")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	decode(t, rr, &resp)
	assert.Contains(t, resp["detail"], "tool 'nonexistent_tool' not found in endpoint 'weather'")
	assert.Contains(t, resp["detail"], "get_weather, get_forecast")
}

func TestGetToolUnknownEndpoint(t *testing.T) {
	rr := get(t, newTestServer(), "/mcp/unknown/tools/get_weather")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	decode(t, rr, &resp)
	assert.Contains(t, resp["detail"], "MCP endpoint 'unknown' not found")
}

func TestListEndpoints(t *testing.T) {
	rr := get(t, newTestServer(), "/list-endpoints")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Endpoints []struct {
			Endpoint          string `json:"endpoint"`
			ServerName        string `json:"server_name"`
			ServerVersion     string `json:"server_version"`
			ServerDescription string `json:"server_description"`
			Tools             []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"tools"`
		} `json:"endpoints"`
	}
	decode(t, rr, &resp)

	require.Len(t, resp.Endpoints, 4)
	first := resp.Endpoints[0]
	assert.Equal(t, "weather", first.Endpoint)
	assert.Equal(t, "Weather MCP Server", first.ServerName)
	assert.Equal(t, "1.0.0", first.ServerVersion)
	assert.NotEmpty(t, first.ServerDescription)
	require.Len(t, first.Tools, 2)
	assert.Equal(t, "get_weather", first.Tools[0].Name)
	assert.NotEmpty(t, first.Tools[0].Description)
}
