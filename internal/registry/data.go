package registry

// New builds the registry with the predefined MCP configurations. The
// data is fixed for the lifetime of the process; tool names are unique
// within each endpoint.
func New() *Registry {
	return newRegistry([]entry{
		{key: "weather", config: Config{
			Server: ServerInfo{
				Name:        "Weather MCP Server",
				Version:     "1.0.0",
				Description: "Tools for querying weather information",
			},
			Tools: []Tool{
				{
					Name:        "get_weather",
					Description: "Get current weather for a given city",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"city": map[string]interface{}{
								"type":        "string",
								"description": "Name of the city to query",
							},
							"unit": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"celsius", "fahrenheit"},
								"description": "Temperature unit",
								"default":     "celsius",
							},
						},
						"required": []string{"city"},
					},
				},
				{
					Name:        "get_forecast",
					Description: "Get the weather forecast for a given city",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"city": map[string]interface{}{
								"type":        "string",
								"description": "Name of the city to query",
							},
							"days": map[string]interface{}{
								"type":        "integer",
								"description": "Number of forecast days (1-7)",
								"minimum":     1,
								"maximum":     7,
								"default":     3,
							},
						},
						"required": []string{"city"},
					},
				},
			},
		}},
		{key: "database", config: Config{
			Server: ServerInfo{
				Name:        "Database MCP Server",
				Version:     "1.0.0",
				Description: "Tools for database operations",
			},
			Tools: []Tool{
				{
					Name:        "query_database",
					Description: "Execute a SQL query",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"sql": map[string]interface{}{
								"type":        "string",
								"description": "SQL query to execute",
							},
							"database": map[string]interface{}{
								"type":        "string",
								"description": "Database name",
								"default":     "default",
							},
						},
						"required": []string{"sql"},
					},
				},
				{
					Name:        "execute_command",
					Description: "Execute a database command (INSERT, UPDATE, DELETE)",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"command": map[string]interface{}{
								"type":        "string",
								"description": "SQL command to execute",
							},
							"database": map[string]interface{}{
								"type":        "string",
								"description": "Database name",
								"default":     "default",
							},
						},
						"required": []string{"command"},
					},
				},
				{
					Name:        "list_tables",
					Description: "List all tables in the database",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"database": map[string]interface{}{
								"type":        "string",
								"description": "Database name",
								"default":     "default",
							},
						},
						"required": []string{},
					},
				},
			},
		}},
		{key: "file", config: Config{
			Server: ServerInfo{
				Name:        "File System MCP Server",
				Version:     "1.0.0",
				Description: "Tools for file system operations",
			},
			Tools: []Tool{
				{
					Name:        "read_file",
					Description: "Read the contents of a file",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"path": map[string]interface{}{
								"type":        "string",
								"description": "Path of the file to read",
							},
							"encoding": map[string]interface{}{
								"type":        "string",
								"description": "File encoding",
								"default":     "utf-8",
							},
						},
						"required": []string{"path"},
					},
				},
				{
					Name:        "write_file",
					Description: "Write contents to a file",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"path": map[string]interface{}{
								"type":        "string",
								"description": "Path of the file to write",
							},
							"content": map[string]interface{}{
								"type":        "string",
								"description": "Content to write",
							},
							"encoding": map[string]interface{}{
								"type":        "string",
								"description": "File encoding",
								"default":     "utf-8",
							},
						},
						"required": []string{"path", "content"},
					},
				},
				{
					Name:        "list_directory",
					Description: "List the contents of a directory",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"path": map[string]interface{}{
								"type":        "string",
								"description": "Path of the directory to list",
								"default":     ".",
							},
							"recursive": map[string]interface{}{
								"type":        "boolean",
								"description": "Whether to recurse into subdirectories",
								"default":     false,
							},
						},
						"required": []string{},
					},
				},
			},
		}},
		{key: "api", config: Config{
			Server: ServerInfo{
				Name:        "API Client MCP Server",
				Version:     "1.0.0",
				Description: "Tools for calling HTTP APIs",
			},
			Tools: []Tool{
				{
					Name:        "http_get",
					Description: "Send an HTTP GET request",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"url": map[string]interface{}{
								"type":        "string",
								"description": "URL to request",
							},
							"headers": map[string]interface{}{
								"type":                 "object",
								"description":          "HTTP request headers",
								"additionalProperties": map[string]interface{}{"type": "string"},
							},
						},
						"required": []string{"url"},
					},
				},
				{
					Name:        "http_post",
					Description: "Send an HTTP POST request",
					InputSchema: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"url": map[string]interface{}{
								"type":        "string",
								"description": "URL to request",
							},
							"body": map[string]interface{}{
								"type":        "object",
								"description": "Request body (JSON)",
							},
							"headers": map[string]interface{}{
								"type":                 "object",
								"description":          "HTTP request headers",
								"additionalProperties": map[string]interface{}{"type": "string"},
							},
						},
						"required": []string{"url", "body"},
					},
				},
			},
		}},
	})
}
