package catalogue

// Catalogue is the top-level YAML verb catalogue.
type Catalogue struct {
	// Server describes the MCP server settings.
	Server ServerConfig `yaml:"server"`
	// Verbs lists the externally advertised verbs.
	Verbs []VerbConfig `yaml:"verbs"`
}

// ServerConfig defines MCP server settings.
type ServerConfig struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `yaml:"transport"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// HTTP configures the HTTP transport.
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables session tracking.
	Stateless bool `yaml:"stateless"`
}

// VerbConfig declares a verb advertised to the orchestration layer. The
// catalogue only selects what is advertised and how; verb semantics live in
// the dispatch chain and executor.
type VerbConfig struct {
	// Name is the verb name.
	Name string `yaml:"name"`
	// Title is the human-friendly verb title.
	Title string `yaml:"title"`
	// Description explains the verb for the agent.
	Description string `yaml:"description"`
	// InputSchema defines JSON Schema for verb arguments.
	InputSchema map[string]any `yaml:"input_schema"`
	// Timeout overrides the execution timeout for this verb.
	Timeout string `yaml:"timeout"`
	// Limits bounds how the verb may be used in one session.
	Limits *LimitsConfig `yaml:"limits,omitempty"`
}

// LimitsConfig declares per-verb guard limits.
type LimitsConfig struct {
	// MaxTotal caps total calls.
	MaxTotal int `yaml:"max_total"`
	// RatePerMinute caps calls per minute.
	RatePerMinute int `yaml:"rate_per_minute"`
	// MaxArgumentLength caps string argument lengths.
	MaxArgumentLength int `yaml:"max_argument_length"`
}
