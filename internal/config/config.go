package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server.
type Config struct {
	// Root is the sandbox root directory all verbs are confined to.
	Root string `env:"SANDBOX_FS_ROOT" envDefault:"."`
	// CataloguePath is the path to the YAML verb catalogue.
	CataloguePath string `env:"SANDBOX_FS_CATALOGUE" envDefault:"catalogue.yaml"`
	// LogLevel sets the logger level.
	LogLevel string `env:"SANDBOX_FS_LOG_LEVEL" envDefault:"info"`
	// ExecTimeout is the wall-clock limit for a single command.
	ExecTimeout time.Duration `env:"SANDBOX_FS_EXEC_TIMEOUT" envDefault:"10s"`
	// MaxOutputBytes caps captured process output.
	MaxOutputBytes int `env:"SANDBOX_FS_MAX_OUTPUT_BYTES" envDefault:"1048576"`
	// MaxLines caps response lines in the output processor.
	MaxLines int `env:"SANDBOX_FS_MAX_LINES" envDefault:"200"`
	// MaxChars caps response characters in the output processor.
	MaxChars int `env:"SANDBOX_FS_MAX_CHARS" envDefault:"50000"`
	// WarmFingerprint pre-computes the root scope fingerprint on startup.
	WarmFingerprint bool `env:"SANDBOX_FS_WARM_FINGERPRINT" envDefault:"false"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"SANDBOX_FS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
