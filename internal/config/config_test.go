package config

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.Root, ".")
	assert.Equal(t, cfg.CataloguePath, "catalogue.yaml")
	assert.Equal(t, cfg.LogLevel, "info")
	assert.Equal(t, cfg.ExecTimeout, 10*time.Second)
	assert.Equal(t, cfg.MaxOutputBytes, 1048576)
	assert.Equal(t, cfg.MaxLines, 200)
	assert.Equal(t, cfg.MaxChars, 50000)
	assert.Equal(t, cfg.WarmFingerprint, false)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SANDBOX_FS_ROOT", "/srv/sandbox")
	t.Setenv("SANDBOX_FS_EXEC_TIMEOUT", "3s")
	t.Setenv("SANDBOX_FS_MAX_LINES", "50")
	t.Setenv("SANDBOX_FS_WARM_FINGERPRINT", "true")

	cfg, err := Load()
	assert.NilError(t, err)
	assert.Equal(t, cfg.Root, "/srv/sandbox")
	assert.Equal(t, cfg.ExecTimeout, 3*time.Second)
	assert.Equal(t, cfg.MaxLines, 50)
	assert.Equal(t, cfg.WarmFingerprint, true)
}
