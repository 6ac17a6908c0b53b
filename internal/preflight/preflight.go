// Package preflight validates the sandbox before the server starts serving.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/cache"
)

// Run verifies the sandbox root is an existing, readable directory and
// optionally pre-computes the root scope fingerprint so the first cached
// search does not pay the full walk.
func Run(ctx context.Context, root string, warmFingerprint bool, logger *slog.Logger) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("sandbox root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("sandbox root %q is not a directory", root)
	}

	dir, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("sandbox root is not readable: %w", err)
	}
	_, err = dir.Readdirnames(1)
	_ = dir.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("sandbox root is not listable: %w", err)
	}

	if !warmFingerprint {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	if _, err := cache.Fingerprint(root); err != nil {
		if logger != nil {
			logger.Warn("fingerprint warm-up failed", "root", root, "error", err)
		}
		return nil
	}
	if logger != nil {
		logger.Info("fingerprint warm-up done", "root", root, "duration_ms", time.Since(start).Milliseconds())
	}
	return nil
}
