package dispatch

import (
	"fmt"
	"strings"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/cache"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/executor"
)

// Context carries the collaborators every handler needs. Missing collaborators
// are a construction bug, not a request-time condition, so NewContext fails
// fast and handlers never re-check.
type Context struct {
	// Executor runs whitelisted commands in the sandbox.
	Executor *executor.Executor
	// Caches aggregates the content and search caches.
	Caches *cache.Manager
	// Root is the canonical sandbox root.
	Root string
}

// NewContext validates required collaborators and returns a handler context.
func NewContext(exec *executor.Executor, caches *cache.Manager) (Context, error) {
	if exec == nil {
		return Context{}, fmt.Errorf("dispatch context: executor is required")
	}
	if caches == nil || caches.Content == nil || caches.Search == nil {
		return Context{}, fmt.Errorf("dispatch context: cache manager is required")
	}
	root := exec.Root()
	if strings.TrimSpace(root) == "" {
		return Context{}, fmt.Errorf("dispatch context: sandbox root is required")
	}
	return Context{Executor: exec, Caches: caches, Root: root}, nil
}
