package dispatch

import (
	"context"
	"fmt"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
)

// HandleFunc executes a request and returns a result in all cases.
type HandleFunc func(ctx context.Context, hctx Context, req protocol.Request) protocol.ExecutionResult

// Handler pairs a verb predicate with an execution method. A nil Match marks
// a catch-all handler.
type Handler struct {
	// Name identifies the handler in logs.
	Name string
	// Match reports whether the handler accepts the verb; nil matches all.
	Match func(verb string) bool
	// Handle executes the request.
	Handle HandleFunc
}

// Chain routes each request to the first handler whose predicate matches.
type Chain struct {
	handlers []Handler
}

// NewChain validates the handler list: it must be non-empty, every handler
// needs a Handle func, and the final handler must be a catch-all. A chain
// without a terminal catch-all is a configuration error, not a runtime one.
func NewChain(handlers ...Handler) (*Chain, error) {
	if len(handlers) == 0 {
		return nil, fmt.Errorf("dispatch chain: no handlers")
	}
	for i, h := range handlers {
		if h.Handle == nil {
			return nil, fmt.Errorf("dispatch chain: handler %d (%s) has no handle func", i, h.Name)
		}
		if i < len(handlers)-1 && h.Match == nil {
			return nil, fmt.Errorf("dispatch chain: catch-all handler %d (%s) is not terminal", i, h.Name)
		}
	}
	if handlers[len(handlers)-1].Match != nil {
		return nil, fmt.Errorf("dispatch chain: final handler %s is not a catch-all", handlers[len(handlers)-1].Name)
	}
	return &Chain{handlers: handlers}, nil
}

// Dispatch scans handlers in order and executes the first match. The
// construction invariant guarantees the scan terminates at the catch-all.
func (c *Chain) Dispatch(ctx context.Context, hctx Context, req protocol.Request) protocol.ExecutionResult {
	for _, h := range c.handlers {
		if h.Match == nil || h.Match(req.Verb) {
			return h.Handle(ctx, hctx, req)
		}
	}
	// Unreachable by construction; kept as a hard failure rather than a
	// silent drop.
	return protocol.Failure(protocol.TagUnsupported, req.Verb, "no handler matched")
}
