package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/executor"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/slice"
)

// Default slicing bounds for the partial read verbs.
const (
	defaultHeadLines = 100
	defaultTailLines = 10
)

// execError carries a failed ExecutionResult through a cache loader so the
// handler can return it unchanged, tag included.
type execError struct {
	result protocol.ExecutionResult
}

func (e *execError) Error() string {
	if e.result.Stderr != "" {
		return e.result.Stderr
	}
	return e.result.Error
}

// DefaultHandlers returns the standard chain: cached reads, cached searches,
// and a direct catch-all.
func DefaultHandlers() []Handler {
	return []Handler{
		CachedReadHandler(),
		CachedSearchHandler(),
		DirectHandler(),
	}
}

// CachedReadHandler serves the read verbs. It always retrieves the entire
// file through the content cache and applies the requested slicing view
// afterwards, so N partial reads of one file share a single load.
func CachedReadHandler() Handler {
	return Handler{
		Name: "cached-read",
		Match: func(verb string) bool {
			switch verb {
			case executor.VerbReadFull, executor.VerbReadHead, executor.VerbReadTail, executor.VerbReadRange:
				return true
			}
			return false
		},
		Handle: handleCachedRead,
	}
}

func handleCachedRead(ctx context.Context, hctx Context, req protocol.Request) protocol.ExecutionResult {
	canonical, err := hctx.Executor.ValidatePath(stringArg(req.Arguments, "path"))
	if err != nil {
		return protocol.Failure(protocol.TagPathTraversal, req.Verb, err.Error())
	}

	argv, err := executor.BuildCommand(req.Verb, executor.BuildArgs{Path: canonical})
	if err != nil {
		return protocol.Failure(protocol.TagUnsupported, req.Verb, err.Error())
	}
	rendered := strings.Join(argv, " ")

	content, err := hctx.Caches.Content.Get(canonical, func() (string, error) {
		res := hctx.Executor.Execute(ctx, argv)
		if !res.Success {
			return "", &execError{result: res}
		}
		return res.Stdout, nil
	})
	if err != nil {
		if loadErr, ok := err.(*execError); ok {
			return loadErr.result
		}
		return protocol.Failure(protocol.TagCacheLoadFailure, rendered, err.Error())
	}

	view, err := sliceView(req, content)
	if err != nil {
		return protocol.Failure(protocol.TagExecutionFailure, rendered, err.Error())
	}
	return protocol.ExecutionResult{
		Success: true,
		Stdout:  view,
		Command: rendered,
	}
}

// sliceView applies the verb's slicing view to cached full-file content.
func sliceView(req protocol.Request, content string) (string, error) {
	switch req.Verb {
	case executor.VerbReadFull:
		return content, nil
	case executor.VerbReadHead:
		return slice.Head(content, intArg(req.Arguments, "lines", defaultHeadLines)), nil
	case executor.VerbReadTail:
		return slice.Tail(content, intArg(req.Arguments, "lines", defaultTailLines)), nil
	case executor.VerbReadRange:
		start := intArg(req.Arguments, "start_line", 1)
		end := intArg(req.Arguments, "end_line", start)
		return slice.Range(content, start, end)
	default:
		return "", fmt.Errorf("not a read verb: %s", req.Verb)
	}
}

// CachedSearchHandler serves the search verbs through the search cache with
// the request's target directory as scope.
func CachedSearchHandler() Handler {
	return Handler{
		Name: "cached-search",
		Match: func(verb string) bool {
			return verb == executor.VerbSearchPattern || verb == executor.VerbSearchName
		},
		Handle: handleCachedSearch,
	}
}

func handleCachedSearch(ctx context.Context, hctx Context, req protocol.Request) protocol.ExecutionResult {
	scopeArg := stringArg(req.Arguments, "path")
	if scopeArg == "" {
		scopeArg = "."
	}
	canonical, err := hctx.Executor.ValidatePath(scopeArg)
	if err != nil {
		return protocol.Failure(protocol.TagPathTraversal, req.Verb, err.Error())
	}

	argv, err := executor.BuildCommand(req.Verb, executor.BuildArgs{
		Path:       canonical,
		Pattern:    stringArg(req.Arguments, "pattern"),
		IgnoreCase: boolArg(req.Arguments, "ignore_case"),
	})
	if err != nil {
		return protocol.Failure(protocol.TagExecutionFailure, req.Verb, err.Error())
	}

	result, err := hctx.Caches.Search.Get(req.Verb, req.Arguments, canonical, func() protocol.ExecutionResult {
		res := hctx.Executor.Execute(ctx, argv)
		// grep exits 1 on zero matches; an empty match set is a valid,
		// cacheable outcome.
		if req.Verb == executor.VerbSearchPattern && res.ReturnCode == 1 && strings.TrimSpace(res.Stderr) == "" {
			res.Success = true
			res.Error = ""
		}
		return res
	})
	if err != nil {
		return protocol.Failure(protocol.TagCacheLoadFailure, strings.Join(argv, " "), err.Error())
	}
	return result
}

// DirectHandler is the terminal catch-all: listing, counting, tree scans, and
// any future verb execute straight through the executor with no caching.
// Correctness here rests on the executor's guarantees alone.
func DirectHandler() Handler {
	return Handler{
		Name:   "direct",
		Handle: handleDirect,
	}
}

func handleDirect(ctx context.Context, hctx Context, req protocol.Request) protocol.ExecutionResult {
	pathArg := stringArg(req.Arguments, "path")
	if pathArg == "" {
		pathArg = "."
	}
	canonical, err := hctx.Executor.ValidatePath(pathArg)
	if err != nil {
		return protocol.Failure(protocol.TagPathTraversal, req.Verb, err.Error())
	}

	argv, err := executor.BuildCommand(req.Verb, executor.BuildArgs{
		Path:    canonical,
		Pattern: stringArg(req.Arguments, "pattern"),
		Depth:   intArg(req.Arguments, "depth", 0),
	})
	if err != nil {
		return protocol.Failure(protocol.TagUnsupported, req.Verb, err.Error())
	}
	return hctx.Executor.Execute(ctx, argv)
}
