// Package server builds the MCP server that exposes the core to the
// orchestration layer.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/audit"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/catalogue"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/dispatch"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/guard"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/output"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/security"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/timeutil"
)

// Builder constructs an MCP server from the verb catalogue.
type Builder struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records request and denial events.
	Audit audit.Logger
	// Chain routes requests to handlers.
	Chain *dispatch.Chain
	// HandlerContext carries the executor, caches, and root for handlers.
	HandlerContext dispatch.Context
	// Guard enforces per-verb usage limits; optional.
	Guard *guard.Guard
	// Output truncates oversized results.
	Output *output.Processor
	// VerbTimeout is the default per-request deadline.
	VerbTimeout time.Duration
}

// Build creates an MCP server advertising one tool per catalogue verb.
func (b Builder) Build(cat *catalogue.Catalogue) (*mcp.Server, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalogue is nil")
	}
	if b.Chain == nil {
		return nil, fmt.Errorf("dispatch chain is required")
	}
	if b.Output == nil {
		return nil, fmt.Errorf("output processor is required")
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    cat.Server.Name,
		Version: cat.Server.Version,
	}, nil)

	for _, verb := range cat.Verbs {
		b.addVerb(server, verb)
	}
	return server, nil
}

func (b Builder) addVerb(server *mcp.Server, verb catalogue.VerbConfig) {
	timeout := timeutil.ParseDurationOrDefault(verb.Timeout, b.VerbTimeout)
	destructive := false
	openWorld := false

	tool := &mcp.Tool{
		Name:        verb.Name,
		Title:       verb.Title,
		Description: verb.Description,
		InputSchema: verb.InputSchema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: &destructive,
			IdempotentHint:  true,
			OpenWorldHint:   &openWorld,
		},
	}

	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, protocol.Response, error) {
		requestID := requestID(input)
		if b.Logger != nil {
			b.Logger.Info("request", "verb", verb.Name, "request_id", requestID, "args", security.SanitizeArguments(input))
		}
		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "request", Verb: verb.Name, RequestID: requestID})
		}

		if b.Guard != nil {
			if err := b.Guard.Allow(verb.Name, input); err != nil {
				if b.Audit != nil {
					b.Audit.Record(ctx, audit.Event{Type: "denied", Verb: verb.Name, RequestID: requestID, Tag: protocol.TagRateLimited, Detail: err.Error()})
				}
				return nil, protocol.Response{
					Result: protocol.Failure(protocol.TagRateLimited, verb.Name, err.Error()),
				}, nil
			}
		}

		reqCtx := ctx
		var cancel context.CancelFunc
		if timeout > 0 {
			reqCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		result := b.Chain.Dispatch(reqCtx, b.HandlerContext, protocol.Request{
			ID:        requestID,
			Verb:      verb.Name,
			Arguments: input,
		})

		resp := protocol.Response{Result: result}
		if result.Success {
			truncation := b.Output.Truncate(result.Stdout)
			resp.Result.Stdout = truncation.Content
			resp.Truncation = &truncation
		}

		if b.Audit != nil {
			b.Audit.Record(ctx, audit.Event{Type: "result", Verb: verb.Name, RequestID: requestID, Tag: result.Error})
		}
		return nil, resp, nil
	})
}

func requestID(args map[string]any) string {
	if args != nil {
		if raw, ok := args["request_id"].(string); ok && raw != "" {
			return raw
		}
	}
	return fmt.Sprintf("req-%d", time.Now().UTC().UnixNano())
}
