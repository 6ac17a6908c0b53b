package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codex-k8s/sandbox-fs-mcp-server/configs"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/app"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/audit"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/cache"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/catalogue"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/config"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/dispatch"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/executor"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/guard"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/log"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/output"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/preflight"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/render"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/server"
	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/timeutil"
)

func main() {
	embeddedCatalogue := flag.String("embedded-catalogue", "", "Use embedded catalogue from configs/ (filename)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	var rendered []byte
	if *embeddedCatalogue != "" {
		raw, loadErr := configs.Load(*embeddedCatalogue)
		if loadErr != nil {
			logger.Error("load embedded catalogue failed", "error", loadErr)
			os.Exit(1)
		}
		rendered, err = render.RenderBytes(*embeddedCatalogue, raw)
	} else {
		rendered, err = render.RenderFile(cfg.CataloguePath)
	}
	if err != nil {
		logger.Error("render catalogue failed", "error", err)
		os.Exit(1)
	}

	cat, err := catalogue.Load(rendered)
	if err != nil {
		logger.Error("parse catalogue failed", "error", err)
		os.Exit(1)
	}

	exec, err := executor.New(cfg.Root, cfg.ExecTimeout, cfg.MaxOutputBytes, logger)
	if err != nil {
		logger.Error("executor init failed", "error", err)
		os.Exit(1)
	}

	caches := cache.NewManager()
	handlerCtx, err := dispatch.NewContext(exec, caches)
	if err != nil {
		logger.Error("dispatch context init failed", "error", err)
		os.Exit(1)
	}
	chain, err := dispatch.NewChain(dispatch.DefaultHandlers()...)
	if err != nil {
		logger.Error("dispatch chain init failed", "error", err)
		os.Exit(1)
	}

	builder := server.Builder{
		Logger:         logger,
		Audit:          audit.New(logger),
		Chain:          chain,
		HandlerContext: handlerCtx,
		Guard:          buildGuard(cat),
		Output:         output.NewProcessor(cfg.MaxLines, cfg.MaxChars),
		VerbTimeout:    cfg.ExecTimeout,
	}
	srv, err := builder.Build(cat)
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	if err := preflight.Run(baseCtx, exec.Root(), cfg.WarmFingerprint, logger); err != nil {
		logger.Error("preflight failed", "error", err)
		os.Exit(1)
	}

	switch cat.Server.Transport {
	case "http":
		if err := runHTTP(baseCtx, cfg, cat, srv, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := srv.Run(baseCtx, &mcp.StdioTransport{}); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func buildGuard(cat *catalogue.Catalogue) *guard.Guard {
	perVerb := make(map[string]guard.Limits)
	for _, verb := range cat.Verbs {
		if verb.Limits == nil {
			continue
		}
		perVerb[verb.Name] = guard.Limits{
			MaxTotal:          verb.Limits.MaxTotal,
			RatePerMinute:     verb.Limits.RatePerMinute,
			MaxArgumentLength: verb.Limits.MaxArgumentLength,
		}
	}
	return guard.New(guard.Limits{}, perVerb)
}

func runHTTP(ctx context.Context, envCfg config.Config, cat *catalogue.Catalogue, srv *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, &mcp.StreamableHTTPOptions{
		Stateless: cat.Server.HTTP.Stateless,
	})

	shutdown := envCfg.ShutdownTimeout
	if raw := cat.Server.ShutdownTimeout; raw != "" {
		shutdown = timeutil.ParseDurationOrDefault(raw, shutdown)
	}

	application, err := app.New(ctx, cat.Server.HTTP, handler, logger, shutdown)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
