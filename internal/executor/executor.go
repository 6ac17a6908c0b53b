package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
)

// allowedBinaries is the fixed whitelist of command leading tokens. Read,
// list, search and count binaries only; no mutation, network, or
// permission-changing commands.
var allowedBinaries = map[string]struct{}{
	"ls":   {},
	"find": {},
	"cat":  {},
	"head": {},
	"tail": {},
	"grep": {},
	"wc":   {},
}

// ErrCommandNotAllowed indicates a command outside the whitelist.
var ErrCommandNotAllowed = errors.New("command not in whitelist")

// Executor runs whitelisted commands confined to the sandbox root.
type Executor struct {
	root           string
	timeout        time.Duration
	maxOutputBytes int
	logger         *slog.Logger
}

// New creates an Executor rooted at root. The root is canonicalized once and
// must be an existing directory.
func New(root string, timeout time.Duration, maxOutputBytes int, logger *slog.Logger) (*Executor, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("sandbox root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sandbox root %q is not a directory", root)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxOutputBytes <= 0 {
		maxOutputBytes = 1 << 20
	}
	return &Executor{
		root:           canonical,
		timeout:        timeout,
		maxOutputBytes: maxOutputBytes,
		logger:         logger,
	}, nil
}

// Root returns the canonical sandbox root.
func (e *Executor) Root() string {
	return e.root
}

// ValidateCommand rejects empty commands and commands whose leading token is
// not whitelisted.
func (e *Executor) ValidateCommand(argv []string) error {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return fmt.Errorf("%w: empty command", ErrCommandNotAllowed)
	}
	if _, ok := allowedBinaries[argv[0]]; !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotAllowed, argv[0])
	}
	return nil
}

// Execute runs a validated command under the configured wall-clock timeout and
// output cap. It returns an ExecutionResult in all cases; whitelist failures,
// timeouts, and capped output become tagged failed results rather than errors.
func (e *Executor) Execute(ctx context.Context, argv []string) protocol.ExecutionResult {
	rendered := strings.Join(argv, " ")
	if err := e.ValidateCommand(argv); err != nil {
		return protocol.Failure(protocol.TagCommandNotAllowed, rendered, err.Error())
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = e.root
	stdout := newCapBuffer(e.maxOutputBytes)
	stderr := newCapBuffer(e.maxOutputBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := protocol.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		ReturnCode: -1,
		Command:    rendered,
	}
	if cmd.ProcessState != nil {
		result.ReturnCode = cmd.ProcessState.ExitCode()
	}

	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Success = false
		result.Error = protocol.TagCommandTimeout
	case err != nil:
		result.Success = false
		result.Error = protocol.TagExecutionFailure
		if result.Stderr == "" {
			result.Stderr = err.Error()
		}
	default:
		result.Success = result.ReturnCode == 0
		if !result.Success {
			result.Error = protocol.TagExecutionFailure
		}
	}

	// Capped output is incomplete output; a clean exit code does not make
	// it trustworthy.
	if stdout.Overflowed() || stderr.Overflowed() {
		result.Success = false
		result.Error = protocol.TagOutputTooLarge
	}

	if e.logger != nil {
		e.logger.Debug("command executed",
			"command", rendered,
			"return_code", result.ReturnCode,
			"duration_ms", elapsed.Milliseconds(),
			"error", result.Error,
		)
	}
	return result
}
