package protocol

// Error tags attached to failed execution results.
const (
	TagCommandNotAllowed = "COMMAND_NOT_ALLOWED"
	TagPathTraversal     = "PATH_TRAVERSAL"
	TagCommandTimeout    = "COMMAND_TIMEOUT"
	TagOutputTooLarge    = "OUTPUT_TOO_LARGE"
	TagExecutionFailure  = "EXECUTION_FAILURE"
	TagCacheLoadFailure  = "CACHE_LOAD_FAILURE"
	TagUnsupported       = "UNSUPPORTED"
	TagRateLimited       = "RATE_LIMITED"
)

// Request is a single verb invocation against the core.
type Request struct {
	// ID links related log and audit entries.
	ID string `json:"id"`
	// Verb selects the operation.
	Verb string `json:"verb"`
	// Arguments carries verb parameters (path, pattern, line counts).
	Arguments map[string]any `json:"arguments"`
}

// ExecutionResult is the single return shape for every executed operation,
// including failures. Expected failure modes are returned, never raised.
type ExecutionResult struct {
	// Success is true when the underlying command exited with code zero.
	Success bool `json:"success"`
	// Stdout is the captured standard output.
	Stdout string `json:"stdout"`
	// Stderr is the captured standard error.
	Stderr string `json:"stderr"`
	// ReturnCode is the process exit code, or -1 when no process ran.
	ReturnCode int `json:"return_code"`
	// Command is the rendered command line for diagnostics.
	Command string `json:"command"`
	// Error is an optional machine-readable failure tag.
	Error string `json:"error,omitempty"`
}

// TruncationResult describes output after the truncation stage.
type TruncationResult struct {
	// Content is the possibly truncated output.
	Content string `json:"content"`
	// WasTruncated reports whether any limit was applied.
	WasTruncated bool `json:"was_truncated"`
	// OriginalLines is the line count before truncation.
	OriginalLines int `json:"original_lines"`
	// OriginalChars is the character count before truncation.
	OriginalChars int `json:"original_chars"`
}

// Response is the envelope returned to the orchestration layer.
type Response struct {
	// Result is the execution outcome.
	Result ExecutionResult `json:"result"`
	// Truncation is present when the result passed through the output processor.
	Truncation *TruncationResult `json:"truncation,omitempty"`
}

// Failure builds a failed result with the given tag and diagnostic message.
func Failure(tag, command, message string) ExecutionResult {
	return ExecutionResult{
		Stderr:     message,
		ReturnCode: -1,
		Command:    command,
		Error:      tag,
	}
}
