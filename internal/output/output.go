// Package output bounds response size before results leave the core.
package output

import (
	"fmt"
	"strings"

	"github.com/codex-k8s/sandbox-fs-mcp-server/internal/protocol"
)

// Default truncation limits. They bound worst-case response size while rarely
// triggering on ordinary requests.
const (
	DefaultMaxLines = 200
	DefaultMaxChars = 50000
)

// Processor truncates oversized output deterministically: identical input and
// limits always produce identical output, and input already within limits is
// returned unchanged.
type Processor struct {
	maxLines int
	maxChars int
}

// NewProcessor creates a Processor; non-positive limits fall back to defaults.
func NewProcessor(maxLines, maxChars int) *Processor {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Processor{maxLines: maxLines, maxChars: maxChars}
}

// Truncate applies the line and character limits. The header and footer state
// what is shown and what was omitted without inviting follow-up requests.
func (p *Processor) Truncate(text string) protocol.TruncationResult {
	lines := strings.Split(text, "\n")
	totalLines := len(lines)
	totalChars := len(text)

	if totalLines <= p.maxLines && totalChars <= p.maxChars {
		return protocol.TruncationResult{
			Content:       text,
			WasTruncated:  false,
			OriginalLines: totalLines,
			OriginalChars: totalChars,
		}
	}

	shown := totalLines
	if shown > p.maxLines {
		shown = p.maxLines
	}
	body := strings.Join(lines[:shown], "\n")
	if len(body) > p.maxChars {
		body = body[:p.maxChars]
	}

	header := fmt.Sprintf("--- output truncated: showing %d of %d lines ---\n", shown, totalLines)
	footer := fmt.Sprintf("\n--- %d lines omitted ---", totalLines-shown)

	return protocol.TruncationResult{
		Content:       header + body + footer,
		WasTruncated:  true,
		OriginalLines: totalLines,
		OriginalChars: totalChars,
	}
}
