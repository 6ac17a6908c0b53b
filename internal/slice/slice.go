// Package slice provides line-oriented views over cached full-file content.
// Slicing always runs after cache retrieval, never during loading, so partial
// reads of one file share a single load.
package slice

import (
	"fmt"
	"strings"
)

// Head returns the first n lines of content. When the source ends with a
// trailing line break, the result keeps one too, matching source formatting.
func Head(content string, n int) string {
	if n <= 0 || content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= n {
		return content
	}
	out := strings.Join(lines[:n], "\n")
	if strings.HasSuffix(content, "\n") && out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// Tail returns the last n lines of content. A trailing line break does not
// count as an extra empty line, reproducing conventional last-N-lines output
// without a spurious blank line.
func Tail(content string, n int) string {
	if n <= 0 || content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		segments := strings.Split(content[:len(content)-1], "\n")
		if len(segments) <= n {
			return content
		}
		return strings.Join(segments[len(segments)-n:], "\n") + "\n"
	}
	segments := strings.Split(content, "\n")
	if len(segments) <= n {
		return content
	}
	return strings.Join(segments[len(segments)-n:], "\n")
}

// Range returns lines start..end of content, 1-based and inclusive. The
// selection keeps a trailing line break when the last selected line was
// terminated in the source.
func Range(content string, start, end int) (string, error) {
	if start < 1 {
		return "", fmt.Errorf("start line %d is below 1", start)
	}
	if end < start {
		return "", fmt.Errorf("end line %d is before start line %d", end, start)
	}

	terminated := strings.HasSuffix(content, "\n")
	body := content
	if terminated {
		body = content[:len(content)-1]
	}
	if body == "" {
		return "", fmt.Errorf("start line %d is past end of content", start)
	}
	lines := strings.Split(body, "\n")
	if start > len(lines) {
		return "", fmt.Errorf("start line %d is past end of content (%d lines)", start, len(lines))
	}
	if end > len(lines) {
		end = len(lines)
	}

	out := strings.Join(lines[start-1:end], "\n")
	if end < len(lines) || terminated {
		out += "\n"
	}
	return out, nil
}
