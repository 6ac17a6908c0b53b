package executor

import (
	"errors"
	"fmt"
	"strconv"
)

// Verb names understood by the command table.
const (
	VerbList          = "list"
	VerbTree          = "tree"
	VerbReadFull      = "read-full"
	VerbReadHead      = "read-head"
	VerbReadTail      = "read-tail"
	VerbReadRange     = "read-range"
	VerbSearchPattern = "search-by-pattern"
	VerbSearchName    = "search-by-name"
	VerbCount         = "count"
)

// ErrUnsupportedVerb indicates a verb with no command template.
var ErrUnsupportedVerb = errors.New("verb has no command template")

// BuildArgs carries validated inputs for command construction. Path must
// already be canonical (see ValidatePath); it is inserted as a discrete token,
// never concatenated into a shell string.
type BuildArgs struct {
	// Path is the canonical absolute target path.
	Path string
	// Pattern is the search pattern for search verbs.
	Pattern string
	// Depth limits tree traversal.
	Depth int
	// IgnoreCase enables case-insensitive pattern search.
	IgnoreCase bool
}

// BuildCommand maps a verb to its argv template. Every returned command starts
// with a whitelisted binary and contains only discrete argument tokens.
func BuildCommand(verb string, a BuildArgs) ([]string, error) {
	switch verb {
	case VerbList:
		return []string{"ls", "-la", a.Path}, nil
	case VerbTree:
		depth := a.Depth
		if depth <= 0 {
			depth = 3
		}
		return []string{"find", a.Path, "-maxdepth", strconv.Itoa(depth), "-print"}, nil
	case VerbReadFull, VerbReadHead, VerbReadTail, VerbReadRange:
		// All read verbs load the complete file; slicing happens downstream.
		return []string{"cat", a.Path}, nil
	case VerbSearchPattern:
		if a.Pattern == "" {
			return nil, fmt.Errorf("%s: pattern is required", verb)
		}
		argv := []string{"grep", "-rn"}
		if a.IgnoreCase {
			argv = append(argv, "-i")
		}
		// "--" stops flag parsing so patterns cannot inject grep options.
		return append(argv, "--", a.Pattern, a.Path), nil
	case VerbSearchName:
		if a.Pattern == "" {
			return nil, fmt.Errorf("%s: pattern is required", verb)
		}
		return []string{"find", a.Path, "-name", a.Pattern}, nil
	case VerbCount:
		return []string{"wc", "-l", a.Path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVerb, verb)
	}
}
