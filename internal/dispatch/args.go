package dispatch

import (
	"encoding/json"
	"strings"
)

// stringArg reads a string argument, trimming whitespace.
func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	if value, ok := args[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// intArg reads an integer argument, tolerating the numeric types JSON and
// YAML decoders produce. Returns def when absent or unusable.
func intArg(args map[string]any, key string, def int) int {
	if args == nil {
		return def
	}
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// boolArg reads a boolean argument, defaulting to false.
func boolArg(args map[string]any, key string) bool {
	if args == nil {
		return false
	}
	value, _ := args[key].(bool)
	return value
}
