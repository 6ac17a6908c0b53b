package catalogue

import (
	"fmt"
	"strings"
)

// Validate applies defaults and verifies required fields.
func Validate(cat *Catalogue) error {
	if cat == nil {
		return fmt.Errorf("catalogue is nil")
	}
	if strings.TrimSpace(cat.Server.Name) == "" {
		return fmt.Errorf("server.name is required")
	}
	if strings.TrimSpace(cat.Server.Version) == "" {
		return fmt.Errorf("server.version is required")
	}
	switch cat.Server.Transport {
	case "":
		cat.Server.Transport = "stdio"
	case "stdio", "http":
	default:
		return fmt.Errorf("server.transport must be stdio or http, got %q", cat.Server.Transport)
	}
	if cat.Server.Transport == "http" {
		if strings.TrimSpace(cat.Server.HTTP.Listen) == "" {
			cat.Server.HTTP.Listen = ":8080"
		}
		if strings.TrimSpace(cat.Server.HTTP.Path) == "" {
			cat.Server.HTTP.Path = "/mcp"
		}
	}

	if len(cat.Verbs) == 0 {
		return fmt.Errorf("at least one verb is required")
	}
	seen := make(map[string]struct{}, len(cat.Verbs))
	for i := range cat.Verbs {
		verb := &cat.Verbs[i]
		if strings.TrimSpace(verb.Name) == "" {
			return fmt.Errorf("verbs[%d].name is required", i)
		}
		if _, ok := seen[verb.Name]; ok {
			return fmt.Errorf("duplicate verb %q", verb.Name)
		}
		seen[verb.Name] = struct{}{}
		if strings.TrimSpace(verb.Description) == "" {
			return fmt.Errorf("verb %q: description is required", verb.Name)
		}
		if len(verb.InputSchema) == 0 {
			return fmt.Errorf("verb %q: input_schema is required", verb.Name)
		}
		if verb.Limits != nil {
			if verb.Limits.MaxTotal < 0 || verb.Limits.RatePerMinute < 0 || verb.Limits.MaxArgumentLength < 0 {
				return fmt.Errorf("verb %q: limits must not be negative", verb.Name)
			}
		}
	}
	return nil
}
