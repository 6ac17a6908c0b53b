package security

import "strings"

// maxLoggedValueLength caps argument values in log output so that large
// patterns or pasted content do not bloat log lines.
const maxLoggedValueLength = 256

var sensitiveSubstrings = []string{
	"token",
	"password",
	"secret",
	"apikey",
	"api_key",
	"credential",
	"auth",
	"key",
	"cookie",
	"session",
	"bearer",
}

// SanitizeArguments returns a copy of arguments safe for logging: sensitive
// values are replaced, oversized string values are clipped.
func SanitizeArguments(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	sanitized := make(map[string]any, len(values))
	for key, value := range values {
		if isSensitiveKey(key) {
			sanitized[key] = "***"
			continue
		}
		if str, ok := value.(string); ok && len(str) > maxLoggedValueLength {
			sanitized[key] = str[:maxLoggedValueLength] + "...(clipped)"
			continue
		}
		sanitized[key] = value
	}
	return sanitized
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveSubstrings {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
