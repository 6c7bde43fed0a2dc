package utils

import (
	"fmt"
	"strings"
)

// AttachmentURL builds the public URL for a stored attachment path. When a
// gateway base URL is configured, uploads are served through it; otherwise
// the stored path is returned as-is (served by this process).
func AttachmentURL(storedPath, gatewayBaseURL string) string {
	if strings.TrimSpace(storedPath) == "" {
		return ""
	}
	if gatewayBaseURL == "" {
		return storedPath
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(gatewayBaseURL, "/"), strings.TrimLeft(storedPath, "/"))
}

// SafeFileName strips a file name down to characters safe for local storage
// and URLs. Path separators and control characters never survive.
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
