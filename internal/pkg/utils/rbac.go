package utils

import (
	"path"
	"strings"
)

// ScopedPath strips the API mount prefix so route policies can be written
// against the role scopes alone. "/api/v1/carer/home" with prefix
// "/api/v1" becomes "/carer/home".
func ScopedPath(requestPath, mountPrefix string) string {
	cleaned := path.Clean("/" + strings.TrimPrefix(requestPath, "/"))
	mountPrefix = strings.TrimSuffix(mountPrefix, "/")
	if mountPrefix != "" && (cleaned == mountPrefix || strings.HasPrefix(cleaned, mountPrefix+"/")) {
		cleaned = strings.TrimPrefix(cleaned, mountPrefix)
	}
	if cleaned == "" {
		return "/"
	}
	return cleaned
}

// InScope reports whether path sits at or below one of the scopes.
func InScope(requestPath string, scopes ...string) bool {
	for _, scope := range scopes {
		if requestPath == scope || strings.HasPrefix(requestPath, scope+"/") {
			return true
		}
	}
	return false
}
