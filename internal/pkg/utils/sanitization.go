package utils

import (
	"giya-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeReportReasons(reasons []string) []string {
	seen := make(map[string]bool, len(reasons))
	sanitized := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		reason = strings.TrimSpace(reason)
		if reason == "" || seen[reason] {
			continue
		}
		seen[reason] = true
		sanitized = append(sanitized, reason)
	}
	return sanitized
}
