package utils

import (
	"giya-service/internal/pkg/constvars"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateStagedObjectName returns the upload id and its object name under
// the staging prefix. The original extension is kept so previews keep
// their type.
func GenerateStagedObjectName(originalFileName string) (string, string) {
	uploadID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(originalFileName))
	return uploadID, constvars.StagedUploadObjectPrefix + uploadID + ext
}
