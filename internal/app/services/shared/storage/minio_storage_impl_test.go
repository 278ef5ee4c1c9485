package storage

import (
	"context"
	"errors"
	"giya-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const uploadID = "0b6f8c1e-3d4a-4f2b-9c7e-5a1d2e3f4a5b"

func TestStagedObjectMatches(t *testing.T) {
	tests := []struct {
		name       string
		objectName string
		want       bool
	}{
		{"with extension", "staged/" + uploadID + ".png", true},
		{"without extension", "staged/" + uploadID, true},
		{"other upload sharing the prefix", "staged/" + uploadID + "-copy.png", false},
		{"double extension", "staged/" + uploadID + ".png.mp4", false},
		{"nested object", "staged/" + uploadID + "/x.png", false},
		{"outside the staging prefix", "media/" + uploadID + ".png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StagedObjectMatches(tt.objectName, uploadID))
		})
	}
}

func TestOpenStagedRejectsPartialIDs(t *testing.T) {
	storage := &minioStorage{Log: zap.NewNop()}

	for _, id := range []string{"a", "0b6f8c1e", "", uploadID[:35], "0B6F8C1E-3D4A-4F2B-9C7E-5A1D2E3F4A5B"} {
		_, _, err := storage.OpenStaged(context.Background(), id)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr), id)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode, id)
	}
}
