package uploads

import (
	"bytes"
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/app/services/shared/ratelimiter"
	"giya-service/internal/app/services/shared/redis/redistest"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/forms"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func newUsecase(storage *mocks.StorageService, quota int) *uploadUsecase {
	cfg := &config.InternalConfig{Minio: config.AppMinio{
		UploadQuota:            quota,
		UploadWindowInSeconds:  60,
		StagedUploadTTLInHours: 24,
	}}
	limiter := ratelimiter.NewResourceLimiter(redistest.New(), zap.NewNop())
	uc := NewUploadUsecase(storage, limiter, cfg, zap.NewNop()).(*uploadUsecase)
	uc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 30, 0, time.UTC) }
	return uc
}

func TestUploadUsecase_Stage(t *testing.T) {
	session := &models.Session{UserID: 7}

	t.Run("stages and presigns", func(t *testing.T) {
		storage := new(mocks.StorageService)
		uc := newUsecase(storage, 5)
		storage.On("Stage", mock.Anything, mock.Anything, constvars.MIMEImagePNG).Return(&models.StagedUpload{
			ID:           "abc",
			ObjectName:   "staged/abc.png",
			ContentType:  constvars.MIMEImagePNG,
			OriginalName: "avatar.png",
		}, nil)
		storage.On("PresignedURL", mock.Anything, "staged/abc.png").Return("https://minio/staged/abc.png?sig", nil)

		staged, err := uc.Stage(context.Background(), session, &requests.StageUpload{
			File: forms.File{Header: fileHeader(t, "avatar.png", pngSignature)},
		})
		require.NoError(t, err)
		assert.Equal(t, "abc", staged.ID)
		assert.Equal(t, "avatar.png", staged.File)
		assert.Equal(t, "https://minio/staged/abc.png?sig", staged.URL)
	})

	t.Run("rejects files that are not media", func(t *testing.T) {
		storage := new(mocks.StorageService)
		uc := newUsecase(storage, 5)

		_, err := uc.Stage(context.Background(), session, &requests.StageUpload{
			File: forms.File{Header: fileHeader(t, "notes.png", []byte("plain text pretending"))},
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnsupportedMedia, customErr.StatusCode)
		storage.AssertNotCalled(t, "Stage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("quota per user", func(t *testing.T) {
		storage := new(mocks.StorageService)
		uc := newUsecase(storage, 1)
		storage.On("Stage", mock.Anything, mock.Anything, mock.Anything).Return(&models.StagedUpload{ID: "abc", ObjectName: "staged/abc.png"}, nil)
		storage.On("PresignedURL", mock.Anything, mock.Anything).Return("url", nil)

		request := &requests.StageUpload{File: forms.File{Header: fileHeader(t, "avatar.png", pngSignature)}}
		_, err := uc.Stage(context.Background(), session, request)
		require.NoError(t, err)

		_, err = uc.Stage(context.Background(), session, request)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)

		_, err = uc.Stage(context.Background(), &models.Session{UserID: 8}, request)
		assert.NoError(t, err)
	})
}

func TestUploadUsecase_PruneStaged(t *testing.T) {
	storage := new(mocks.StorageService)
	uc := newUsecase(storage, 5)
	cutoff := time.Date(2026, 3, 1, 10, 0, 30, 0, time.UTC)
	storage.On("PruneStaged", mock.Anything, cutoff).Return(3, nil)

	removed, err := uc.PruneStaged(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}
