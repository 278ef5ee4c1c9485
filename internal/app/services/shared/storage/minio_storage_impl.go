package storage

import (
	"context"
	"fmt"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/utils"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient    *minio.Client
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMinioStorage(minioClient *minio.Client, logger *zap.Logger, internalConfig *config.InternalConfig) contracts.StorageService {
	return &minioStorage{
		MinioClient:    minioClient,
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

func (m *minioStorage) bucket() string {
	return m.InternalConfig.Minio.BucketName
}

// Stage puts an uploaded part under the staging prefix and returns its id.
func (m *minioStorage) Stage(ctx context.Context, header *multipart.FileHeader, contentType string) (*models.StagedUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, exceptions.ErrFileOpen(err)
	}
	defer file.Close()

	uploadID, objectName := utils.GenerateStagedObjectName(header.Filename)
	_, err = m.MinioClient.PutObject(ctx, m.bucket(), objectName, file, header.Size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": header.Filename,
		},
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.bucket())
	}

	m.Log.Info("minioStorage.Stage object created",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.String(constvars.LoggingUploadIDKey, uploadID),
	)

	return &models.StagedUpload{
		ID:           uploadID,
		ObjectName:   objectName,
		ContentType:  contentType,
		OriginalName: header.Filename,
		Size:         header.Size,
		CreatedAt:    time.Now(),
	}, nil
}

func (m *minioStorage) PresignedURL(ctx context.Context, objectName string) (string, error) {
	presigned, err := m.MinioClient.PresignedGetObject(ctx, m.bucket(), objectName, m.InternalConfig.Minio.PresignExpiry(), url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.bucket())
	}
	return presigned.String(), nil
}

// OpenStaged streams a staged upload back. The stored name carries the
// file extension, so the object is listed under its id and must match it
// exactly.
func (m *minioStorage) OpenStaged(ctx context.Context, uploadID string) (io.ReadCloser, string, error) {
	objectName, err := m.findStaged(ctx, uploadID)
	if err != nil {
		return nil, "", err
	}

	object, err := m.MinioClient.GetObject(ctx, m.bucket(), objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", exceptions.ErrMinioGetObject(err, m.bucket())
	}
	return object, path.Base(objectName), nil
}

func (m *minioStorage) findStaged(ctx context.Context, uploadID string) (string, error) {
	parsed, err := uuid.Parse(uploadID)
	if err != nil || parsed.String() != uploadID {
		return "", exceptions.ErrUploadNotFound(fmt.Errorf("malformed upload id %q", uploadID), uploadID)
	}

	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefix := constvars.StagedUploadObjectPrefix + uploadID
	for object := range m.MinioClient.ListObjects(listCtx, m.bucket(), minio.ListObjectsOptions{Prefix: prefix}) {
		if object.Err != nil {
			return "", exceptions.ErrMinioGetObject(object.Err, m.bucket())
		}
		if StagedObjectMatches(object.Key, uploadID) {
			return object.Key, nil
		}
	}
	return "", exceptions.ErrUploadNotFound(fmt.Errorf("no object under %s", prefix), uploadID)
}

// StagedObjectMatches reports whether objectName is the staged object of
// uploadID: the id itself, optionally followed by one file extension.
func StagedObjectMatches(objectName, uploadID string) bool {
	rest, ok := strings.CutPrefix(objectName, constvars.StagedUploadObjectPrefix+uploadID)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	return path.Ext(rest) == rest && !strings.Contains(rest, "/")
}

// PruneStaged removes staged objects last modified before olderThan.
func (m *minioStorage) PruneStaged(ctx context.Context, olderThan time.Time) (int, error) {
	removed := 0
	objects := m.MinioClient.ListObjects(ctx, m.bucket(), minio.ListObjectsOptions{
		Prefix:    constvars.StagedUploadObjectPrefix,
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return removed, exceptions.ErrMinioGetObject(object.Err, m.bucket())
		}
		if !object.LastModified.Before(olderThan) {
			continue
		}
		err := m.MinioClient.RemoveObject(ctx, m.bucket(), object.Key, minio.RemoveObjectOptions{})
		if err != nil {
			return removed, exceptions.ErrMinioRemoveObject(err, m.bucket())
		}
		removed++
	}
	return removed, nil
}
