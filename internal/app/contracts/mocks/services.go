package mocks

import (
	"context"
	"giya-service/internal/app/models"
	"io"
	"mime/multipart"
	"time"

	"github.com/stretchr/testify/mock"
)

type SessionService struct {
	mock.Mock
}

func (m *SessionService) Create(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *SessionService) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type PageCache struct {
	mock.Mock
}

func (m *PageCache) Lookup(ctx context.Context, path, query, userKey string) (*models.CachedPage, error) {
	args := m.Called(ctx, path, query, userKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CachedPage), args.Error(1)
}

func (m *PageCache) Store(ctx context.Context, path, query, userKey string, page *models.CachedPage) error {
	return m.Called(ctx, path, query, userKey, page).Error(0)
}

func (m *PageCache) Invalidate(ctx context.Context, paths ...string) error {
	return m.Called(ctx, paths).Error(0)
}

// Notifier records events on a channel so tests can wait for the
// background publish.
type Notifier struct {
	mock.Mock
	Events chan *models.NotificationEvent
}

func NewNotifier() *Notifier {
	return &Notifier{Events: make(chan *models.NotificationEvent, 16)}
}

func (m *Notifier) Publish(ctx context.Context, event *models.NotificationEvent) error {
	args := m.Called(ctx, event)
	if m.Events != nil {
		m.Events <- event
	}
	return args.Error(0)
}

type StorageService struct {
	mock.Mock
}

func (m *StorageService) Stage(ctx context.Context, header *multipart.FileHeader, contentType string) (*models.StagedUpload, error) {
	args := m.Called(ctx, header, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StagedUpload), args.Error(1)
}

func (m *StorageService) PresignedURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

func (m *StorageService) OpenStaged(ctx context.Context, uploadID string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *StorageService) PruneStaged(ctx context.Context, olderThan time.Time) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) Insert(ctx context.Context, report *models.ProductReport) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

func (m *ReportRepository) List(ctx context.Context, page, pageSize int) ([]models.ProductReport, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ProductReport), args.Get(1).(int64), args.Error(2)
}

func (m *ReportRepository) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
