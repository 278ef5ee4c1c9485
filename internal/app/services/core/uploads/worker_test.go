package uploads

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts/mocks"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUploadUsecase struct {
	mock.Mock
}

func (m *MockUploadUsecase) Stage(ctx context.Context, session *models.Session, request *requests.StageUpload) (*responses.StagedUpload, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.StagedUpload), args.Error(1)
}

func (m *MockUploadUsecase) PruneStaged(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestWorker_RunOnce(t *testing.T) {
	t.Run("leader prunes and releases the lock", func(t *testing.T) {
		locker := new(mocks.LockerService)
		usecase := new(MockUploadUsecase)
		locker.On("TryLock", mock.Anything, constvars.UploadWorkerLeaderLock, leaderLockTTL).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, constvars.UploadWorkerLeaderLock, "token").Return(nil)
		usecase.On("PruneStaged", mock.Anything).Return(2, nil)

		NewWorker(zap.NewNop(), &config.InternalConfig{}, locker, usecase).runOnce(context.Background())

		usecase.AssertExpectations(t)
		locker.AssertExpectations(t)
	})

	t.Run("follower skips the tick", func(t *testing.T) {
		locker := new(mocks.LockerService)
		usecase := new(MockUploadUsecase)
		locker.On("TryLock", mock.Anything, constvars.UploadWorkerLeaderLock, leaderLockTTL).Return(false, "", nil)

		NewWorker(zap.NewNop(), &config.InternalConfig{}, locker, usecase).runOnce(context.Background())

		usecase.AssertNotCalled(t, "PruneStaged", mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})
}
