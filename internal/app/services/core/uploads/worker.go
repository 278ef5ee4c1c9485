package uploads

import (
	"context"
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const leaderLockTTL = 2 * time.Minute

// Worker prunes expired staged uploads on a cron schedule. Only the instance
// holding the leader lock prunes on a given tick.
type Worker struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	uploadUsecase contracts.UploadUsecase
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, uploadUsecase contracts.UploadUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, uploadUsecase: uploadUsecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Minio.PruneCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("uploads.worker: invalid prune cron spec, falling back to @hourly",
			zap.String("spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels an in-flight prune and waits for it to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.UploadWorkerLeaderLock, leaderLockTTL)
	if err != nil {
		w.log.Warn("uploads.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("uploads.worker: leader lock held by another instance")
		return
	}
	defer func() {
		err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.UploadWorkerLeaderLock, token)
		if err != nil {
			w.log.Warn("uploads.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.UploadWorkerLeaderLock, token, leaderLockTTL); err != nil {
					w.log.Warn("uploads.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	var removed int
	err = utils.LogOperation(w.log, "prune_staged_uploads", utils.GenerateRequestID(), func() error {
		var pruneErr error
		removed, pruneErr = w.uploadUsecase.PruneStaged(ctx)
		return pruneErr
	})
	if err != nil {
		w.log.Warn("uploads.worker: prune failed", zap.Int(constvars.LoggingCountKey, removed))
		return
	}
	w.log.Info("uploads.worker: prune finished", zap.Int(constvars.LoggingCountKey, removed))
}
