package contracts

import (
	"context"
	"giya-service/internal/app/models"
)

type Notifier interface {
	Publish(ctx context.Context, event *models.NotificationEvent) error
}
