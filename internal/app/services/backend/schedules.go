package backend

import (
	"context"
	"fmt"
	"giya-service/internal/app/contracts"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/schemas"
)

const schedulesPath = "/users/professionals/schedules"

type schedulesBackend struct {
	client *Client
}

func NewSchedulesBackend(client *Client) contracts.SchedulesBackend {
	return &schedulesBackend{client: client}
}

func (b *schedulesBackend) Create(ctx context.Context, payload *schemas.SchedulePayload) error {
	_, err := b.client.sendJSON(ctx, constvars.MethodPost, schedulesPath, payload)
	return err
}

func (b *schedulesBackend) Delete(ctx context.Context, scheduleID int) error {
	_, err := b.client.Do(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%d", schedulesPath, scheduleID), nil, nil, "")
	return err
}
