package contracts

import (
	"context"
	"giya-service/internal/pkg/dto/requests"
	"giya-service/internal/pkg/schemas"
)

type ToolkitUsecase interface {
	ListToolkits(ctx context.Context) (*schemas.Paginated[schemas.Toolkit], error)
	GetToolkit(ctx context.Context, toolkitID int) (*schemas.Toolkit, error)
	CreateToolkit(ctx context.Context, request *requests.CreateToolkit) (*schemas.Toolkit, error)
	UpdateToolkit(ctx context.Context, toolkitID int, request *requests.UpdateToolkit) (*schemas.Toolkit, error)
}
