package middlewares

import (
	"giya-service/internal/app/config"
	"giya-service/internal/app/contracts"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	PageCache      contracts.PageCache
	Enforcer       *casbin.Enforcer
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	pageCache contracts.PageCache,
	enforcer *casbin.Enforcer,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		PageCache:      pageCache,
		Enforcer:       enforcer,
		InternalConfig: internalConfig,
	}
}
