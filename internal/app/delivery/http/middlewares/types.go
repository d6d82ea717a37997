package middlewares

import (
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	IdentityProvider contracts.IdentityProvider
	InternalConfig   *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, identityProvider contracts.IdentityProvider, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:              logger,
		IdentityProvider: identityProvider,
		InternalConfig:   internalConfig,
	}
}
