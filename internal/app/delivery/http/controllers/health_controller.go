package controllers

import (
	"context"
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/dto/responses"
	"doctor-appointment-service/internal/pkg/utils"
	"net/http"
	"sort"

	"go.uber.org/zap"
)

// ReadinessCheck pings one backing dependency.
type ReadinessCheck func(ctx context.Context) error

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Checks         map[string]ReadinessCheck
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig, checks map[string]ReadinessCheck) *HealthController {
	return &HealthController{
		Log:            logger,
		InternalConfig: internalConfig,
		Checks:         checks,
	}
}

func (ctrl *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WelcomeMessage, responses.ServiceInfo{
		Message: constvars.WelcomeMessage,
		Version: ctrl.InternalConfig.App.Version,
	})
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, responses.Health{
		Status: constvars.HealthyMessage,
	})
}

func (ctrl *HealthController) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ready := true
	checks := make(map[string]string, len(names))
	for _, name := range names {
		err := ctrl.Checks[name](ctx)
		if err != nil {
			ready = false
			checks[name] = err.Error()
			ctrl.Log.Warn("HealthController.Readiness dependency not ready",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingDependencyKey, name),
				zap.Error(err),
			)
			continue
		}
		checks[name] = constvars.ReadyMessage
	}

	status := constvars.ReadyMessage
	if !ready {
		status = constvars.NotReadyMessage
	}
	utils.BuildHealthResponse(w, ready, status, responses.Health{
		Status: status,
		Checks: checks,
	})
}
