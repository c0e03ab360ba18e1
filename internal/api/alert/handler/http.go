package alertHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	alertService "AquaBackend/internal/api/alert/service"
	"AquaBackend/internal/middleware"
)

type AlertHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	alertService alertService.IAlertService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	alertService alertService.IAlertService,
) *AlertHandler {
	return &AlertHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		alertService: alertService,
	}
}

func (h *AlertHandler) Start(srv fiber.Router) {
	alerts := srv.Group("/alerts")

	alerts.Get("/", h.middleware.NewTokenMiddleware, h.GetAlerts)
	alerts.Patch("/:id/resolve", h.middleware.NewTokenMiddleware, h.ResolveAlert)

	srv.Post("/sensors/:id/readings", h.middleware.NewTokenMiddleware, h.IngestReading)
}
