package sensorHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	sensorService "AquaBackend/internal/api/sensor/service"
	"AquaBackend/internal/middleware"
)

type SensorHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	sensorService sensorService.ISensorService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	sensorService sensorService.ISensorService,
) *SensorHandler {
	return &SensorHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		sensorService: sensorService,
	}
}

func (h *SensorHandler) Start(srv fiber.Router) {
	sensors := srv.Group("/sensors")

	sensors.Post("/", h.middleware.NewTokenMiddleware, h.CreateSensor)
	sensors.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteSensor)

	srv.Get("/tanks/:id/sensors", h.middleware.NewTokenMiddleware, h.GetSensorsByTank)
}
