package tankHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	tankService "AquaBackend/internal/api/tank/service"
	"AquaBackend/internal/middleware"
)

type TankHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	tankService tankService.ITankService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	tankService tankService.ITankService,
) *TankHandler {
	return &TankHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		tankService: tankService,
	}
}

func (h *TankHandler) Start(srv fiber.Router) {
	tanks := srv.Group("/tanks")

	tanks.Post("/", h.middleware.NewTokenMiddleware, h.CreateTank)
	tanks.Get("/", h.middleware.NewTokenMiddleware, h.GetTanks)
	tanks.Get("/:id", h.middleware.NewTokenMiddleware, h.GetTankByID)
	tanks.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateTank)
	tanks.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTank)
}
