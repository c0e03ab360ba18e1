package reportHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	reportService "AquaBackend/internal/api/report/service"
	"AquaBackend/internal/middleware"
)

type ReportHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	reports := srv.Group("/reports")

	reports.Post("/", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.CreateReport)
	reports.Get("/", h.middleware.NewTokenMiddleware, h.GetReports)
	reports.Get("/:id", h.middleware.NewTokenMiddleware, h.GetReportByID)
	reports.Get("/:id/download", h.middleware.NewTokenMiddleware, h.GetReportDownloadURL)
}
