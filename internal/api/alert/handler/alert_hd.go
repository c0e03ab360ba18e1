package alertHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"AquaBackend/internal/api/alert"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
	"AquaBackend/pkg/handlerUtil"
	jwtPkg "AquaBackend/pkg/jwt"
)

func (h *AlertHandler) IngestReading(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	sensorID := ctx.Params("id")
	if sensorID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("sensor ID is required"), ctx.Path())
	}

	var req alert.IngestReadingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}
	req.UserID = userData.ID
	req.SensorID = sensorID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	reading, alertRaised, err := h.alertService.IngestReading(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "ingest_reading")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, alert.ReadingResponse{
			ID:          reading.ID,
			SensorID:    reading.SensorID,
			Value:       reading.Value,
			RecordedAt:  reading.RecordedAt,
			AlertRaised: alertRaised,
		})
	}
}

func (h *AlertHandler) GetAlerts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	status := entity.AlertStatus(ctx.Query("status"))
	if status != "" && status != entity.AlertStatusOpen && status != entity.AlertStatusResolved {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("status must be open or resolved"), ctx.Path())
	}

	alerts, err := h.alertService.GetAlertsByUserID(c, userData.ID, status)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_alerts")
	}

	responses := make([]alert.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, makeAlertResponse(a))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, alert.AlertListResponse{
			Alerts: responses,
			Total:  len(responses),
		})
	}
}

func (h *AlertHandler) ResolveAlert(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("alert ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.alertService.ResolveAlert(c, id, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_alert")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Alert resolved successfully",
		})
	}
}

func makeAlertResponse(a entity.Alert) alert.AlertResponse {
	return alert.AlertResponse{
		ID:         a.ID,
		TankID:     a.TankID,
		SensorID:   a.SensorID,
		SensorType: string(a.SensorType),
		Message:    a.Message,
		Value:      a.Value,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}
