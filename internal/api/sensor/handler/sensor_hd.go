package sensorHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"AquaBackend/internal/api/sensor"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
	"AquaBackend/pkg/handlerUtil"
	jwtPkg "AquaBackend/pkg/jwt"
)

func (h *SensorHandler) CreateSensor(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req sensor.CreateSensorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}
	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.sensorService.CreateSensor(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_sensor")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeSensorResponse(created))
	}
}

func (h *SensorHandler) GetSensorsByTank(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	tankID := ctx.Params("id")
	if tankID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("tank ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	sensors, err := h.sensorService.GetSensorsByTankID(c, tankID, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_sensors")
	}

	responses := make([]sensor.SensorResponse, 0, len(sensors))
	for _, s := range sensors {
		responses = append(responses, makeSensorResponse(s))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, sensor.SensorListResponse{
			Sensors: responses,
			Total:   len(responses),
		})
	}
}

func (h *SensorHandler) DeleteSensor(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("sensor ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.sensorService.DeleteSensor(c, id, userData.ID, userData.Role); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_sensor")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Sensor deleted successfully",
		})
	}
}

func makeSensorResponse(s entity.Sensor) sensor.SensorResponse {
	return sensor.SensorResponse{
		ID:              s.ID,
		TankID:          s.TankID,
		Name:            s.Name,
		Type:            string(s.Type),
		HardwareID:      s.HardwareID,
		CalibrationDate: s.CalibrationDate,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
