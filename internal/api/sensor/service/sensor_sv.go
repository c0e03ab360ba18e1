package sensorService

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/sensor"
	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

func (s *sensorService) CreateSensor(ctx context.Context, req sensor.CreateSensorRequest) (entity.Sensor, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sensorType := entity.SensorType(req.Type)
	if !sensorType.Valid() {
		return entity.Sensor{}, sensor.ErrInvalidSensorType
	}

	tankRepo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return entity.Sensor{}, err
	}

	owningTank, err := tankRepo.Tanks.GetTankByID(ctx, req.TankID)
	if err != nil {
		return entity.Sensor{}, err
	}
	if owningTank.UserID != req.UserID {
		return entity.Sensor{}, tank.ErrNotTankOwner
	}

	repo, err := s.sensorRepo.NewClient(false)
	if err != nil {
		return entity.Sensor{}, err
	}

	exists, err := repo.Sensors.ExistsSensorType(ctx, req.TankID, sensorType)
	if err != nil {
		return entity.Sensor{}, err
	}
	if exists {
		return entity.Sensor{}, sensor.ErrDuplicateSensorType
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate sensor ID")
		return entity.Sensor{}, err
	}

	hardwareID, err := s.utils.NewHardwareID(req.Type)
	if err != nil {
		return entity.Sensor{}, err
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Sensor de %s", sensorType.Label())
	}

	now := time.Now()
	newSensor := entity.Sensor{
		ID:              id,
		TankID:          req.TankID,
		Name:            name,
		Type:            sensorType,
		HardwareID:      hardwareID,
		CalibrationDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.Sensors.CreateSensor(ctx, newSensor); err != nil {
		return entity.Sensor{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"sensor_id":  id,
		"tank_id":    req.TankID,
		"type":       req.Type,
	}).Info("Sensor created")

	return newSensor, nil
}

func (s *sensorService) GetSensorsByTankID(ctx context.Context, tankID string, userID string) ([]entity.Sensor, error) {
	tankRepo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	owningTank, err := tankRepo.Tanks.GetTankByID(ctx, tankID)
	if err != nil {
		return nil, err
	}
	if owningTank.UserID != userID {
		return nil, tank.ErrNotTankOwner
	}

	repo, err := s.sensorRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Sensors.GetSensorsByTankID(ctx, tankID)
}

// DeleteSensor enforces ownership through the owning tank; admins may delete
// any sensor.
func (s *sensorService) DeleteSensor(ctx context.Context, id string, requesterID string, requesterRole string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.sensorRepo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Sensors.GetSensorByID(ctx, id)
	if err != nil {
		return err
	}

	if requesterRole != entity.RoleAdmin {
		tankRepo, err := s.tankRepo.NewClient(false)
		if err != nil {
			return err
		}

		owningTank, err := tankRepo.Tanks.GetTankByID(ctx, existing.TankID)
		if err != nil {
			return err
		}
		if owningTank.UserID != requesterID {
			return sensor.ErrNotSensorOwner
		}
	}

	if err := repo.Sensors.DeleteSensor(ctx, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"sensor_id":  id,
		"tank_id":    existing.TankID,
	}).Info("Sensor deleted")

	return nil
}
