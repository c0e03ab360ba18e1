package sensorService

import (
	"context"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/sensor"
	sensorRepository "AquaBackend/internal/api/sensor/repository"
	tankRepository "AquaBackend/internal/api/tank/repository"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/utils"
)

type ISensorService interface {
	CreateSensor(ctx context.Context, req sensor.CreateSensorRequest) (entity.Sensor, error)
	GetSensorsByTankID(ctx context.Context, tankID string, userID string) ([]entity.Sensor, error)
	DeleteSensor(ctx context.Context, id string, requesterID string, requesterRole string) error
}

type sensorService struct {
	log        *logrus.Logger
	sensorRepo sensorRepository.Repository
	tankRepo   tankRepository.Repository
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	sensorRepo sensorRepository.Repository,
	tankRepo tankRepository.Repository,
	utils utils.IUtils,
) ISensorService {
	return &sensorService{
		log:        log,
		sensorRepo: sensorRepo,
		tankRepo:   tankRepo,
		utils:      utils,
	}
}
