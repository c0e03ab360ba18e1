package tankService

import (
	"context"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/tank"
	tankRepository "AquaBackend/internal/api/tank/repository"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/utils"
)

type ITankService interface {
	CreateTank(ctx context.Context, req tank.CreateTankRequest) (entity.Tank, error)
	GetTankByID(ctx context.Context, id string) (entity.Tank, error)
	GetTanksByUserID(ctx context.Context, userID string) ([]entity.Tank, error)
	UpdateTank(ctx context.Context, id string, userID string, req tank.UpdateTankRequest) (entity.Tank, error)
	DeleteTank(ctx context.Context, id string, userID string) error
}

type tankService struct {
	log      *logrus.Logger
	tankRepo tankRepository.Repository
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	tankRepo tankRepository.Repository,
	utils utils.IUtils,
) ITankService {
	return &tankService{
		log:      log,
		tankRepo: tankRepo,
		utils:    utils,
	}
}
