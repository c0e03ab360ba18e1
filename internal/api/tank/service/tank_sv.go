package tankService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

func (s *tankService) CreateTank(ctx context.Context, req tank.CreateTankRequest) (entity.Tank, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return entity.Tank{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate tank ID")
		return entity.Tank{}, err
	}

	now := time.Now()
	newTank := entity.Tank{
		ID:        id,
		UserID:    req.UserID,
		Name:      req.Name,
		Location:  req.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Tanks.CreateTank(ctx, newTank); err != nil {
		return entity.Tank{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"tank_id":    id,
		"user_id":    req.UserID,
	}).Info("Tank created")

	return newTank, nil
}

func (s *tankService) GetTankByID(ctx context.Context, id string) (entity.Tank, error) {
	repo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return entity.Tank{}, err
	}

	return repo.Tanks.GetTankByID(ctx, id)
}

func (s *tankService) GetTanksByUserID(ctx context.Context, userID string) ([]entity.Tank, error) {
	repo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Tanks.GetTanksByUserID(ctx, userID)
}

func (s *tankService) UpdateTank(ctx context.Context, id string, userID string, req tank.UpdateTankRequest) (entity.Tank, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return entity.Tank{}, err
	}

	existing, err := repo.Tanks.GetTankByID(ctx, id)
	if err != nil {
		return entity.Tank{}, err
	}
	if existing.UserID != userID {
		return entity.Tank{}, tank.ErrNotTankOwner
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Location != "" {
		existing.Location = req.Location
	}
	existing.UpdatedAt = time.Now()

	if err := repo.Tanks.UpdateTank(ctx, existing); err != nil {
		return entity.Tank{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"tank_id":    id,
	}).Info("Tank updated")

	return existing, nil
}

// DeleteTank removes a tank only when no sensors remain attached; sensors
// must be deleted first.
func (s *tankService) DeleteTank(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tankRepo.NewClient(true)
	if err != nil {
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Tanks.GetTankByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return tank.ErrNotTankOwner
	}

	sensorCount, err := repo.Tanks.CountSensors(ctx, id)
	if err != nil {
		return err
	}
	if sensorCount > 0 {
		return tank.ErrTankHasSensors
	}

	if err := repo.Tanks.DeleteTank(ctx, id); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"tank_id":    id,
	}).Info("Tank deleted")

	return nil
}
