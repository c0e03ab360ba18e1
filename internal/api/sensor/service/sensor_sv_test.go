package sensorService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AquaBackend/internal/api/sensor"
	sensorRepository "AquaBackend/internal/api/sensor/repository"
	"AquaBackend/internal/api/tank"
	tankRepository "AquaBackend/internal/api/tank/repository"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/utils"
)

type stubSensorRepo struct {
	sensors map[string]entity.Sensor
	deleted []string
}

func newStubSensorRepo(sensors ...entity.Sensor) *stubSensorRepo {
	r := &stubSensorRepo{sensors: make(map[string]entity.Sensor)}
	for _, sn := range sensors {
		r.sensors[sn.ID] = sn
	}
	return r
}

func (r *stubSensorRepo) NewClient(bool) (sensorRepository.Client, error) {
	return sensorRepository.Client{
		Sensors:  r,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (r *stubSensorRepo) CreateSensor(_ context.Context, sn entity.Sensor) error {
	r.sensors[sn.ID] = sn
	return nil
}

func (r *stubSensorRepo) GetSensorByID(_ context.Context, id string) (entity.Sensor, error) {
	sn, ok := r.sensors[id]
	if !ok {
		return entity.Sensor{}, sensor.ErrSensorNotFound
	}
	return sn, nil
}

func (r *stubSensorRepo) GetSensorsByTankID(_ context.Context, tankID string) ([]entity.Sensor, error) {
	var out []entity.Sensor
	for _, sn := range r.sensors {
		if sn.TankID == tankID {
			out = append(out, sn)
		}
	}
	return out, nil
}

func (r *stubSensorRepo) DeleteSensor(_ context.Context, id string) error {
	delete(r.sensors, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubSensorRepo) ExistsSensorType(_ context.Context, tankID string, sensorType entity.SensorType) (bool, error) {
	for _, sn := range r.sensors {
		if sn.TankID == tankID && sn.Type == sensorType {
			return true, nil
		}
	}
	return false, nil
}

type stubOwnedTankRepo struct {
	tanks map[string]entity.Tank
}

func (r *stubOwnedTankRepo) NewClient(bool) (tankRepository.Client, error) {
	return tankRepository.Client{
		Tanks:    r,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (r *stubOwnedTankRepo) CreateTank(_ context.Context, t entity.Tank) error {
	r.tanks[t.ID] = t
	return nil
}

func (r *stubOwnedTankRepo) GetTankByID(_ context.Context, id string) (entity.Tank, error) {
	t, ok := r.tanks[id]
	if !ok {
		return entity.Tank{}, tank.ErrTankNotFound
	}
	return t, nil
}

func (r *stubOwnedTankRepo) GetTanksByUserID(_ context.Context, _ string) ([]entity.Tank, error) {
	return nil, nil
}

func (r *stubOwnedTankRepo) UpdateTank(_ context.Context, _ entity.Tank) error { return nil }

func (r *stubOwnedTankRepo) DeleteTank(_ context.Context, _ string) error { return nil }

func (r *stubOwnedTankRepo) CountSensors(_ context.Context, _ string) (int, error) { return 0, nil }

func newSensorFixture(sensorRepo *stubSensorRepo, tanks ...entity.Tank) ISensorService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tankRepo := &stubOwnedTankRepo{tanks: make(map[string]entity.Tank)}
	for _, t := range tanks {
		tankRepo.tanks[t.ID] = t
	}

	return New(logger, sensorRepo, tankRepo, utils.New())
}

func TestCreateSensorDefaultsName(t *testing.T) {
	repo := newStubSensorRepo()
	svc := newSensorFixture(repo, entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})

	created, err := svc.CreateSensor(context.Background(), sensor.CreateSensorRequest{
		UserID: "user-1",
		TankID: "t1",
		Type:   "PH",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sensor de pH", created.Name)
	assert.Equal(t, entity.SensorTypePH, created.Type)
	assert.NotEmpty(t, created.HardwareID)
}

func TestCreateSensorRejectsDuplicateType(t *testing.T) {
	repo := newStubSensorRepo(entity.Sensor{ID: "s1", TankID: "t1", Type: entity.SensorTypeTemperature})
	svc := newSensorFixture(repo, entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})

	_, err := svc.CreateSensor(context.Background(), sensor.CreateSensorRequest{
		UserID: "user-1",
		TankID: "t1",
		Type:   "TEMPERATURE",
	})
	assert.ErrorIs(t, err, sensor.ErrDuplicateSensorType)
}

func TestCreateSensorRejectsUnknownType(t *testing.T) {
	repo := newStubSensorRepo()
	svc := newSensorFixture(repo, entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})

	_, err := svc.CreateSensor(context.Background(), sensor.CreateSensorRequest{
		UserID: "user-1",
		TankID: "t1",
		Type:   "SALINITY",
	})
	assert.ErrorIs(t, err, sensor.ErrInvalidSensorType)
}

func TestCreateSensorRejectsForeignTank(t *testing.T) {
	repo := newStubSensorRepo()
	svc := newSensorFixture(repo, entity.Tank{ID: "t1", UserID: "user-2", Name: "Tanque 001"})

	_, err := svc.CreateSensor(context.Background(), sensor.CreateSensorRequest{
		UserID: "user-1",
		TankID: "t1",
		Type:   "OXYGEN",
	})
	assert.ErrorIs(t, err, tank.ErrNotTankOwner)
}

func TestDeleteSensorRejectsNonOwner(t *testing.T) {
	repo := newStubSensorRepo(entity.Sensor{ID: "s1", TankID: "t1", Type: entity.SensorTypePH})
	svc := newSensorFixture(repo, entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})

	err := svc.DeleteSensor(context.Background(), "s1", "user-2", entity.RoleUser)
	assert.ErrorIs(t, err, sensor.ErrNotSensorOwner)
	assert.Empty(t, repo.deleted)
}

func TestDeleteSensorAdminBypassesOwnership(t *testing.T) {
	repo := newStubSensorRepo(entity.Sensor{ID: "s1", TankID: "t1", Type: entity.SensorTypePH})
	svc := newSensorFixture(repo, entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})

	err := svc.DeleteSensor(context.Background(), "s1", "user-2", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, repo.deleted)
}
