package tankService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AquaBackend/internal/api/tank"
	tankRepository "AquaBackend/internal/api/tank/repository"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/utils"
)

type stubTankRepo struct {
	tanks       map[string]entity.Tank
	sensorCount int
	deleted     []string
	commits     int
}

func newStubTankRepo(tanks ...entity.Tank) *stubTankRepo {
	r := &stubTankRepo{tanks: make(map[string]entity.Tank)}
	for _, t := range tanks {
		r.tanks[t.ID] = t
	}
	return r
}

func (r *stubTankRepo) NewClient(bool) (tankRepository.Client, error) {
	return tankRepository.Client{
		Tanks:    r,
		Commit:   func() error { r.commits++; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (r *stubTankRepo) CreateTank(_ context.Context, t entity.Tank) error {
	r.tanks[t.ID] = t
	return nil
}

func (r *stubTankRepo) GetTankByID(_ context.Context, id string) (entity.Tank, error) {
	t, ok := r.tanks[id]
	if !ok {
		return entity.Tank{}, tank.ErrTankNotFound
	}
	return t, nil
}

func (r *stubTankRepo) GetTanksByUserID(_ context.Context, userID string) ([]entity.Tank, error) {
	var out []entity.Tank
	for _, t := range r.tanks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTankRepo) UpdateTank(_ context.Context, t entity.Tank) error {
	r.tanks[t.ID] = t
	return nil
}

func (r *stubTankRepo) DeleteTank(_ context.Context, id string) error {
	delete(r.tanks, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubTankRepo) CountSensors(_ context.Context, _ string) (int, error) {
	return r.sensorCount, nil
}

func newTankService(repo *stubTankRepo) ITankService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, repo, utils.New())
}

func TestCreateTankGeneratesID(t *testing.T) {
	repo := newStubTankRepo()
	svc := newTankService(repo)

	created, err := svc.CreateTank(context.Background(), tank.CreateTankRequest{
		UserID:   "user-1",
		Name:     "Tanque 001",
		Location: "zona norte",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Tanque 001", created.Name)
	assert.Contains(t, repo.tanks, created.ID)
}

func TestUpdateTankKeepsUnsetFields(t *testing.T) {
	repo := newStubTankRepo(entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001", Location: "zona sur"})
	svc := newTankService(repo)

	updated, err := svc.UpdateTank(context.Background(), "t1", "user-1", tank.UpdateTankRequest{
		Name: "Estanque Norte",
	})
	require.NoError(t, err)
	assert.Equal(t, "Estanque Norte", updated.Name)
	assert.Equal(t, "zona sur", updated.Location)
}

func TestUpdateTankRejectsNonOwner(t *testing.T) {
	repo := newStubTankRepo(entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})
	svc := newTankService(repo)

	_, err := svc.UpdateTank(context.Background(), "t1", "user-2", tank.UpdateTankRequest{Name: "x"})
	assert.ErrorIs(t, err, tank.ErrNotTankOwner)
}

func TestDeleteTankBlockedBySensors(t *testing.T) {
	repo := newStubTankRepo(entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})
	repo.sensorCount = 2
	svc := newTankService(repo)

	err := svc.DeleteTank(context.Background(), "t1", "user-1")
	assert.ErrorIs(t, err, tank.ErrTankHasSensors)
	assert.Empty(t, repo.deleted)
}

func TestDeleteTankHappyPath(t *testing.T) {
	repo := newStubTankRepo(entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})
	svc := newTankService(repo)

	err := svc.DeleteTank(context.Background(), "t1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, repo.deleted)
	assert.Equal(t, 1, repo.commits)
}

func TestDeleteTankRejectsNonOwner(t *testing.T) {
	repo := newStubTankRepo(entity.Tank{ID: "t1", UserID: "user-1", Name: "Tanque 001"})
	svc := newTankService(repo)

	err := svc.DeleteTank(context.Background(), "t1", "user-2")
	assert.ErrorIs(t, err, tank.ErrNotTankOwner)
	assert.Empty(t, repo.deleted)
}
