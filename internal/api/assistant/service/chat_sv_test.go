package assistantService

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assistantRepository "AquaBackend/internal/api/assistant/repository"
	"AquaBackend/internal/api/report"
	"AquaBackend/internal/api/sensor"
	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/conversation"
)

type stubInfraRepo struct {
	snapshot entity.UserInfrastructure
	err      error
}

func (r *stubInfraRepo) NewClient(bool) (assistantRepository.Client, error) {
	return assistantRepository.Client{Infrastructure: r}, nil
}

func (r *stubInfraRepo) GetUserInfrastructure(_ context.Context, _ string) (entity.UserInfrastructure, error) {
	return r.snapshot, r.err
}

type stubTankService struct {
	created   []tank.CreateTankRequest
	updated   []string
	deleted   []string
	deleteErr error
}

func (s *stubTankService) CreateTank(_ context.Context, req tank.CreateTankRequest) (entity.Tank, error) {
	s.created = append(s.created, req)
	return entity.Tank{ID: "tank-new", UserID: req.UserID, Name: req.Name, Location: req.Location}, nil
}

func (s *stubTankService) GetTankByID(_ context.Context, id string) (entity.Tank, error) {
	return entity.Tank{ID: id}, nil
}

func (s *stubTankService) GetTanksByUserID(_ context.Context, _ string) ([]entity.Tank, error) {
	return nil, nil
}

func (s *stubTankService) UpdateTank(_ context.Context, id string, _ string, req tank.UpdateTankRequest) (entity.Tank, error) {
	s.updated = append(s.updated, id)
	return entity.Tank{ID: id, Name: req.Name, Location: req.Location}, nil
}

func (s *stubTankService) DeleteTank(_ context.Context, id string, _ string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

type stubSensorService struct {
	created []sensor.CreateSensorRequest
	deleted []string
}

func (s *stubSensorService) CreateSensor(_ context.Context, req sensor.CreateSensorRequest) (entity.Sensor, error) {
	s.created = append(s.created, req)
	return entity.Sensor{ID: "sensor-new", TankID: req.TankID, Type: entity.SensorType(req.Type)}, nil
}

func (s *stubSensorService) GetSensorsByTankID(_ context.Context, _ string, _ string) ([]entity.Sensor, error) {
	return nil, nil
}

func (s *stubSensorService) DeleteSensor(_ context.Context, id string, _ string, _ string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubReportService struct {
	created []report.CreateReportRequest
}

func (s *stubReportService) CreateReport(_ context.Context, req report.CreateReportRequest) (entity.Report, error) {
	s.created = append(s.created, req)
	return entity.Report{ID: "report-new", Name: "Reporte semanal - Tanque 004", Status: entity.ReportStatusProcessing}, nil
}

func (s *stubReportService) GetReportByID(_ context.Context, _ string, _ string) (entity.Report, error) {
	return entity.Report{}, nil
}

func (s *stubReportService) GetReportsByUserID(_ context.Context, _ string) ([]entity.Report, error) {
	return nil, nil
}

func (s *stubReportService) GetReportDownloadURL(_ context.Context, _ string, _ string) (string, error) {
	return "", nil
}

type assistantFixture struct {
	service IAssistantService
	store   conversation.IConversationStore
	tanks   *stubTankService
	sensors *stubSensorService
	reports *stubReportService
}

func newAssistantFixture(t *testing.T, repo *stubInfraRepo) assistantFixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := conversation.NewMemoryStore(nil, conversation.DefaultTTL, conversation.DefaultSweepInterval)
	t.Cleanup(store.Shutdown)

	tanks := &stubTankService{}
	sensors := &stubSensorService{}
	reports := &stubReportService{}

	return assistantFixture{
		service: New(logger, repo, tanks, sensors, reports, store, nil),
		store:   store,
		tanks:   tanks,
		sensors: sensors,
		reports: reports,
	}
}

func snapshotWithTank(name string, sensors ...entity.Sensor) entity.UserInfrastructure {
	return entity.UserInfrastructure{
		Tanks: []entity.TankWithSensors{
			{
				Tank:    entity.Tank{ID: "tank-1", UserID: "user-1", Name: name},
				Sensors: sensors,
			},
		},
	}
}

var testUser = entity.UserLoginData{
	ID:    "user-1",
	Email: "user@example.com",
	Role:  entity.RoleUser,
}

func TestDeleteTankConfirmationRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004")})

	prompt := f.service.HandleMessage(ctx, testUser, "eliminar tanque 004")
	assert.Contains(t, prompt, "Tanque 004")
	assert.Contains(t, prompt, "¿Confirmas?")
	assert.Equal(t, conversation.StateAwaitingConfirmation, f.store.Get(ctx, testUser.ID).State)

	reply := f.service.HandleMessage(ctx, testUser, "sí")
	assert.Contains(t, reply, "✅")
	assert.Equal(t, []string{"tank-1"}, f.tanks.deleted)
	assert.Equal(t, conversation.StateIdle, f.store.Get(ctx, testUser.ID).State)
}

func TestDeleteTankWithSensorsIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004",
		entity.Sensor{ID: "sensor-1", Type: entity.SensorTypePH},
	)})

	reply := f.service.HandleMessage(ctx, testUser, "elimina el tanque 004")
	assert.Contains(t, reply, "❌")
	assert.Contains(t, reply, "sensor")
	assert.Empty(t, f.tanks.deleted)
	assert.Equal(t, conversation.StateIdle, f.store.Get(ctx, testUser.ID).State)
}

func TestNegativeReplyCancelsWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004")})

	f.service.HandleMessage(ctx, testUser, "elimina el tanque 004")
	reply := f.service.HandleMessage(ctx, testUser, "no")

	assert.Equal(t, cancelledReply, reply)
	assert.Empty(t, f.tanks.deleted)
	assert.Equal(t, conversation.StateIdle, f.store.Get(ctx, testUser.ID).State)
}

func TestUnclearReplyDropsPendingAction(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004")})

	f.service.HandleMessage(ctx, testUser, "elimina el tanque 004")
	reply := f.service.HandleMessage(ctx, testUser, "tal vez")

	assert.Equal(t, unclearReply, reply)
	assert.Empty(t, f.tanks.deleted)

	got := f.store.Get(ctx, testUser.ID)
	assert.Equal(t, conversation.StateIdle, got.State)
	assert.Nil(t, got.Pending)
}

func TestRepeatedYesDoesNotReExecute(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004")})

	f.service.HandleMessage(ctx, testUser, "elimina el tanque 004")
	f.service.HandleMessage(ctx, testUser, "sí")
	f.service.HandleMessage(ctx, testUser, "sí")

	assert.Equal(t, []string{"tank-1"}, f.tanks.deleted)
}

func TestCreateTankProposesNextSequentialName(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: entity.UserInfrastructure{
		Tanks: []entity.TankWithSensors{
			{Tank: entity.Tank{ID: "a", Name: "Tanque 001"}},
			{Tank: entity.Tank{ID: "b", Name: "Tanque 004"}},
			{Tank: entity.Tank{ID: "c", Name: "Tanque 2"}},
		},
	}})

	prompt := f.service.HandleMessage(ctx, testUser, "crea un tanque")
	assert.Contains(t, prompt, "Tanque 005")

	f.service.HandleMessage(ctx, testUser, "sí")
	require.Len(t, f.tanks.created, 1)
	assert.Equal(t, "Tanque 005", f.tanks.created[0].Name)
	assert.Equal(t, testUser.ID, f.tanks.created[0].UserID)
}

func TestCreateSensorsFiltersExistingTypes(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004",
		entity.Sensor{ID: "sensor-ph", Type: entity.SensorTypePH},
	)})

	prompt := f.service.HandleMessage(ctx, testUser, "agrega todos los sensores al tanque 004")
	assert.Contains(t, prompt, "¿Confirmas?")
	assert.Contains(t, prompt, "Temperatura")
	assert.Contains(t, prompt, "Oxígeno")
	assert.NotContains(t, prompt, "pH")

	f.service.HandleMessage(ctx, testUser, "sí")
	require.Len(t, f.sensors.created, 2)
	assert.Equal(t, string(entity.SensorTypeTemperature), f.sensors.created[0].Type)
	assert.Equal(t, string(entity.SensorTypeOxygen), f.sensors.created[1].Type)
}

func TestCreateSensorsAlreadyCompleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004",
		entity.Sensor{ID: "s1", Type: entity.SensorTypeTemperature},
		entity.Sensor{ID: "s2", Type: entity.SensorTypePH},
		entity.Sensor{ID: "s3", Type: entity.SensorTypeOxygen},
	)})

	reply := f.service.HandleMessage(ctx, testUser, "agrega todos los sensores al tanque 004")
	assert.Contains(t, reply, "ya tiene todos los sensores")
	assert.Equal(t, conversation.StateIdle, f.store.Get(ctx, testUser.ID).State)
	assert.Empty(t, f.sensors.created)
}

func TestCreateReportTargetsFirstTank(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004",
		entity.Sensor{ID: "sensor-1", Type: entity.SensorTypePH},
	)})

	prompt := f.service.HandleMessage(ctx, testUser, "genera el reporte de la semana")
	assert.Contains(t, prompt, "semanal")
	assert.Contains(t, prompt, "Tanque 004")

	f.service.HandleMessage(ctx, testUser, "sí")
	require.Len(t, f.reports.created, 1)
	assert.Equal(t, "tank-1", f.reports.created[0].TankID)
	assert.Equal(t, []string{"sensor-1"}, f.reports.created[0].SensorIDs)
	assert.Equal(t, "week", f.reports.created[0].Range)
	assert.Equal(t, testUser.Email, f.reports.created[0].UserEmail)
}

func TestShowStatusIsNeverGatedBehindConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: entity.UserInfrastructure{
		Tanks: []entity.TankWithSensors{
			{
				Tank:    entity.Tank{ID: "tank-1", Name: "Tanque 004"},
				Sensors: []entity.Sensor{{Type: entity.SensorTypePH}},
			},
		},
		OpenAlertCount: 2,
		ReportCount:    7,
	}})

	reply := f.service.HandleMessage(ctx, testUser, "muéstrame el estado")
	assert.Contains(t, reply, "Tanque 004")
	assert.Contains(t, reply, "Alertas abiertas: 2")
	assert.Contains(t, reply, "Reportes generados: 7")
	assert.Equal(t, conversation.StateIdle, f.store.Get(ctx, testUser.ID).State)
}

func TestClassificationMissReturnsHelpMenu(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: entity.UserInfrastructure{}})

	reply := f.service.HandleMessage(ctx, testUser, "hola")
	assert.Equal(t, helpMessage(), reply)
}

func TestSnapshotFailureAbortsTurnWithoutStateChange(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{err: errors.New("db down")})

	reply := f.service.HandleMessage(ctx, testUser, "elimina el tanque 004")
	assert.Equal(t, techErrorReply, reply)

	got := f.store.Get(ctx, testUser.ID)
	assert.Equal(t, conversation.StateIdle, got.State)
	assert.Nil(t, got.Pending)
}

func TestExecutionFailureIsFormattedNotPropagated(t *testing.T) {
	ctx := context.Background()
	f := newAssistantFixture(t, &stubInfraRepo{snapshot: snapshotWithTank("Tanque 004")})
	f.tanks.deleteErr = errors.New("tank vanished")

	f.service.HandleMessage(ctx, testUser, "elimina el tanque 004")
	reply := f.service.HandleMessage(ctx, testUser, "sí")

	assert.Contains(t, reply, "❌")
	assert.Contains(t, reply, "tank vanished")
	assert.Equal(t, conversation.StateIdle, f.store.Get(ctx, testUser.ID).State)
}
