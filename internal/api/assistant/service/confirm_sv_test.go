package assistantService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AquaBackend/internal/entity"
	"AquaBackend/pkg/nlp"
)

func infraWithTankNames(names ...string) entity.UserInfrastructure {
	infra := entity.UserInfrastructure{}
	for i, name := range names {
		infra.Tanks = append(infra.Tanks, entity.TankWithSensors{
			Tank: entity.Tank{ID: string(rune('a' + i)), Name: name},
		})
	}
	return infra
}

func TestNextTankName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		expected string
	}{
		{name: "empty", existing: nil, expected: "Tanque 001"},
		{name: "sequential", existing: []string{"Tanque 001", "Tanque 002"}, expected: "Tanque 003"},
		{name: "gaps take max", existing: []string{"Tanque 004", "Tanque 007"}, expected: "Tanque 008"},
		{
			name:     "malformed names are ignored",
			existing: []string{"Tanque 001", "Tanque 004", "Tanque 2"},
			expected: "Tanque 005",
		},
		{
			name:     "renamed tanks do not count",
			existing: []string{"Estanque Norte", "Tanque 010"},
			expected: "Tanque 011",
		},
		{name: "only malformed", existing: []string{"Tanque 2", "Mi Tanque"}, expected: "Tanque 001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextTankName(infraWithTankNames(tt.existing...)))
		})
	}
}

func TestFindTank(t *testing.T) {
	infra := infraWithTankNames("Tanque 004", "Estanque Norte")

	got, ok := findTank(infra, "004")
	require.True(t, ok)
	assert.Equal(t, "Tanque 004", got.Tank.Name)

	got, ok = findTank(infra, "NORTE")
	require.True(t, ok)
	assert.Equal(t, "Estanque Norte", got.Tank.Name)

	// First match in creation order wins for ambiguous references.
	got, ok = findTank(infra, "tanque")
	require.True(t, ok)
	assert.Equal(t, "Tanque 004", got.Tank.Name)

	_, ok = findTank(infra, "xyz")
	assert.False(t, ok)
}

func TestBuildCreateSensorsRequiresTankName(t *testing.T) {
	intent := &nlp.PendingAction{
		Action:        nlp.ActionCreateSensors,
		CreateSensors: &nlp.CreateSensorsParams{Types: []entity.SensorType{entity.SensorTypePH}},
	}

	outcome := buildCreateSensors(intent, infraWithTankNames("Tanque 004"))
	assert.True(t, outcome.Terminal)
	assert.Contains(t, outcome.Message, "❌")
	assert.Nil(t, outcome.Resolved)
}

func TestBuildCreateSensorsFiltering(t *testing.T) {
	infra := entity.UserInfrastructure{
		Tanks: []entity.TankWithSensors{
			{
				Tank:    entity.Tank{ID: "tank-1", Name: "Tanque 004"},
				Sensors: []entity.Sensor{{ID: "s1", Type: entity.SensorTypePH}},
			},
		},
	}

	intent := &nlp.PendingAction{
		Action: nlp.ActionCreateSensors,
		CreateSensors: &nlp.CreateSensorsParams{
			Types:    entity.AllSensorTypes,
			TankName: "004",
		},
	}

	outcome := buildCreateSensors(intent, infra)
	assert.False(t, outcome.Terminal)
	require.NotNil(t, outcome.Resolved)
	assert.Equal(t,
		[]entity.SensorType{entity.SensorTypeTemperature, entity.SensorTypeOxygen},
		outcome.Resolved.CreateSensors.MissingTypes)
	assert.Equal(t, "tank-1", outcome.Resolved.CreateSensors.TankID)
}

func TestBuildDeleteSensorDefaultsToFirstTank(t *testing.T) {
	infra := entity.UserInfrastructure{
		Tanks: []entity.TankWithSensors{
			{
				Tank:    entity.Tank{ID: "tank-1", Name: "Tanque 001"},
				Sensors: []entity.Sensor{{ID: "s1", Name: "Sensor de pH", Type: entity.SensorTypePH}},
			},
			{
				Tank:    entity.Tank{ID: "tank-2", Name: "Tanque 002"},
				Sensors: []entity.Sensor{{ID: "s2", Name: "Sensor de pH", Type: entity.SensorTypePH}},
			},
		},
	}

	intent := &nlp.PendingAction{
		Action:       nlp.ActionDeleteSensor,
		DeleteSensor: &nlp.DeleteSensorParams{Type: entity.SensorTypePH},
	}

	outcome := buildDeleteSensor(intent, infra)
	assert.False(t, outcome.Terminal)
	require.NotNil(t, outcome.Resolved)
	assert.Equal(t, "s1", outcome.Resolved.DeleteSensor.SensorID)
	assert.Equal(t, "tank-1", outcome.Resolved.DeleteSensor.TankID)
}

func TestBuildDeleteSensorMissingTypeIsRejected(t *testing.T) {
	infra := entity.UserInfrastructure{
		Tanks: []entity.TankWithSensors{
			{Tank: entity.Tank{ID: "tank-1", Name: "Tanque 001"}},
		},
	}

	intent := &nlp.PendingAction{
		Action:       nlp.ActionDeleteSensor,
		DeleteSensor: &nlp.DeleteSensorParams{Type: entity.SensorTypeOxygen},
	}

	outcome := buildDeleteSensor(intent, infra)
	assert.True(t, outcome.Terminal)
	assert.Contains(t, outcome.Message, "Oxígeno")
}

func TestBuildCreateReportWithoutTanksIsRejected(t *testing.T) {
	intent := &nlp.PendingAction{
		Action:       nlp.ActionCreateReport,
		CreateReport: &nlp.CreateReportParams{Range: entity.ReportRangeToday},
	}

	outcome := buildCreateReport(intent, entity.UserInfrastructure{})
	assert.True(t, outcome.Terminal)
	assert.Contains(t, outcome.Message, "❌")
}

func TestBuildEditTankWithoutChangesIsRejected(t *testing.T) {
	intent := &nlp.PendingAction{
		Action:   nlp.ActionEditTank,
		EditTank: &nlp.EditTankParams{TankName: "004"},
	}

	outcome := buildEditTank(intent, infraWithTankNames("Tanque 004"))
	assert.True(t, outcome.Terminal)
	assert.Contains(t, outcome.Message, "❌")
}

func TestBuildDeleteTankNotFound(t *testing.T) {
	intent := &nlp.PendingAction{
		Action:     nlp.ActionDeleteTank,
		DeleteTank: &nlp.DeleteTankParams{TankName: "999"},
	}

	outcome := buildDeleteTank(intent, infraWithTankNames("Tanque 004"))
	assert.True(t, outcome.Terminal)
	assert.Contains(t, outcome.Message, "999")
}
