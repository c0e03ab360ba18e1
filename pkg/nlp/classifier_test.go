package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AquaBackend/internal/entity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Crea Un TANQUE", expected: "crea un tanque"},
		{name: "strips diacritics", input: "oxígeno", expected: "oxigeno"},
		{name: "strips punctuation", input: "¡Oxígeno, por favor!", expected: "oxigeno por favor"},
		{name: "collapses whitespace", input: "  crea   un  tanque ", expected: "crea un tanque"},
		{name: "empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestClassifyCreateTank(t *testing.T) {
	for _, input := range []string{
		"crea un tanque",
		"crear un tanque nuevo",
		"agrega un tanque",
	} {
		t.Run(input, func(t *testing.T) {
			got := Classify(input)
			require.NotNil(t, got)
			assert.Equal(t, ActionCreateTank, got.Action)
			require.NotNil(t, got.CreateTank)
		})
	}
}

func TestClassifyDeleteTank(t *testing.T) {
	got := Classify("elimina el tanque 004")
	require.NotNil(t, got)
	assert.Equal(t, ActionDeleteTank, got.Action)
	require.NotNil(t, got.DeleteTank)
	assert.Equal(t, "004", got.DeleteTank.TankName)

	got = Classify("borra el tanque")
	require.NotNil(t, got)
	assert.Equal(t, ActionDeleteTank, got.Action)
	assert.Empty(t, got.DeleteTank.TankName)
}

func TestClassifyEditTankName(t *testing.T) {
	got := Classify("cambia el nombre del tanque 004 a Estanque Norte")
	require.NotNil(t, got)
	assert.Equal(t, ActionEditTank, got.Action)
	require.NotNil(t, got.EditTank)
	assert.Equal(t, "004", got.EditTank.TankName)
	assert.Equal(t, "estanque norte", got.EditTank.NewName)
	assert.Empty(t, got.EditTank.NewLocation)

	got = Classify("renombra el tanque 004 a tilapia 2")
	require.NotNil(t, got)
	assert.Equal(t, ActionEditTank, got.Action)
	assert.Equal(t, "tilapia 2", got.EditTank.NewName)
}

func TestClassifyEditTankLocation(t *testing.T) {
	got := Classify("cambia la ubicación del tanque 004 a zona norte")
	require.NotNil(t, got)
	assert.Equal(t, ActionEditTank, got.Action)
	require.NotNil(t, got.EditTank)
	assert.Equal(t, "004", got.EditTank.TankName)
	assert.Equal(t, "zona norte", got.EditTank.NewLocation)
	assert.Empty(t, got.EditTank.NewName)
}

func TestClassifyCreateSensors(t *testing.T) {
	got := Classify("agrega un sensor de pH al tanque 004")
	require.NotNil(t, got)
	assert.Equal(t, ActionCreateSensors, got.Action)
	require.NotNil(t, got.CreateSensors)
	assert.Equal(t, []entity.SensorType{entity.SensorTypePH}, got.CreateSensors.Types)
	assert.Equal(t, "004", got.CreateSensors.TankName)

	got = Classify("agrega todos los sensores al tanque 004")
	require.NotNil(t, got)
	assert.Equal(t, ActionCreateSensors, got.Action)
	assert.ElementsMatch(t, entity.AllSensorTypes, got.CreateSensors.Types)

	got = Classify("crea sensores de temperatura y oxígeno en el tanque 002")
	require.NotNil(t, got)
	assert.ElementsMatch(t,
		[]entity.SensorType{entity.SensorTypeTemperature, entity.SensorTypeOxygen},
		got.CreateSensors.Types)
}

func TestClassifyCreateSensorsWithoutTypeIsMiss(t *testing.T) {
	assert.Nil(t, Classify("agrega un sensor al tanque 004"))
}

func TestClassifyDeleteSensor(t *testing.T) {
	got := Classify("elimina el sensor de temperatura del tanque 004")
	require.NotNil(t, got)
	assert.Equal(t, ActionDeleteSensor, got.Action)
	require.NotNil(t, got.DeleteSensor)
	assert.Equal(t, entity.SensorTypeTemperature, got.DeleteSensor.Type)
	assert.Equal(t, "004", got.DeleteSensor.TankName)

	got = Classify("quita el sensor de oxígeno")
	require.NotNil(t, got)
	assert.Equal(t, entity.SensorTypeOxygen, got.DeleteSensor.Type)
	assert.Empty(t, got.DeleteSensor.TankName)

	// No type named defaults to temperature.
	got = Classify("borra el sensor")
	require.NotNil(t, got)
	assert.Equal(t, entity.SensorTypeTemperature, got.DeleteSensor.Type)
}

func TestClassifyCreateReport(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.ReportRange
	}{
		{input: "genera el reporte de la semana", expected: entity.ReportRangeWeek},
		{input: "dame el reporte del mes", expected: entity.ReportRangeMonth},
		{input: "crea un reporte", expected: entity.ReportRangeToday},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Classify(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, ActionCreateReport, got.Action)
			require.NotNil(t, got.CreateReport)
			assert.Equal(t, tt.expected, got.CreateReport.Range)
		})
	}
}

func TestClassifyShowStatus(t *testing.T) {
	for _, input := range []string{
		"muéstrame el estado de mis tanques",
		"dame un resumen",
		"información de mi cuenta",
	} {
		t.Run(input, func(t *testing.T) {
			got := Classify(input)
			require.NotNil(t, got)
			assert.Equal(t, ActionShowStatus, got.Action)
		})
	}
}

func TestClassifyMiss(t *testing.T) {
	for _, input := range []string{
		"hola",
		"gracias",
		"cuanto cuesta una tilapia",
		"",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Nil(t, Classify(input))
		})
	}
}

func TestClassifyOrderingSensorBeatsTank(t *testing.T) {
	// "sensor" plus "tanque" in a creation phrase must hit the sensor
	// rule, never the tank rule.
	got := Classify("agrega un sensor de ph al tanque 004")
	require.NotNil(t, got)
	assert.Equal(t, ActionCreateSensors, got.Action)

	got = Classify("elimina el sensor de ph del tanque 004")
	require.NotNil(t, got)
	assert.Equal(t, ActionDeleteSensor, got.Action)
}
