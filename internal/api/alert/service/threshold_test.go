package alertService

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"AquaBackend/internal/entity"
)

func TestEvaluateReading(t *testing.T) {
	tests := []struct {
		name       string
		sensorType entity.SensorType
		value      float64
		wantAlert  bool
	}{
		{name: "temperature in range", sensorType: entity.SensorTypeTemperature, value: 24.0, wantAlert: false},
		{name: "temperature at lower bound", sensorType: entity.SensorTypeTemperature, value: 18.0, wantAlert: false},
		{name: "temperature too low", sensorType: entity.SensorTypeTemperature, value: 15.5, wantAlert: true},
		{name: "temperature at upper bound", sensorType: entity.SensorTypeTemperature, value: 30.0, wantAlert: false},
		{name: "temperature too high", sensorType: entity.SensorTypeTemperature, value: 31.2, wantAlert: true},
		{name: "ph in range", sensorType: entity.SensorTypePH, value: 7.2, wantAlert: false},
		{name: "ph too low", sensorType: entity.SensorTypePH, value: 6.0, wantAlert: true},
		{name: "ph too high", sensorType: entity.SensorTypePH, value: 9.1, wantAlert: true},
		{name: "oxygen in range", sensorType: entity.SensorTypeOxygen, value: 6.5, wantAlert: false},
		{name: "oxygen at bound", sensorType: entity.SensorTypeOxygen, value: 5.0, wantAlert: false},
		{name: "oxygen too low", sensorType: entity.SensorTypeOxygen, value: 3.4, wantAlert: true},
		{name: "unknown type never alerts", sensorType: entity.SensorType("SALINITY"), value: 999, wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := evaluateReading(tt.sensorType, tt.value)
			if tt.wantAlert {
				assert.NotEmpty(t, message)
			} else {
				assert.Empty(t, message)
			}
		})
	}
}
