package alertService

import (
	"fmt"

	"AquaBackend/internal/entity"
)

// Safe operating ranges for tilapia grow-out tanks. A reading outside the
// range for its sensor type opens an alert.
const (
	minTemperature = 18.0
	maxTemperature = 30.0
	minPH          = 6.5
	maxPH          = 8.5
	minOxygen      = 5.0
)

// evaluateReading returns the Spanish alert message for an out-of-range
// value, or empty when the reading is within bounds.
func evaluateReading(sensorType entity.SensorType, value float64) string {
	switch sensorType {
	case entity.SensorTypeTemperature:
		if value < minTemperature {
			return fmt.Sprintf("Temperatura baja: %.1f°C (mínimo %.1f°C)", value, minTemperature)
		}
		if value > maxTemperature {
			return fmt.Sprintf("Temperatura alta: %.1f°C (máximo %.1f°C)", value, maxTemperature)
		}
	case entity.SensorTypePH:
		if value < minPH {
			return fmt.Sprintf("pH bajo: %.2f (mínimo %.2f)", value, minPH)
		}
		if value > maxPH {
			return fmt.Sprintf("pH alto: %.2f (máximo %.2f)", value, maxPH)
		}
	case entity.SensorTypeOxygen:
		if value < minOxygen {
			return fmt.Sprintf("Oxígeno disuelto bajo: %.2f mg/L (mínimo %.2f mg/L)", value, minOxygen)
		}
	}

	return ""
}
