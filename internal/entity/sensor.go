package entity

import "time"

type SensorType string

const (
	SensorTypeTemperature SensorType = "TEMPERATURE"
	SensorTypePH          SensorType = "PH"
	SensorTypeOxygen      SensorType = "OXYGEN"
)

// AllSensorTypes lists every supported type in a fixed order so that
// derived sets stay deterministic.
var AllSensorTypes = []SensorType{
	SensorTypeTemperature,
	SensorTypePH,
	SensorTypeOxygen,
}

var sensorTypeLabels = map[SensorType]string{
	SensorTypeTemperature: "Temperatura",
	SensorTypePH:          "pH",
	SensorTypeOxygen:      "Oxígeno",
}

// Label returns the user-facing Spanish name of the type.
func (t SensorType) Label() string {
	if label, ok := sensorTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t SensorType) Valid() bool {
	_, ok := sensorTypeLabels[t]
	return ok
}

type Sensor struct {
	ID              string     `json:"id" db:"id"`
	TankID          string     `json:"tank_id" db:"tank_id"`
	Name            string     `json:"name" db:"name"`
	Type            SensorType `json:"type" db:"type"`
	HardwareID      string     `json:"hardware_id" db:"hardware_id"`
	CalibrationDate time.Time  `json:"calibration_date" db:"calibration_date"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

type SensorReading struct {
	ID         string    `json:"id" db:"id"`
	SensorID   string    `json:"sensor_id" db:"sensor_id"`
	Value      float64   `json:"value" db:"value"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}
