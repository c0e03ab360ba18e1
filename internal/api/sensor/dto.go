package sensor

import "time"

type CreateSensorRequest struct {
	UserID string `json:"-"`
	TankID string `json:"tank_id" validate:"required"`
	Name   string `json:"name" validate:"omitempty,min=1,max=100"`
	Type   string `json:"type" validate:"required,oneof=TEMPERATURE PH OXYGEN"`
}

type SensorResponse struct {
	ID              string    `json:"id"`
	TankID          string    `json:"tank_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	HardwareID      string    `json:"hardware_id"`
	CalibrationDate time.Time `json:"calibration_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SensorListResponse struct {
	Sensors []SensorResponse `json:"sensors"`
	Total   int              `json:"total"`
}
