package alert

import "time"

type IngestReadingRequest struct {
	UserID   string  `json:"-"`
	SensorID string  `json:"-"`
	Value    float64 `json:"value" validate:"required"`
}

type ReadingResponse struct {
	ID          string    `json:"id"`
	SensorID    string    `json:"sensor_id"`
	Value       float64   `json:"value"`
	RecordedAt  time.Time `json:"recorded_at"`
	AlertRaised bool      `json:"alert_raised"`
}

type AlertResponse struct {
	ID         string     `json:"id"`
	TankID     string     `json:"tank_id"`
	SensorID   string     `json:"sensor_id"`
	SensorType string     `json:"sensor_type"`
	Message    string     `json:"message"`
	Value      float64    `json:"value"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Total  int             `json:"total"`
}
