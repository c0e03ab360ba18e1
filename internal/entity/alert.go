package entity

import "time"

type AlertStatus string

const (
	AlertStatusOpen     AlertStatus = "open"
	AlertStatusResolved AlertStatus = "resolved"
)

type Alert struct {
	ID         string      `json:"id" db:"id"`
	UserID     string      `json:"user_id" db:"user_id"`
	TankID     string      `json:"tank_id" db:"tank_id"`
	SensorID   string      `json:"sensor_id" db:"sensor_id"`
	SensorType SensorType  `json:"sensor_type" db:"sensor_type"`
	Message    string      `json:"message" db:"message"`
	Value      float64     `json:"value" db:"value"`
	Status     AlertStatus `json:"status" db:"status"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time  `json:"resolved_at,omitempty" db:"resolved_at"`
}
