package entity

import "time"

type Tank struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TankWithSensors is a tank joined with its sensors, as returned by the
// per-turn infrastructure snapshot.
type TankWithSensors struct {
	Tank    Tank     `json:"tank"`
	Sensors []Sensor `json:"sensors"`
}

// UserInfrastructure is the read-only snapshot of a user's live
// infrastructure fetched once per assistant turn. It is never cached
// across turns.
type UserInfrastructure struct {
	Tanks          []TankWithSensors `json:"tanks"`
	OpenAlertCount int               `json:"open_alert_count"`
	ReportCount    int               `json:"report_count"`
}
