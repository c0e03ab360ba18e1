package entity

import "time"

type ReportRange string

const (
	ReportRangeToday ReportRange = "today"
	ReportRangeWeek  ReportRange = "week"
	ReportRangeMonth ReportRange = "month"
)

var reportRangeLabels = map[ReportRange]string{
	ReportRangeToday: "de hoy",
	ReportRangeWeek:  "semanal",
	ReportRangeMonth: "mensual",
}

func (r ReportRange) Label() string {
	if label, ok := reportRangeLabels[r]; ok {
		return label
	}
	return string(r)
}

type ReportStatus string

const (
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusFailed     ReportStatus = "failed"
)

type Report struct {
	ID          string       `json:"id" db:"id"`
	UserID      string       `json:"user_id" db:"user_id"`
	TankID      string       `json:"tank_id" db:"tank_id"`
	Name        string       `json:"name" db:"name"`
	Status      ReportStatus `json:"status" db:"status"`
	FileURL     string       `json:"file_url" db:"file_url"`
	StartDate   time.Time    `json:"start_date" db:"start_date"`
	EndDate     time.Time    `json:"end_date" db:"end_date"`
	IsAutomatic bool         `json:"is_automatic" db:"is_automatic"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}
