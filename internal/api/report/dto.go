package report

import "time"

type CreateReportRequest struct {
	UserID    string   `json:"-"`
	UserEmail string   `json:"-"`
	TankID    string   `json:"tank_id" validate:"required"`
	SensorIDs []string `json:"sensor_ids" validate:"omitempty,dive,required"`
	Range     string   `json:"range" validate:"required,oneof=today week month"`
}

type ReportResponse struct {
	ID        string    `json:"id"`
	TankID    string    `json:"tank_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	FileURL   string    `json:"file_url,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportDownloadResponse struct {
	URL string `json:"url"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
