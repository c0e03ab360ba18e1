package tank

import "time"

type CreateTankRequest struct {
	UserID   string `json:"-"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Location string `json:"location" validate:"max=200"`
}

type UpdateTankRequest struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=100"`
	Location string `json:"location" validate:"omitempty,max=200"`
}

type TankResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TankListResponse struct {
	Tanks []TankResponse `json:"tanks"`
	Total int            `json:"total"`
}
