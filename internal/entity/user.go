package entity

import "time"

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	Username    string    `db:"username"`
	PhoneNumber string    `db:"phone_number"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
	Role     string
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
