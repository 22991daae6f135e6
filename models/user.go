package models

import "time"

type User struct {
	ID          string    `bson:"_id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	Password    string    `bson:"password" json:"password,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Phone       string    `bson:"phone" json:"phone,omitempty"`
	Role        string    `bson:"role" json:"role"`
	DeveloperID string    `bson:"developerId" json:"developerId"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest signs a developer company up for the admin area: the
// account and its Developer catalog record are created together.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
