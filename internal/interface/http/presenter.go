package handlers

import (
	"time"

	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
)

// userView is the public shape of a user. The password hash never leaves the service.
type userView struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone_number"`
	Role         string    `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Pincode      string    `json:"pincode"`
	Gender       string    `json:"gender"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func presentUser(u *entity.User) userView {
	return userView{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         string(u.Role),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Address:      u.Address,
		City:         u.City,
		Pincode:      u.Pincode,
		Gender:       string(u.Gender),
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
