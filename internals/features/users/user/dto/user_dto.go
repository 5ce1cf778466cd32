package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/users/user/model"
)

// UserDTO: bentuk aman untuk response (tanpa password)
type UserDTO struct {
	ID              uuid.UUID `json:"id"`
	UserName        string    `json:"user_name"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	PhoneNumber     string    `json:"phone_number"`
	Role            string    `json:"role"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	JoinedAt        time.Time `json:"joined_at"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		ID:              u.ID,
		UserName:        u.UserName,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		PhoneNumber:     u.PhoneNumber,
		Role:            u.Role,
		ProfileImageURL: u.ProfileImageURL,
		IsActive:        u.IsActive,
		JoinedAt:        u.JoinedAt,
	}
}

func ToUserDTOs(users []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

// CreateUserRequest dipakai admin saat menambah student/teacher
type CreateUserRequest struct {
	UserName        string `json:"user_name" validate:"required,min=3,max=50"`
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	PhoneNumber     string `json:"phone_number" validate:"required,max=20"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=teacher student"`
}

// UpdateUserRequest: partial update, field nil = tidak diubah
type UpdateUserRequest struct {
	UserName    *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// ResetPasswordRequest dipakai admin mereset password user lain
type ResetPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// BulkDeleteUsersRequest: hapus banyak user sekaligus
type BulkDeleteUsersRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// ImportResult: rekap hasil import CSV
type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
