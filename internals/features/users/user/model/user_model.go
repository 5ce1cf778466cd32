package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// Satu tabel untuk semua role (admin, teacher, student).
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName        string    `gorm:"column:user_name;size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	FirstName       string    `gorm:"column:first_name;size:100;not null" json:"first_name" validate:"required,max=100"`
	LastName        string    `gorm:"column:last_name;size:100;not null" json:"last_name" validate:"required,max=100"`
	PhoneNumber     string    `gorm:"column:phone_number;size:20;not null" json:"phone_number" validate:"required,max=20"`
	Password        string    `gorm:"not null" json:"-" validate:"required,min=6"`
	Role            string    `gorm:"type:varchar(15);not null" json:"role" validate:"required,oneof=admin teacher student"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:text" json:"profile_image_url,omitempty"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	JoinedAt        time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// FullName untuk tampilan daftar & kwitansi
func (u UserModel) FullName() string {
	return u.FirstName + " " + u.LastName
}
