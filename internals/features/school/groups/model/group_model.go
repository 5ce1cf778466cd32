package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel merepresentasikan grup belajar (kelas kursus).
type GroupModel struct {
	GroupID        uuid.UUID `gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey" json:"group_id"`
	GroupName      string    `gorm:"column:group_name;type:varchar(200);not null" json:"group_name"`
	GroupCreatedAt time.Time `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}
