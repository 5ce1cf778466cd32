package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupTeacherModel: penugasan teacher ke grup (m2m).
type GroupTeacherModel struct {
	GroupTeacherID        uuid.UUID `gorm:"column:group_teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"group_teacher_id"`
	GroupTeacherGroupID   uuid.UUID `gorm:"column:group_teacher_group_id;type:uuid;not null;uniqueIndex:uq_group_teacher" json:"group_teacher_group_id"`
	GroupTeacherTeacherID uuid.UUID `gorm:"column:group_teacher_teacher_id;type:uuid;not null;uniqueIndex:uq_group_teacher" json:"group_teacher_teacher_id"`
	GroupTeacherCreatedAt time.Time `gorm:"column:group_teacher_created_at;autoCreateTime" json:"group_teacher_created_at"`
}

func (GroupTeacherModel) TableName() string {
	return "group_teachers"
}
