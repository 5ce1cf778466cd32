package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel: tugas satu grup dengan tenggat dan lampiran opsional.
type AssignmentModel struct {
	AssignmentID          uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`
	AssignmentGroupID     uuid.UUID `gorm:"column:assignment_group_id;type:uuid;not null;index" json:"assignment_group_id"`
	AssignmentCreatedBy   uuid.UUID `gorm:"column:assignment_created_by;type:uuid;not null" json:"assignment_created_by"`
	AssignmentTitle       string    `gorm:"column:assignment_title;type:varchar(200);not null" json:"assignment_title"`
	AssignmentDescription string    `gorm:"column:assignment_description;type:text" json:"assignment_description"`
	AssignmentFileURL     *string   `gorm:"column:assignment_file_url;type:text" json:"assignment_file_url"`
	AssignmentFileType    *int      `gorm:"column:assignment_file_type" json:"assignment_file_type"`
	AssignmentMaxScore    int       `gorm:"column:assignment_max_score;not null;default:100" json:"assignment_max_score"`
	AssignmentDeadline    time.Time `gorm:"column:assignment_deadline;not null" json:"assignment_deadline"`
	AssignmentCreatedAt   time.Time `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt   time.Time `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
