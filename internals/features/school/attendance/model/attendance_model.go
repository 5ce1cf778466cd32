package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceModel: satu baris kehadiran per (grup, student, tanggal).
type AttendanceModel struct {
	AttendanceID        uuid.UUID      `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceGroupID   uuid.UUID      `gorm:"column:attendance_group_id;type:uuid;not null;uniqueIndex:uq_attendance_group_student_date" json:"attendance_group_id"`
	AttendanceStudentID uuid.UUID      `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_group_student_date" json:"attendance_student_id"`
	AttendanceDate      datatypes.Date `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance_group_student_date" json:"attendance_date"`
	AttendancePresent   bool           `gorm:"column:attendance_present;not null" json:"attendance_present"`
	AttendanceMarkedBy  uuid.UUID      `gorm:"column:attendance_marked_by;type:uuid;not null" json:"attendance_marked_by"`
	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
