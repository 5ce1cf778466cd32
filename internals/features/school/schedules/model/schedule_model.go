package model

import (
	"github.com/google/uuid"

	"kursusku_backend/internals/helpers/dbtime"
)

// ScheduleModel: satu slot jadwal (grup, teacher, hari, jam mulai-selesai).
type ScheduleModel struct {
	ScheduleID        uuid.UUID  `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleGroupID   uuid.UUID  `gorm:"column:schedule_group_id;type:uuid;not null;index" json:"schedule_group_id"`
	ScheduleTeacherID uuid.UUID  `gorm:"column:schedule_teacher_id;type:uuid;not null;index" json:"schedule_teacher_id"`
	ScheduleDay       string     `gorm:"column:schedule_day;type:varchar(10);not null" json:"schedule_day"`
	ScheduleStartTime dbtime.Tod `gorm:"column:schedule_start_time;type:time;not null" json:"schedule_start_time"`
	ScheduleEndTime   dbtime.Tod `gorm:"column:schedule_end_time;type:time;not null" json:"schedule_end_time"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
