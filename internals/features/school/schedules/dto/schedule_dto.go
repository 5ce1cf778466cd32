package dto

import (
	"github.com/google/uuid"

	schedulemodel "kursusku_backend/internals/features/school/schedules/model"
)

type ScheduleDTO struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	GroupID    uuid.UUID `json:"group_id"`
	TeacherID  uuid.UUID `json:"teacher_id"`
	Day        string    `json:"day"`
	StartTime  string    `json:"start_time"` // "HH:MM"
	EndTime    string    `json:"end_time"`   // "HH:MM"
}

func ToScheduleDTO(s schedulemodel.ScheduleModel) ScheduleDTO {
	return ScheduleDTO{
		ScheduleID: s.ScheduleID,
		GroupID:    s.ScheduleGroupID,
		TeacherID:  s.ScheduleTeacherID,
		Day:        s.ScheduleDay,
		StartTime:  s.ScheduleStartTime.Format("15:04"),
		EndTime:    s.ScheduleEndTime.Format("15:04"),
	}
}

// ScheduleSlotInput: satu slot dari editor jadwal
type ScheduleSlotInput struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	Day       string    `json:"day" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"` // "HH:MM"
	EndTime   string    `json:"end_time" validate:"required"`   // "HH:MM"
}

// ReplaceGroupScheduleRequest: ganti seluruh jadwal grup (replace-all)
type ReplaceGroupScheduleRequest struct {
	Slots []ScheduleSlotInput `json:"slots" validate:"dive"`
}

// DaySlotDTO: satu hari di tabel mingguan
type DaySlotDTO struct {
	Day   string   `json:"day"`
	Times []string `json:"times"` // "HH:MM - HH:MM"
}

// GroupScheduleTableDTO: tabel mingguan satu grup
type GroupScheduleTableDTO struct {
	GroupID   uuid.UUID    `json:"group_id"`
	GroupName string       `json:"group_name"`
	Days      []DaySlotDTO `json:"days"`
}
