package dto

import (
	"github.com/google/uuid"
)

type AttendanceRecordInput struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Present   bool      `json:"present"`
}

// SubmitAttendanceRequest: absensi satu grup untuk hari ini, sekali kirim.
type SubmitAttendanceRequest struct {
	GroupID uuid.UUID               `json:"group_id" validate:"required"`
	Records []AttendanceRecordInput `json:"records" validate:"required,min=1,dive"`
}

// AttendanceCellDTO: satu sel tabel kehadiran.
type AttendanceCellDTO struct {
	Date    string `json:"date"` // "2006-01-02"
	Present bool   `json:"present"`
}

// StudentAttendanceRowDTO: baris tabel per student.
type StudentAttendanceRowDTO struct {
	StudentID   uuid.UUID           `json:"student_id"`
	StudentName string              `json:"student_name"`
	UserName    string              `json:"user_name"`
	Cells       []AttendanceCellDTO `json:"cells"`
	PresentDays int                 `json:"present_days"`
	AbsentDays  int                 `json:"absent_days"`
}

// GroupAttendanceTableDTO: tabel kehadiran satu grup.
type GroupAttendanceTableDTO struct {
	GroupID   uuid.UUID                 `json:"group_id"`
	GroupName string                    `json:"group_name"`
	Dates     []string                  `json:"dates"`
	Rows      []StudentAttendanceRowDTO `json:"rows"`
}

// AttendanceWindowDTO: status jendela absensi hari ini untuk satu grup.
type AttendanceWindowDTO struct {
	GroupID       uuid.UUID `json:"group_id"`
	Open          bool      `json:"open"`
	Reason        string    `json:"reason,omitempty"`
	Day           string    `json:"day"`
	AlreadyMarked bool      `json:"already_marked"`
}
