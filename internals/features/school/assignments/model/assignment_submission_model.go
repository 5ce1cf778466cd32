package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentSubmissionModel: satu jawaban per (assignment, student).
// Kirim ulang mengganti jawaban lama.
type AssignmentSubmissionModel struct {
	SubmissionID           uuid.UUID  `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`
	SubmissionAssignmentID uuid.UUID  `gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_student" json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID  `gorm:"column:submission_student_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_student" json:"submission_student_id"`
	SubmissionText         string     `gorm:"column:submission_text;type:text" json:"submission_text"`
	SubmissionFileURL      *string    `gorm:"column:submission_file_url;type:text" json:"submission_file_url"`
	SubmissionFileType     *int       `gorm:"column:submission_file_type" json:"submission_file_type"`
	SubmissionGrade        *int       `gorm:"column:submission_grade" json:"submission_grade"`
	SubmissionGradedAt     *time.Time `gorm:"column:submission_graded_at" json:"submission_graded_at"`
	SubmissionCreatedAt    time.Time  `gorm:"column:submission_created_at;autoCreateTime" json:"submission_created_at"`
}

func (AssignmentSubmissionModel) TableName() string {
	return "assignment_submissions"
}
