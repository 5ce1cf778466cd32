package dto

import (
	"time"

	"github.com/google/uuid"

	assignmentmodel "kursusku_backend/internals/features/school/assignments/model"
)

type AssignmentDTO struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	GroupID      uuid.UUID `json:"group_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileURL      *string   `json:"file_url"`
	FileType     *int      `json:"file_type"`
	MaxScore     int       `json:"max_score"`
	Deadline     time.Time `json:"deadline"`
	Expired      bool      `json:"expired"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToAssignmentDTO(a assignmentmodel.AssignmentModel, now time.Time) AssignmentDTO {
	return AssignmentDTO{
		AssignmentID: a.AssignmentID,
		GroupID:      a.AssignmentGroupID,
		Title:        a.AssignmentTitle,
		Description:  a.AssignmentDescription,
		FileURL:      a.AssignmentFileURL,
		FileType:     a.AssignmentFileType,
		MaxScore:     a.AssignmentMaxScore,
		Deadline:     a.AssignmentDeadline,
		Expired:      now.After(a.AssignmentDeadline),
		CreatedAt:    a.AssignmentCreatedAt,
	}
}

type SubmissionDTO struct {
	SubmissionID uuid.UUID  `json:"submission_id"`
	AssignmentID uuid.UUID  `json:"assignment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	Text         string     `json:"text"`
	FileURL      *string    `json:"file_url"`
	FileType     *int       `json:"file_type"`
	Grade        *int       `json:"grade"`
	GradedAt     *time.Time `json:"graded_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToSubmissionDTO(s assignmentmodel.AssignmentSubmissionModel) SubmissionDTO {
	return SubmissionDTO{
		SubmissionID: s.SubmissionID,
		AssignmentID: s.SubmissionAssignmentID,
		StudentID:    s.SubmissionStudentID,
		Text:         s.SubmissionText,
		FileURL:      s.SubmissionFileURL,
		FileType:     s.SubmissionFileType,
		Grade:        s.SubmissionGrade,
		GradedAt:     s.SubmissionGradedAt,
		CreatedAt:    s.SubmissionCreatedAt,
	}
}

// SubmissionRowDTO: satu student yang wajib mengerjakan tugas.
// Submission nil kalau belum mengirim.
type SubmissionRowDTO struct {
	StudentID   uuid.UUID      `json:"student_id"`
	StudentName string         `json:"student_name"`
	UserName    string         `json:"user_name"`
	Submission  *SubmissionDTO `json:"submission"`
}

// StudentAssignmentItemDTO: tugas + jawaban student (nil kalau belum kirim).
type StudentAssignmentItemDTO struct {
	AssignmentDTO
	Submission *SubmissionDTO `json:"submission"`
}

// CreateAssignmentRequest dikirim sebagai multipart form. File diambil
// terpisah dari field "file".
type CreateAssignmentRequest struct {
	GroupID     uuid.UUID `form:"group_id" json:"group_id" validate:"required"`
	Title       string    `form:"title" json:"title" validate:"required,max=200"`
	Description string    `form:"description" json:"description"`
	MaxScore    int       `form:"max_score" json:"max_score" validate:"omitempty,gte=1,lte=1000"`
	Deadline    string    `form:"deadline" json:"deadline" validate:"required"` // "2006-01-02 15:04" atau RFC3339
}

type UpdateAssignmentRequest struct {
	Title       *string `form:"title" json:"title" validate:"omitempty,max=200"`
	Description *string `form:"description" json:"description"`
	MaxScore    *int    `form:"max_score" json:"max_score" validate:"omitempty,gte=1,lte=1000"`
	Deadline    *string `form:"deadline" json:"deadline"`
}

type GradeSubmissionRequest struct {
	Grade int `json:"grade" validate:"gte=0"`
}

// SubmitAssignmentRequest: jawaban student (multipart, file opsional).
type SubmitAssignmentRequest struct {
	Text string `form:"text" json:"text"`
}
