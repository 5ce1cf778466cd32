package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentQuizResultModel: satu hasil per (student, quiz). Submit ulang
// setelah kuis berubah menghapus baris lama lalu membuat yang baru.
type StudentQuizResultModel struct {
	ResultID             uuid.UUID `gorm:"column:result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"result_id"`
	ResultQuizID         uuid.UUID `gorm:"column:result_quiz_id;type:uuid;not null;uniqueIndex:uq_result_quiz_student" json:"result_quiz_id"`
	ResultStudentID      uuid.UUID `gorm:"column:result_student_id;type:uuid;not null;uniqueIndex:uq_result_quiz_student" json:"result_student_id"`
	ResultScore          int       `gorm:"column:result_score;not null" json:"result_score"`
	ResultCorrectCount   int       `gorm:"column:result_correct_count;not null" json:"result_correct_count"`
	ResultTotalQuestions int       `gorm:"column:result_total_questions;not null" json:"result_total_questions"`
	ResultQuizVersion    int       `gorm:"column:result_quiz_version;not null" json:"result_quiz_version"`
	ResultCreatedAt      time.Time `gorm:"column:result_created_at;autoCreateTime" json:"result_created_at"`
}

func (StudentQuizResultModel) TableName() string {
	return "student_quiz_results"
}

// StudentQuizAnswerModel: jawaban per soal yang dipilih student pada satu hasil.
type StudentQuizAnswerModel struct {
	StudentAnswerID         uuid.UUID `gorm:"column:student_answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_answer_id"`
	StudentAnswerResultID   uuid.UUID `gorm:"column:student_answer_result_id;type:uuid;not null;index" json:"student_answer_result_id"`
	StudentAnswerQuestionID uuid.UUID `gorm:"column:student_answer_question_id;type:uuid;not null" json:"student_answer_question_id"`
	StudentAnswerAnswerID   uuid.UUID `gorm:"column:student_answer_answer_id;type:uuid;not null" json:"student_answer_answer_id"`
	StudentAnswerIsCorrect  bool      `gorm:"column:student_answer_is_correct;not null" json:"student_answer_is_correct"`
}

func (StudentQuizAnswerModel) TableName() string {
	return "student_quiz_answers"
}
