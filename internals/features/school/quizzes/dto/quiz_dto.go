package dto

import (
	"time"

	"github.com/google/uuid"

	quizmodel "kursusku_backend/internals/features/school/quizzes/model"
)

// =============================
// Output
// =============================

type QuizDTO struct {
	QuizID        uuid.UUID `json:"quiz_id"`
	GroupID       uuid.UUID `json:"group_id"`
	Title         string    `json:"title"`
	TimeLimitMin  int       `json:"time_limit_min"`
	MaxScore      int       `json:"max_score"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToQuizDTO(q quizmodel.QuizModel, questionCount int) QuizDTO {
	return QuizDTO{
		QuizID:        q.QuizID,
		GroupID:       q.QuizGroupID,
		Title:         q.QuizTitle,
		TimeLimitMin:  q.QuizTimeLimit,
		MaxScore:      q.QuizMaxScore,
		QuestionCount: questionCount,
		CreatedAt:     q.QuizCreatedAt,
		UpdatedAt:     q.QuizUpdatedAt,
	}
}

// AnswerDTO dipakai di tampilan teacher/admin (termasuk kunci jawaban).
type AnswerDTO struct {
	AnswerID  uuid.UUID `json:"answer_id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

type QuestionDTO struct {
	QuestionID uuid.UUID   `json:"question_id"`
	Text       string      `json:"text"`
	Answers    []AnswerDTO `json:"answers"`
}

// TakeAnswerDTO dipakai saat student mengerjakan (tanpa kunci).
type TakeAnswerDTO struct {
	AnswerID uuid.UUID `json:"answer_id"`
	Text     string    `json:"text"`
}

type TakeQuestionDTO struct {
	QuestionID uuid.UUID       `json:"question_id"`
	Text       string          `json:"text"`
	Answers    []TakeAnswerDTO `json:"answers"`
}

type QuizTakeDTO struct {
	QuizID       uuid.UUID         `json:"quiz_id"`
	Title        string            `json:"title"`
	TimeLimitMin int               `json:"time_limit_min"`
	MaxScore     int               `json:"max_score"`
	Questions    []TakeQuestionDTO `json:"questions"`
}

// ResultDTO: hasil satu student pada satu kuis.
type ResultDTO struct {
	ResultID       uuid.UUID `json:"result_id"`
	QuizID         uuid.UUID `json:"quiz_id"`
	StudentID      uuid.UUID `json:"student_id"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"max_score"`
	Percent        float64   `json:"percent"`
	Level          string    `json:"level"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	Stale          bool      `json:"stale"`
	CreatedAt      time.Time `json:"created_at"`
}

// StudentQuizListItemDTO: kuis + hasil student (nil kalau belum dikerjakan).
type StudentQuizListItemDTO struct {
	QuizDTO
	Result *ResultDTO `json:"result"`
}

// QuizResultRowDTO: baris hasil untuk teacher/admin.
type QuizResultRowDTO struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	UserName    string    `json:"user_name"`
	Score       int       `json:"score"`
	Percent     float64   `json:"percent"`
	Level       string    `json:"level"`
	Stale       bool      `json:"stale"`
	CreatedAt   time.Time `json:"created_at"`
}

// =============================
// Input
// =============================

type AnswerInput struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionInput struct {
	Text    string        `json:"text" validate:"required"`
	Answers []AnswerInput `json:"answers" validate:"dive"`
}

type CreateQuizRequest struct {
	GroupID      uuid.UUID       `json:"group_id" validate:"required"`
	Title        string          `json:"title" validate:"required,max=200"`
	TimeLimitMin int             `json:"time_limit_min" validate:"omitempty,gte=1,lte=600"`
	MaxScore     int             `json:"max_score" validate:"omitempty,gte=1,lte=1000"`
	Questions    []QuestionInput `json:"questions" validate:"dive"`
}

type UpdateQuizRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	TimeLimitMin *int    `json:"time_limit_min" validate:"omitempty,gte=1,lte=600"`
	MaxScore     *int    `json:"max_score" validate:"omitempty,gte=1,lte=1000"`
}

type UpsertQuestionRequest struct {
	Text    string        `json:"text" validate:"required"`
	Answers []AnswerInput `json:"answers" validate:"required,min=2,dive"`
}

type SubmitAnswerInput struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	AnswerID   uuid.UUID `json:"answer_id" validate:"required"`
}

type SubmitQuizRequest struct {
	Answers []SubmitAnswerInput `json:"answers" validate:"dive"`
}
