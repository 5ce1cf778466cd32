package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizQuestionModel struct {
	QuestionID        uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionQuizID    uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`
	QuestionText      string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

type QuizAnswerModel struct {
	AnswerID         uuid.UUID `gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"answer_id"`
	AnswerQuestionID uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null;index" json:"answer_question_id"`
	AnswerText       string    `gorm:"column:answer_text;type:text;not null" json:"answer_text"`
	AnswerIsCorrect  bool      `gorm:"column:answer_is_correct;not null;default:false" json:"answer_is_correct"`
}

func (QuizAnswerModel) TableName() string {
	return "quiz_answers"
}
