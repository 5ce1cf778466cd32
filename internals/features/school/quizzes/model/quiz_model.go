package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizModel: kuis milik satu grup. quiz_version naik setiap kali soal
// atau kuis diubah; hasil student yang menyimpan versi lama dianggap basi.
type QuizModel struct {
	QuizID        uuid.UUID `gorm:"column:quiz_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_id"`
	QuizGroupID   uuid.UUID `gorm:"column:quiz_group_id;type:uuid;not null;index" json:"quiz_group_id"`
	QuizCreatedBy uuid.UUID `gorm:"column:quiz_created_by;type:uuid;not null" json:"quiz_created_by"`
	QuizTitle     string    `gorm:"column:quiz_title;type:varchar(200);not null" json:"quiz_title"`
	QuizTimeLimit int       `gorm:"column:quiz_time_limit_min;not null;default:30" json:"quiz_time_limit_min"`
	QuizMaxScore  int       `gorm:"column:quiz_max_score;not null;default:100" json:"quiz_max_score"`
	QuizVersion   int       `gorm:"column:quiz_version;not null;default:1" json:"quiz_version"`
	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
