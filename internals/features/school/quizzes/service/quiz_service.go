package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/quizzes/dto"
	"kursusku_backend/internals/features/school/quizzes/model"
)

// ValidQuestion: soal dipakai hanya kalau punya minimal 2 pilihan dan
// tepat satu jawaban benar. Soal lain dilewati, bukan ditolak.
func ValidQuestion(in dto.QuestionInput) bool {
	if strings.TrimSpace(in.Text) == "" || len(in.Answers) < 2 {
		return false
	}
	correct := 0
	for _, a := range in.Answers {
		if strings.TrimSpace(a.Text) == "" {
			return false
		}
		if a.IsCorrect {
			correct++
		}
	}
	return correct == 1
}

// InsertQuestions menyimpan soal-soal valid milik satu kuis.
// Mengembalikan jumlah yang dibuat dan yang dilewati.
func InsertQuestions(tx *gorm.DB, quizID uuid.UUID, questions []dto.QuestionInput) (created, skipped int, err error) {
	for _, in := range questions {
		if !ValidQuestion(in) {
			skipped++
			continue
		}
		q := model.QuizQuestionModel{
			QuestionQuizID: quizID,
			QuestionText:   strings.TrimSpace(in.Text),
		}
		if err = tx.Create(&q).Error; err != nil {
			return created, skipped, err
		}
		for _, a := range in.Answers {
			ans := model.QuizAnswerModel{
				AnswerQuestionID: q.QuestionID,
				AnswerText:       strings.TrimSpace(a.Text),
				AnswerIsCorrect:  a.IsCorrect,
			}
			if err = tx.Create(&ans).Error; err != nil {
				return created, skipped, err
			}
		}
		created++
	}
	return created, skipped, nil
}

// LoadQuestions memuat soal beserta pilihan (termasuk kunci) urut waktu dibuat.
func LoadQuestions(ctx context.Context, db *gorm.DB, quizID uuid.UUID) ([]dto.QuestionDTO, error) {
	var questions []model.QuizQuestionModel
	if err := db.WithContext(ctx).
		Where("question_quiz_id = ?", quizID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return []dto.QuestionDTO{}, nil
	}

	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.QuestionID)
	}
	var answers []model.QuizAnswerModel
	if err := db.WithContext(ctx).
		Where("answer_question_id IN ?", ids).
		Find(&answers).Error; err != nil {
		return nil, err
	}
	byQuestion := make(map[uuid.UUID][]dto.AnswerDTO)
	for _, a := range answers {
		byQuestion[a.AnswerQuestionID] = append(byQuestion[a.AnswerQuestionID], dto.AnswerDTO{
			AnswerID:  a.AnswerID,
			Text:      a.AnswerText,
			IsCorrect: a.AnswerIsCorrect,
		})
	}

	out := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		answers := byQuestion[q.QuestionID]
		if answers == nil {
			answers = []dto.AnswerDTO{}
		}
		out = append(out, dto.QuestionDTO{
			QuestionID: q.QuestionID,
			Text:       q.QuestionText,
			Answers:    answers,
		})
	}
	return out, nil
}

// QuestionCounts menghitung jumlah soal per kuis sekali jalan.
func QuestionCounts(ctx context.Context, db *gorm.DB, quizIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(quizIDs))
	if len(quizIDs) == 0 {
		return counts, nil
	}
	type row struct {
		QuizID uuid.UUID `gorm:"column:question_quiz_id"`
		Total  int       `gorm:"column:total"`
	}
	var rows []row
	if err := db.WithContext(ctx).Model(&model.QuizQuestionModel{}).
		Select("question_quiz_id, COUNT(*) AS total").
		Where("question_quiz_id IN ?", quizIDs).
		Group("question_quiz_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.QuizID] = r.Total
	}
	return counts, nil
}

// BumpQuizVersion menaikkan versi kuis (hasil lama jadi basi).
func BumpQuizVersion(tx *gorm.DB, quizID uuid.UUID) error {
	return tx.Model(&model.QuizModel{}).
		Where("quiz_id = ?", quizID).
		UpdateColumn("quiz_version", gorm.Expr("quiz_version + 1")).Error
}

// IsStale: hasil dibuat pada versi kuis yang lebih lama.
func IsStale(result model.StudentQuizResultModel, quiz model.QuizModel) bool {
	return result.ResultQuizVersion < quiz.QuizVersion
}

// DeleteResult menghapus satu hasil beserta jawaban-jawabannya.
func DeleteResult(tx *gorm.DB, resultID uuid.UUID) error {
	if err := tx.Where("student_answer_result_id = ?", resultID).
		Delete(&model.StudentQuizAnswerModel{}).Error; err != nil {
		return err
	}
	return tx.Where("result_id = ?", resultID).
		Delete(&model.StudentQuizResultModel{}).Error
}

// ToResultDTO merangkai hasil + kuis jadi DTO lengkap dengan level dan flag basi.
func ToResultDTO(r model.StudentQuizResultModel, quiz model.QuizModel) dto.ResultDTO {
	percent := Percent(r.ResultCorrectCount, r.ResultTotalQuestions)
	return dto.ResultDTO{
		ResultID:       r.ResultID,
		QuizID:         r.ResultQuizID,
		StudentID:      r.ResultStudentID,
		Score:          r.ResultScore,
		MaxScore:       quiz.QuizMaxScore,
		Percent:        percent,
		Level:          LevelFor(percent),
		CorrectCount:   r.ResultCorrectCount,
		TotalQuestions: r.ResultTotalQuestions,
		Stale:          IsStale(r, quiz),
		CreatedAt:      r.ResultCreatedAt,
	}
}
