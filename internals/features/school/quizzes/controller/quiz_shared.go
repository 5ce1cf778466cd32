package controller

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/quizzes/dto"
	"kursusku_backend/internals/features/school/quizzes/model"
	"kursusku_backend/internals/features/school/quizzes/service"
	helper "kursusku_backend/internals/helpers"
)

// deleteQuizCascade menghapus kuis beserta soal, pilihan, dan hasil student.
func deleteQuizCascade(db *gorm.DB, quizID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uuid.UUID
		if err := tx.Model(&model.QuizQuestionModel{}).
			Where("question_quiz_id = ?", quizID).
			Pluck("question_id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("answer_question_id IN ?", questionIDs).
				Delete(&model.QuizAnswerModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("question_quiz_id = ?", quizID).
			Delete(&model.QuizQuestionModel{}).Error; err != nil {
			return err
		}

		var resultIDs []uuid.UUID
		if err := tx.Model(&model.StudentQuizResultModel{}).
			Where("result_quiz_id = ?", quizID).
			Pluck("result_id", &resultIDs).Error; err != nil {
			return err
		}
		if len(resultIDs) > 0 {
			if err := tx.Where("student_answer_result_id IN ?", resultIDs).
				Delete(&model.StudentQuizAnswerModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("result_id IN ?", resultIDs).
				Delete(&model.StudentQuizResultModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("quiz_id = ?", quizID).Delete(&model.QuizModel{}).Error
	})
}

// upsertQuestion: questionID == uuid.Nil berarti tambah soal baru, selain itu
// ganti teks + seluruh pilihan soal yang ada. Versi kuis naik di kedua kasus.
func upsertQuestion(c *fiber.Ctx, db *gorm.DB, v *validator.Validate, quiz model.QuizModel, questionID uuid.UUID) error {
	var body dto.UpsertQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !service.ValidQuestion(dto.QuestionInput{Text: body.Text, Answers: body.Answers}) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Soal harus punya minimal 2 pilihan dan tepat satu jawaban benar")
	}

	var question model.QuizQuestionModel
	err := db.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if questionID == uuid.Nil {
			question = model.QuizQuestionModel{
				QuestionQuizID: quiz.QuizID,
				QuestionText:   strings.TrimSpace(body.Text),
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		} else {
			if err := tx.First(&question, "question_id = ? AND question_quiz_id = ?", questionID, quiz.QuizID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Soal tidak ditemukan")
			}
			question.QuestionText = strings.TrimSpace(body.Text)
			if err := tx.Save(&question).Error; err != nil {
				return err
			}
			if err := tx.Where("answer_question_id = ?", question.QuestionID).
				Delete(&model.QuizAnswerModel{}).Error; err != nil {
				return err
			}
		}
		for _, a := range body.Answers {
			ans := model.QuizAnswerModel{
				AnswerQuestionID: question.QuestionID,
				AnswerText:       strings.TrimSpace(a.Text),
				AnswerIsCorrect:  a.IsCorrect,
			}
			if err := tx.Create(&ans).Error; err != nil {
				return err
			}
		}
		return service.BumpQuizVersion(tx, quiz.QuizID)
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	if questionID == uuid.Nil {
		return helper.JsonCreated(c, "Soal berhasil ditambahkan", fiber.Map{"question_id": question.QuestionID})
	}
	return helper.JsonUpdated(c, "Soal berhasil diperbarui", fiber.Map{"question_id": question.QuestionID})
}

// deleteQuestion menghapus satu soal beserta pilihannya, lalu naikkan versi kuis.
func deleteQuestion(c *fiber.Ctx, db *gorm.DB, quiz model.QuizModel, questionID uuid.UUID) error {
	err := db.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("question_id = ? AND question_quiz_id = ?", questionID, quiz.QuizID).
			Delete(&model.QuizQuestionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		if err := tx.Where("answer_question_id = ?", questionID).
			Delete(&model.QuizAnswerModel{}).Error; err != nil {
			return err
		}
		return service.BumpQuizVersion(tx, quiz.QuizID)
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{"question_id": questionID})
}

// loadQuizResultRows mengambil hasil satu kuis lengkap dengan nama student,
// diurutkan skor tertinggi dulu.
func loadQuizResultRows(c *fiber.Ctx, db *gorm.DB, quiz model.QuizModel) ([]dto.QuizResultRowDTO, error) {
	type row struct {
		model.StudentQuizResultModel
		FirstName string `gorm:"column:first_name"`
		LastName  string `gorm:"column:last_name"`
		UserName  string `gorm:"column:user_name"`
	}
	var rows []row
	if err := db.WithContext(c.Context()).
		Table("student_quiz_results").
		Select("student_quiz_results.*, users.first_name, users.last_name, users.user_name").
		Joins("JOIN users ON users.id = student_quiz_results.result_student_id").
		Where("result_quiz_id = ?", quiz.QuizID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.QuizResultRowDTO, 0, len(rows))
	for _, r := range rows {
		percent := service.Percent(r.ResultCorrectCount, r.ResultTotalQuestions)
		out = append(out, dto.QuizResultRowDTO{
			StudentID:   r.ResultStudentID,
			StudentName: strings.TrimSpace(r.FirstName + " " + r.LastName),
			UserName:    r.UserName,
			Score:       r.ResultScore,
			Percent:     percent,
			Level:       service.LevelFor(percent),
			Stale:       service.IsStale(r.StudentQuizResultModel, quiz),
			CreatedAt:   r.ResultCreatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}
