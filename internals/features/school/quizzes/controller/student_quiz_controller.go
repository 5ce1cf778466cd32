package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupservice "kursusku_backend/internals/features/school/groups/service"
	"kursusku_backend/internals/features/school/quizzes/dto"
	"kursusku_backend/internals/features/school/quizzes/model"
	"kursusku_backend/internals/features/school/quizzes/service"
	helper "kursusku_backend/internals/helpers"
)

type StudentQuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentQuizController(db *gorm.DB) *StudentQuizController {
	return &StudentQuizController{DB: db, Validator: validator.New()}
}

// loadVisibleQuiz memuat kuis dan memastikan student boleh melihatnya:
// anggota grup kuis, dan kuis dibuat setelah student bergabung.
func (ctrl *StudentQuizController) loadVisibleQuiz(c *fiber.Ctx, quizID, studentID uuid.UUID) (model.QuizModel, error) {
	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quiz, fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		return quiz, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}
	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return quiz, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}
	fence, ok := groupservice.FenceFor(fences, quiz.QuizGroupID)
	if !ok || !fence.Visible(quiz.QuizCreatedAt) {
		return quiz, fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan")
	}
	return quiz, nil
}

// =============================
// 📄 Kuis yang terlihat + hasil saya
// =============================
func (ctrl *StudentQuizController) MyQuizzes(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	var quizzes []model.QuizModel
	q := ctrl.DB.WithContext(c.Context()).Model(&model.QuizModel{})
	q = groupservice.ApplyFenceScope(q, fences, "quiz_group_id", "quiz_created_at")
	if err := q.Order("quiz_created_at DESC").Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	quizIDs := make([]uuid.UUID, 0, len(quizzes))
	for _, quiz := range quizzes {
		quizIDs = append(quizIDs, quiz.QuizID)
	}
	counts, err := service.QuestionCounts(c.Context(), ctrl.DB, quizIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung soal")
	}

	var results []model.StudentQuizResultModel
	if len(quizIDs) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Where("result_student_id = ? AND result_quiz_id IN ?", studentID, quizIDs).
			Find(&results).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil")
		}
	}
	byQuiz := make(map[uuid.UUID]model.StudentQuizResultModel, len(results))
	for _, r := range results {
		byQuiz[r.ResultQuizID] = r
	}

	out := make([]dto.StudentQuizListItemDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		item := dto.StudentQuizListItemDTO{QuizDTO: dto.ToQuizDTO(quiz, counts[quiz.QuizID])}
		if r, ok := byQuiz[quiz.QuizID]; ok {
			rd := service.ToResultDTO(r, quiz)
			item.Result = &rd
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, "OK", out)
}

// =============================
// ▶️ Mulai kuis
// Hasil segar sudah ada → kembalikan hasilnya.
// Hasil basi (kuis berubah) → hapus dulu, lalu kirim soal.
// =============================
func (ctrl *StudentQuizController) StartQuiz(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadVisibleQuiz(c, quizID, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var existing model.StudentQuizResultModel
	findErr := ctrl.DB.WithContext(c.Context()).
		First(&existing, "result_quiz_id = ? AND result_student_id = ?", quiz.QuizID, studentID).Error
	if findErr == nil {
		if !service.IsStale(existing, quiz) {
			return helper.JsonError(c, fiber.StatusConflict, "Kuis sudah dikerjakan")
		}
		// kuis berubah sejak dikerjakan, hasil lama dibuang
		if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
			return service.DeleteResult(tx, existing.ResultID)
		}); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hasil lama")
		}
	} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa hasil")
	}

	questions, err := service.LoadQuestions(c.Context(), ctrl.DB, quiz.QuizID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	take := dto.QuizTakeDTO{
		QuizID:       quiz.QuizID,
		Title:        quiz.QuizTitle,
		TimeLimitMin: quiz.QuizTimeLimit,
		MaxScore:     quiz.QuizMaxScore,
		Questions:    make([]dto.TakeQuestionDTO, 0, len(questions)),
	}
	for _, q := range questions {
		tq := dto.TakeQuestionDTO{
			QuestionID: q.QuestionID,
			Text:       q.Text,
			Answers:    make([]dto.TakeAnswerDTO, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			tq.Answers = append(tq.Answers, dto.TakeAnswerDTO{AnswerID: a.AnswerID, Text: a.Text})
		}
		take.Questions = append(take.Questions, tq)
	}
	return helper.JsonOK(c, "OK", take)
}

// =============================
// ✅ Submit jawaban
// =============================
func (ctrl *StudentQuizController) SubmitQuiz(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadVisibleQuiz(c, quizID, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SubmitQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	questions, err := service.LoadQuestions(c.Context(), ctrl.DB, quiz.QuizID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	// kunci jawaban per soal
	correctByQuestion := make(map[uuid.UUID]uuid.UUID, len(questions))
	validAnswers := make(map[uuid.UUID]map[uuid.UUID]bool, len(questions))
	for _, q := range questions {
		validAnswers[q.QuestionID] = make(map[uuid.UUID]bool, len(q.Answers))
		for _, a := range q.Answers {
			validAnswers[q.QuestionID][a.AnswerID] = true
			if a.IsCorrect {
				correctByQuestion[q.QuestionID] = a.AnswerID
			}
		}
	}

	chosen := make(map[uuid.UUID]uuid.UUID, len(body.Answers))
	for _, in := range body.Answers {
		if valid, ok := validAnswers[in.QuestionID]; !ok || !valid[in.AnswerID] {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban tidak cocok dengan soal kuis")
		}
		chosen[in.QuestionID] = in.AnswerID
	}

	correct := 0
	studentAnswers := make([]model.StudentQuizAnswerModel, 0, len(chosen))
	for questionID, answerID := range chosen {
		isCorrect := correctByQuestion[questionID] == answerID
		if isCorrect {
			correct++
		}
		studentAnswers = append(studentAnswers, model.StudentQuizAnswerModel{
			StudentAnswerQuestionID: questionID,
			StudentAnswerAnswerID:   answerID,
			StudentAnswerIsCorrect:  isCorrect,
		})
	}

	total := len(questions)
	result := model.StudentQuizResultModel{
		ResultQuizID:         quiz.QuizID,
		ResultStudentID:      studentID,
		ResultScore:          service.ComputeScore(correct, total, quiz.QuizMaxScore),
		ResultCorrectCount:   correct,
		ResultTotalQuestions: total,
		ResultQuizVersion:    quiz.QuizVersion,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var existing model.StudentQuizResultModel
		findErr := tx.First(&existing, "result_quiz_id = ? AND result_student_id = ?", quiz.QuizID, studentID).Error
		if findErr == nil {
			if !service.IsStale(existing, quiz) {
				return fiber.NewError(fiber.StatusConflict, "Kuis sudah dikerjakan")
			}
			if err := service.DeleteResult(tx, existing.ResultID); err != nil {
				return err
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		for i := range studentAnswers {
			studentAnswers[i].StudentAnswerResultID = result.ResultID
			if err := tx.Create(&studentAnswers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			// dua submit bersamaan, yang kalah dapat 409
			return helper.JsonError(c, fiber.StatusConflict, "Kuis sudah dikerjakan")
		}
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return helper.FromFiberError(c, err)
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Jawaban tersimpan", service.ToResultDTO(result, quiz))
}

// =============================
// 🔍 Hasil saya pada satu kuis
// =============================
func (ctrl *StudentQuizController) MyResult(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadVisibleQuiz(c, quizID, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var result model.StudentQuizResultModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&result, "result_quiz_id = ? AND result_student_id = ?", quiz.QuizID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kuis belum dikerjakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil")
	}
	return helper.JsonOK(c, "OK", service.ToResultDTO(result, quiz))
}
