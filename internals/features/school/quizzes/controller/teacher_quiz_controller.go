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

type TeacherQuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherQuizController(db *gorm.DB) *TeacherQuizController {
	return &TeacherQuizController{DB: db, Validator: validator.New()}
}

// loadOwnedQuiz memuat kuis dan memastikan teacher mengajar grupnya.
func (ctrl *TeacherQuizController) loadOwnedQuiz(c *fiber.Ctx, quizID uuid.UUID) (model.QuizModel, error) {
	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quiz, fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		return quiz, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return quiz, err
	}
	ok, err := groupservice.IsTeacherOfGroup(c.Context(), ctrl.DB, teacherID, quiz.QuizGroupID)
	if err != nil {
		return quiz, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa grup")
	}
	if !ok {
		return quiz, fiber.NewError(fiber.StatusForbidden, "Anda bukan pengajar grup kuis ini")
	}
	return quiz, nil
}

// =============================
// ➕ Buat kuis + soal sekaligus
// =============================
func (ctrl *TeacherQuizController) CreateQuiz(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := groupservice.IsTeacherOfGroup(c.Context(), ctrl.DB, teacherID, body.GroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa grup")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan pengajar grup ini")
	}

	maxScore := body.MaxScore
	if maxScore == 0 {
		maxScore = 100
	}
	timeLimit := body.TimeLimitMin
	if timeLimit == 0 {
		timeLimit = 30
	}
	quiz := model.QuizModel{
		QuizGroupID:   body.GroupID,
		QuizCreatedBy: teacherID,
		QuizTitle:     body.Title,
		QuizTimeLimit: timeLimit,
		QuizMaxScore:  maxScore,
		QuizVersion:   1,
	}

	var created, skipped int
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		created, skipped, err = service.InsertQuestions(tx, quiz.QuizID, body.Questions)
		return err
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Kuis berhasil dibuat", fiber.Map{
		"quiz":              dto.ToQuizDTO(quiz, created),
		"questions_created": created,
		"questions_skipped": skipped,
	})
}

// =============================
// 📄 Kuis milik grup-grup teacher
// =============================
func (ctrl *TeacherQuizController) MyQuizzes(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupIDs, err := groupservice.TeacherGroupIDs(c.Context(), ctrl.DB, teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "OK", []dto.QuizDTO{})
	}

	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("quiz_group_id IN ?", groupIDs).
		Order("quiz_created_at DESC").
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	quizIDs := make([]uuid.UUID, 0, len(quizzes))
	for _, q := range quizzes {
		quizIDs = append(quizIDs, q.QuizID)
	}
	counts, err := service.QuestionCounts(c.Context(), ctrl.DB, quizIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung soal")
	}

	out := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, dto.ToQuizDTO(q, counts[q.QuizID]))
	}
	return helper.JsonOK(c, "OK", out)
}

// =============================
// 🔍 Detail kuis (dengan kunci jawaban)
// =============================
func (ctrl *TeacherQuizController) GetQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questions, err := service.LoadQuestions(c.Context(), ctrl.DB, quiz.QuizID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"quiz":      dto.ToQuizDTO(quiz, len(questions)),
		"questions": questions,
	})
}

// =============================
// ✏️ Update kuis (judul / nilai maksimum)
// =============================
func (ctrl *TeacherQuizController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Title != nil {
		quiz.QuizTitle = *body.Title
	}
	if body.TimeLimitMin != nil {
		quiz.QuizTimeLimit = *body.TimeLimitMin
	}
	if body.MaxScore != nil {
		quiz.QuizMaxScore = *body.MaxScore
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}
		return service.BumpQuizVersion(tx, quiz.QuizID)
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Kuis berhasil diperbarui", dto.ToQuizDTO(quiz, 0))
}

// =============================
// ❌ Hapus kuis
// =============================
func (ctrl *TeacherQuizController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := deleteQuizCascade(ctrl.DB.WithContext(c.Context()), quiz.QuizID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kuis")
	}
	return helper.JsonDeleted(c, "Kuis berhasil dihapus", fiber.Map{"quiz_id": quiz.QuizID})
}

// =============================
// ➕ Tambah soal
// =============================
func (ctrl *TeacherQuizController) AddQuestion(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return upsertQuestion(c, ctrl.DB, ctrl.Validator, quiz, uuid.Nil)
}

// =============================
// ✏️ Update soal (ganti semua pilihan)
// =============================
func (ctrl *TeacherQuizController) UpdateQuestion(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	questionID, err := helper.ParseUUIDParam(c, "question_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return upsertQuestion(c, ctrl.DB, ctrl.Validator, quiz, questionID)
}

// =============================
// ❌ Hapus soal
// =============================
func (ctrl *TeacherQuizController) DeleteQuestion(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	questionID, err := helper.ParseUUIDParam(c, "question_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return deleteQuestion(c, ctrl.DB, quiz, questionID)
}

// =============================
// 📊 Hasil kuis per student
// =============================
func (ctrl *TeacherQuizController) QuizResults(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	quiz, err := ctrl.loadOwnedQuiz(c, quizID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := loadQuizResultRows(c, ctrl.DB, quiz)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil kuis")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"quiz":    dto.ToQuizDTO(quiz, 0),
		"results": rows,
	})
}
