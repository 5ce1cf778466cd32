package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupmodel "kursusku_backend/internals/features/school/groups/model"
	"kursusku_backend/internals/features/school/quizzes/dto"
	"kursusku_backend/internals/features/school/quizzes/model"
	"kursusku_backend/internals/features/school/quizzes/service"
	helper "kursusku_backend/internals/helpers"
)

type AdminQuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminQuizController(db *gorm.DB) *AdminQuizController {
	return &AdminQuizController{DB: db, Validator: validator.New()}
}

func (ctrl *AdminQuizController) loadQuiz(c *fiber.Ctx) (model.QuizModel, error) {
	var quiz model.QuizModel
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return quiz, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quiz, fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		return quiz, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}
	return quiz, nil
}

// =============================
// 📄 Semua kuis (filter group_id opsional)
// =============================
func (ctrl *AdminQuizController) ListQuizzes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.QuizModel{})
	if raw := c.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		q = q.Where("quiz_group_id = ?", groupID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kuis")
	}

	var quizzes []model.QuizModel
	if err := q.Order("quiz_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&quizzes).Error; err != nil {
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

	out := make([]dto.QuizDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		out = append(out, dto.ToQuizDTO(quiz, counts[quiz.QuizID]))
	}
	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ➕ Buat kuis (grup bebas)
// =============================
func (ctrl *AdminQuizController) CreateQuiz(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
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

	var group groupmodel.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "group_id = ?", body.GroupID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
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
		QuizCreatedBy: adminID,
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
// 🔍 Detail kuis + soal
// =============================
func (ctrl *AdminQuizController) GetQuiz(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
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
// ✏️ Update kuis
// =============================
func (ctrl *AdminQuizController) UpdateQuiz(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
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
func (ctrl *AdminQuizController) DeleteQuiz(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := deleteQuizCascade(ctrl.DB.WithContext(c.Context()), quiz.QuizID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kuis")
	}
	return helper.JsonDeleted(c, "Kuis berhasil dihapus", fiber.Map{"quiz_id": quiz.QuizID})
}

// =============================
// Soal: tambah / ubah / hapus
// =============================
func (ctrl *AdminQuizController) AddQuestion(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return upsertQuestion(c, ctrl.DB, ctrl.Validator, quiz, uuid.Nil)
}

func (ctrl *AdminQuizController) UpdateQuestion(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, err := helper.ParseUUIDParam(c, "question_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	return upsertQuestion(c, ctrl.DB, ctrl.Validator, quiz, questionID)
}

func (ctrl *AdminQuizController) DeleteQuestion(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, err := helper.ParseUUIDParam(c, "question_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}
	return deleteQuestion(c, ctrl.DB, quiz, questionID)
}

// =============================
// 📊 Hasil kuis
// =============================
func (ctrl *AdminQuizController) QuizResults(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
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
