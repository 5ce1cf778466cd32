package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/assignments/dto"
	"kursusku_backend/internals/features/school/assignments/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type StudentAssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentAssignmentController(db *gorm.DB) *StudentAssignmentController {
	return &StudentAssignmentController{DB: db, Validator: validator.New()}
}

func (ctrl *StudentAssignmentController) loadVisibleAssignment(c *fiber.Ctx, studentID uuid.UUID) (model.AssignmentModel, error) {
	var assignment model.AssignmentModel
	assignmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return assignment, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment, fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return assignment, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}
	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return assignment, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}
	fence, ok := groupservice.FenceFor(fences, assignment.AssignmentGroupID)
	if !ok || !fence.Visible(assignment.AssignmentCreatedAt) {
		return assignment, fiber.NewError(fiber.StatusNotFound, "Tugas tidak ditemukan")
	}
	return assignment, nil
}

// =============================
// 📄 Tugas yang terlihat + jawaban saya
// =============================
func (ctrl *StudentAssignmentController) MyAssignments(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	var assignments []model.AssignmentModel
	q := ctrl.DB.WithContext(c.Context()).Model(&model.AssignmentModel{})
	q = groupservice.ApplyFenceScope(q, fences, "assignment_group_id", "assignment_created_at")
	if err := q.Order("assignment_created_at DESC").Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	assignmentIDs := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		assignmentIDs = append(assignmentIDs, a.AssignmentID)
	}
	var submissions []model.AssignmentSubmissionModel
	if len(assignmentIDs) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Where("submission_student_id = ? AND submission_assignment_id IN ?", studentID, assignmentIDs).
			Find(&submissions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
		}
	}
	byAssignment := make(map[uuid.UUID]model.AssignmentSubmissionModel, len(submissions))
	for _, s := range submissions {
		byAssignment[s.SubmissionAssignmentID] = s
	}

	now := dbtime.NowLocal()
	out := make([]dto.StudentAssignmentItemDTO, 0, len(assignments))
	for _, a := range assignments {
		item := dto.StudentAssignmentItemDTO{AssignmentDTO: dto.ToAssignmentDTO(a, now)}
		if s, ok := byAssignment[a.AssignmentID]; ok {
			sd := dto.ToSubmissionDTO(s)
			item.Submission = &sd
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, "OK", out)
}

// =============================
// ✅ Kirim jawaban (kirim ulang mengganti yang lama)
// =============================
func (ctrl *StudentAssignmentController) SubmitAssignment(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignment, err := ctrl.loadVisibleAssignment(c, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := dbtime.NowLocal()
	if now.After(assignment.AssignmentDeadline) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tenggat tugas sudah lewat")
	}

	var body dto.SubmitAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	fileURL, fileType, err := uploadAssignmentFile(c, "file", "submissions")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fileURL == nil && body.Text == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban kosong, isi teks atau unggah file")
	}

	submission := model.AssignmentSubmissionModel{
		SubmissionAssignmentID: assignment.AssignmentID,
		SubmissionStudentID:    studentID,
		SubmissionText:         body.Text,
		SubmissionFileURL:      fileURL,
		SubmissionFileType:     fileType,
	}

	var oldFileURL *string
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var existing model.AssignmentSubmissionModel
		findErr := tx.First(&existing,
			"submission_assignment_id = ? AND submission_student_id = ?",
			assignment.AssignmentID, studentID).Error
		if findErr == nil {
			oldFileURL = existing.SubmissionFileURL
			if err := tx.Where("submission_id = ?", existing.SubmissionID).
				Delete(&model.AssignmentSubmissionModel{}).Error; err != nil {
				return err
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}
		return tx.Create(&submission).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Jawaban sedang diproses, coba lagi")
		}
		return helper.WritePGError(c, err)
	}
	deleteStoredFile(oldFileURL)

	return helper.JsonCreated(c, "Jawaban terkirim", dto.ToSubmissionDTO(submission))
}

// =============================
// 🔍 Jawaban saya pada satu tugas
// =============================
func (ctrl *StudentAssignmentController) MySubmission(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	assignment, err := ctrl.loadVisibleAssignment(c, studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var submission model.AssignmentSubmissionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&submission, "submission_assignment_id = ? AND submission_student_id = ?",
			assignment.AssignmentID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada jawaban")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	return helper.JsonOK(c, "OK", dto.ToSubmissionDTO(submission))
}
