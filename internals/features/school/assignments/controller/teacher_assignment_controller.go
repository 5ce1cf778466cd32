package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/assignments/dto"
	"kursusku_backend/internals/features/school/assignments/model"
	"kursusku_backend/internals/features/school/assignments/service"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type TeacherAssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherAssignmentController(db *gorm.DB) *TeacherAssignmentController {
	return &TeacherAssignmentController{DB: db, Validator: validator.New()}
}

func (ctrl *TeacherAssignmentController) loadOwnedAssignment(c *fiber.Ctx) (model.AssignmentModel, error) {
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
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return assignment, err
	}
	ok, err := groupservice.IsTeacherOfGroup(c.Context(), ctrl.DB, teacherID, assignment.AssignmentGroupID)
	if err != nil {
		return assignment, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa grup")
	}
	if !ok {
		return assignment, fiber.NewError(fiber.StatusForbidden, "Anda bukan pengajar grup tugas ini")
	}
	return assignment, nil
}

// =============================
// ➕ Buat tugas (multipart, file opsional)
// =============================
func (ctrl *TeacherAssignmentController) CreateAssignment(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateAssignmentRequest
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

	deadline, err := service.ParseDeadline(body.Deadline)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := service.ValidateTeacherDeadline(deadline, dbtime.NowLocal()); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	fileURL, fileType, err := uploadAssignmentFile(c, "file", "assignments")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	maxScore := body.MaxScore
	if maxScore == 0 {
		maxScore = 100
	}
	assignment := model.AssignmentModel{
		AssignmentGroupID:     body.GroupID,
		AssignmentCreatedBy:   teacherID,
		AssignmentTitle:       body.Title,
		AssignmentDescription: body.Description,
		AssignmentFileURL:     fileURL,
		AssignmentFileType:    fileType,
		AssignmentMaxScore:    maxScore,
		AssignmentDeadline:    deadline,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&assignment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Tugas berhasil dibuat", dto.ToAssignmentDTO(assignment, dbtime.NowLocal()))
}

// =============================
// 📄 Tugas milik grup-grup teacher
// =============================
func (ctrl *TeacherAssignmentController) MyAssignments(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupIDs, err := groupservice.TeacherGroupIDs(c.Context(), ctrl.DB, teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "OK", []dto.AssignmentDTO{})
	}

	var assignments []model.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("assignment_group_id IN ?", groupIDs).
		Order("assignment_created_at DESC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	now := dbtime.NowLocal()
	out := make([]dto.AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, dto.ToAssignmentDTO(a, now))
	}
	return helper.JsonOK(c, "OK", out)
}

// =============================
// ✏️ Update tugas
// =============================
func (ctrl *TeacherAssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	assignment, err := ctrl.loadOwnedAssignment(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.Title != nil {
		assignment.AssignmentTitle = *body.Title
	}
	if body.Description != nil {
		assignment.AssignmentDescription = *body.Description
	}
	if body.MaxScore != nil {
		assignment.AssignmentMaxScore = *body.MaxScore
	}
	if body.Deadline != nil {
		deadline, err := service.ParseDeadline(*body.Deadline)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		if err := service.ValidateTeacherDeadline(deadline, dbtime.NowLocal()); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		assignment.AssignmentDeadline = deadline
	}

	// lampiran baru menggantikan yang lama
	fileURL, fileType, err := uploadAssignmentFile(c, "file", "assignments")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fileURL != nil {
		deleteStoredFile(assignment.AssignmentFileURL)
		assignment.AssignmentFileURL = fileURL
		assignment.AssignmentFileType = fileType
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&assignment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Tugas berhasil diperbarui", dto.ToAssignmentDTO(assignment, dbtime.NowLocal()))
}

// =============================
// ❌ Hapus tugas
// =============================
func (ctrl *TeacherAssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	assignment, err := ctrl.loadOwnedAssignment(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := deleteAssignmentCascade(ctrl.DB.WithContext(c.Context()), assignment.AssignmentID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tugas")
	}
	deleteStoredFile(assignment.AssignmentFileURL)
	return helper.JsonDeleted(c, "Tugas berhasil dihapus", fiber.Map{"assignment_id": assignment.AssignmentID})
}

// =============================
// 📄 Jawaban-jawaban satu tugas
// =============================
func (ctrl *TeacherAssignmentController) Submissions(c *fiber.Ctx) error {
	assignment, err := ctrl.loadOwnedAssignment(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := loadSubmissionRows(c, ctrl.DB, assignment)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"assignment":  dto.ToAssignmentDTO(assignment, dbtime.NowLocal()),
		"submissions": rows,
	})
}

// =============================
// ✅ Nilai jawaban
// =============================
func (ctrl *TeacherAssignmentController) GradeSubmission(c *fiber.Ctx) error {
	assignment, err := ctrl.loadOwnedAssignment(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	submissionID, err := helper.ParseUUIDParam(c, "submission_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jawaban tidak valid")
	}

	var body dto.GradeSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	return gradeSubmission(c, ctrl.DB, assignment, submissionID, body.Grade)
}
