package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/assignments/dto"
	"kursusku_backend/internals/features/school/assignments/model"
	"kursusku_backend/internals/features/school/assignments/service"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type AdminAssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminAssignmentController(db *gorm.DB) *AdminAssignmentController {
	return &AdminAssignmentController{DB: db, Validator: validator.New()}
}

func (ctrl *AdminAssignmentController) loadAssignment(c *fiber.Ctx) (model.AssignmentModel, error) {
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
	return assignment, nil
}

// =============================
// 📄 Semua tugas (filter group_id opsional)
// =============================
func (ctrl *AdminAssignmentController) ListAssignments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.AssignmentModel{})
	if raw := c.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		q = q.Where("assignment_group_id = ?", groupID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tugas")
	}

	var assignments []model.AssignmentModel
	if err := q.Order("assignment_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	now := dbtime.NowLocal()
	out := make([]dto.AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, dto.ToAssignmentDTO(a, now))
	}
	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ➕ Buat tugas (tanpa batas minimal tenggat)
// =============================
func (ctrl *AdminAssignmentController) CreateAssignment(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
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

	var group groupmodel.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "group_id = ?", body.GroupID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
	}

	deadline, err := service.ParseDeadline(body.Deadline)
	if err != nil {
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
		AssignmentCreatedBy:   adminID,
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
// ✏️ Update tugas
// =============================
func (ctrl *AdminAssignmentController) UpdateAssignment(c *fiber.Ctx) error {
	assignment, err := ctrl.loadAssignment(c)
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
		assignment.AssignmentDeadline = deadline
	}

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
func (ctrl *AdminAssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	assignment, err := ctrl.loadAssignment(c)
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
// 📄 Jawaban + nilai
// =============================
func (ctrl *AdminAssignmentController) Submissions(c *fiber.Ctx) error {
	assignment, err := ctrl.loadAssignment(c)
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

func (ctrl *AdminAssignmentController) GradeSubmission(c *fiber.Ctx) error {
	assignment, err := ctrl.loadAssignment(c)
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
