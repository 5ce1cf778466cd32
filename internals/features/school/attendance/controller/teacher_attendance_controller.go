package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/attendance/dto"
	"kursusku_backend/internals/features/school/attendance/model"
	"kursusku_backend/internals/features/school/attendance/service"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type TeacherAttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherAttendanceController(db *gorm.DB) *TeacherAttendanceController {
	return &TeacherAttendanceController{DB: db, Validator: validator.New()}
}

func (ctrl *TeacherAttendanceController) requireOwnGroup(c *fiber.Ctx, groupID uuid.UUID) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	ok, err := groupservice.IsTeacherOfGroup(c.Context(), ctrl.DB, teacherID, groupID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa grup")
	}
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "Anda bukan pengajar grup ini")
	}
	return nil
}

// =============================
// 🔍 Status jendela absensi hari ini
// =============================
func (ctrl *TeacherAttendanceController) Window(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Query("group_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
	}
	if err := ctrl.requireOwnGroup(c, groupID); err != nil {
		return helper.FromFiberError(c, err)
	}

	state, err := service.CheckWindow(c.Context(), ctrl.DB, groupID, dbtime.NowLocal())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa jendela absensi")
	}
	return helper.JsonOK(c, "OK", dto.AttendanceWindowDTO{
		GroupID:       groupID,
		Open:          state.Open,
		Reason:        state.Reason,
		Day:           state.Day,
		AlreadyMarked: state.AlreadyMarked,
	})
}

// =============================
// ✅ Isi absensi satu grup (sekali per hari, saat jam pelajaran)
// =============================
func (ctrl *TeacherAttendanceController) Submit(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SubmitAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctrl.requireOwnGroup(c, body.GroupID); err != nil {
		return helper.FromFiberError(c, err)
	}

	now := dbtime.NowLocal()
	state, err := service.CheckWindow(c.Context(), ctrl.DB, body.GroupID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa jendela absensi")
	}
	if !state.Open {
		return helper.JsonError(c, fiber.StatusForbidden, state.Reason)
	}

	// semua student di request harus anggota grup
	var memberIDs []uuid.UUID
	if err := ctrl.DB.WithContext(c.Context()).Model(&groupmodel.GroupStudentMembershipModel{}).
		Where("membership_group_id = ?", body.GroupID).
		Pluck("membership_student_id", &memberIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota grup")
	}
	members := make(map[uuid.UUID]bool, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = true
	}
	for _, rec := range body.Records {
		if !members[rec.StudentID] {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Ada student yang bukan anggota grup")
		}
	}

	date := datatypes.Date(now)
	rows := make([]model.AttendanceModel, 0, len(body.Records))
	for _, rec := range body.Records {
		rows = append(rows, model.AttendanceModel{
			AttendanceGroupID:   body.GroupID,
			AttendanceStudentID: rec.StudentID,
			AttendanceDate:      date,
			AttendancePresent:   rec.Present,
			AttendanceMarkedBy:  teacherID,
		})
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Absensi hari ini sudah diisi")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Absensi tersimpan", fiber.Map{
		"group_id": body.GroupID,
		"date":     now.Format("2006-01-02"),
		"count":    len(rows),
	})
}

// =============================
// 📄 Tabel kehadiran grup
// =============================
func (ctrl *TeacherAttendanceController) GroupTable(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctrl.requireOwnGroup(c, groupID); err != nil {
		return helper.FromFiberError(c, err)
	}

	table, err := service.BuildGroupTable(c.Context(), ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun tabel kehadiran")
	}
	return helper.JsonOK(c, "OK", table)
}
