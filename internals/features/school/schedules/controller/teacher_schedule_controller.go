package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupservice "kursusku_backend/internals/features/school/groups/service"
	"kursusku_backend/internals/features/school/schedules/service"
	helper "kursusku_backend/internals/helpers"
)

type TeacherScheduleController struct {
	DB *gorm.DB
}

func NewTeacherScheduleController(db *gorm.DB) *TeacherScheduleController {
	return &TeacherScheduleController{DB: db}
}

// Jadwal mingguan semua grup yang diajar teacher ini
func (ctrl *TeacherScheduleController) MySchedule(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	groupIDs, err := groupservice.TeacherGroupIDs(c.Context(), ctrl.DB, teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	tables, err := service.BuildWeekTables(c.Context(), ctrl.DB, groupIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun jadwal")
	}
	return helper.JsonOK(c, "OK", tables)
}
