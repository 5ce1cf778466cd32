package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupservice "kursusku_backend/internals/features/school/groups/service"
	"kursusku_backend/internals/features/school/schedules/service"
	helper "kursusku_backend/internals/helpers"
)

type StudentScheduleController struct {
	DB *gorm.DB
}

func NewStudentScheduleController(db *gorm.DB) *StudentScheduleController {
	return &StudentScheduleController{DB: db}
}

// Jadwal mingguan semua grup yang diikuti student ini
func (ctrl *StudentScheduleController) MySchedule(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	tables, err := service.BuildWeekTables(c.Context(), ctrl.DB, groupservice.GroupIDs(fences))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun jadwal")
	}
	return helper.JsonOK(c, "OK", tables)
}
