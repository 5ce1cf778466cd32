package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/attendance/service"
	helper "kursusku_backend/internals/helpers"
)

type AdminAttendanceController struct {
	DB *gorm.DB
}

func NewAdminAttendanceController(db *gorm.DB) *AdminAttendanceController {
	return &AdminAttendanceController{DB: db}
}

// Tabel kehadiran grup mana pun.
func (ctrl *AdminAttendanceController) GroupTable(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	table, err := service.BuildGroupTable(c.Context(), ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun tabel kehadiran")
	}
	return helper.JsonOK(c, "OK", table)
}
