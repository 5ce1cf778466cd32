package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/users/user/service"
	helper "kursusku_backend/internals/helpers"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

// =============================
// 📥 Import user dari CSV (student/teacher)
// form fields: role, csv_file
// =============================
func (ctrl *ImportController) ImportUsersCSV(c *fiber.Ctx) error {
	role := strings.TrimSpace(c.FormValue("role"))
	if role != constants.RoleStudent && role != constants.RoleTeacher {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role harus student atau teacher")
	}

	fileHeader, err := c.FormFile("csv_file")
	if err != nil || fileHeader == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Iltimos, CSV fayl tanlang")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Faqat .csv fayl yuklashingiz mumkin")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	rows, skippedRows, err := service.ParseUsersCSV(src)
	if err != nil {
		if errors.Is(err, service.ErrBadCSVHeader) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := service.ImportUsers(c.Context(), ctrl.DB, role, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal: "+err.Error())
	}
	result.Skipped += skippedRows

	return helper.JsonCreated(c, "Import selesai", result)
}
