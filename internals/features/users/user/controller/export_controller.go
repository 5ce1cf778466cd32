package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	paymentservice "kursusku_backend/internals/features/finance/payments/service"
	"kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// =============================
// 🧾 Daftar user sebagai PDF (role student/teacher)
// =============================
func (ctrl *ExportController) ExportUsersPDF(c *fiber.Ctx) error {
	role := c.Query("role", constants.RoleStudent)
	if role != constants.RoleStudent && role != constants.RoleTeacher {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role harus student atau teacher")
	}

	var users []model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("role = ?", role).
		Order("first_name ASC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	cols := []paymentservice.TableColumn{
		{Header: "No", Width: 10, Align: "C"},
		{Header: "Nama", Width: 70},
		{Header: "Username", Width: 45},
		{Header: "Telepon", Width: 40, Align: "C"},
		{Header: "Bergabung", Width: 25, Align: "C"},
	}
	rows := make([][]string, 0, len(users))
	for i, u := range users {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			u.FullName(),
			u.UserName,
			u.PhoneNumber,
			u.JoinedAt.Format("02.01.2006"),
		})
	}

	title := "Daftar Student"
	if role == constants.RoleTeacher {
		title = "Daftar Teacher"
	}
	pdfBytes, err := paymentservice.BuildTablePDF(title, cols, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="daftar-%s.pdf"`, role))
	return c.Send(pdfBytes)
}
