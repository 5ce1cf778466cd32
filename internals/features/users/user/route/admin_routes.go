package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "kursusku_backend/internals/features/users/user/controller"
)

// Dipasang di bawah group /api/a (sudah lewat Auth + OnlyRoles admin)
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := usercontroller.NewAdminUserController(db)
	users := api.Group("/users")
	users.Get("/", userCtrl.ListUsers)
	users.Post("/", userCtrl.CreateUser)
	users.Post("/bulk-delete", userCtrl.BulkDeleteUsers)

	exportCtrl := usercontroller.NewExportController(db)
	users.Get("/export.pdf", exportCtrl.ExportUsersPDF)

	users.Get("/:id", userCtrl.GetUserByID)
	users.Put("/:id", userCtrl.UpdateUser)
	users.Post("/:id/reset-password", userCtrl.ResetPassword)
	users.Delete("/:id", userCtrl.DeleteUser)

	importCtrl := usercontroller.NewImportController(db)
	api.Post("/users/import-csv", importCtrl.ImportUsersCSV)
}
