package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homecontroller "kursusku_backend/internals/features/home/controller"
)

// Dipasang di bawah /api/t (teacher)
func HomeTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := homecontroller.NewTeacherHomeController(db)
	api.Get("/home", ctrl.Home)
	api.Get("/notifications", ctrl.Notifications)
}

// Dipasang di bawah /api/s (student)
func HomeStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := homecontroller.NewStudentHomeController(db)
	api.Get("/home", ctrl.Home)
	api.Get("/notifications", ctrl.Notifications)
}
