package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedulecontroller "kursusku_backend/internals/features/school/schedules/controller"
)

// Dipasang di bawah /api/a (admin)
func ScheduleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schedulecontroller.NewAdminScheduleController(db)
	schedules := api.Group("/schedules")
	schedules.Get("/", ctrl.AllGroupSchedules)
	schedules.Put("/groups/:id", ctrl.ReplaceGroupSchedule)
	schedules.Delete("/slot", ctrl.DeleteSlot)
}

// Dipasang di bawah /api/t (teacher)
func ScheduleTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schedulecontroller.NewTeacherScheduleController(db)
	api.Get("/schedules", ctrl.MySchedule)
}

// Dipasang di bawah /api/s (student)
func ScheduleStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schedulecontroller.NewStudentScheduleController(db)
	api.Get("/schedules", ctrl.MySchedule)
}
