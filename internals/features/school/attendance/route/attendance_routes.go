package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancecontroller "kursusku_backend/internals/features/school/attendance/controller"
)

// Dipasang di bawah /api/a (admin)
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendancecontroller.NewAdminAttendanceController(db)
	api.Get("/attendance/groups/:id", ctrl.GroupTable)
}

// Dipasang di bawah /api/t (teacher)
func AttendanceTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendancecontroller.NewTeacherAttendanceController(db)
	attendance := api.Group("/attendance")
	attendance.Get("/window", ctrl.Window)
	attendance.Post("/", ctrl.Submit)
	attendance.Get("/groups/:id", ctrl.GroupTable)
}

// Dipasang di bawah /api/s (student)
func AttendanceStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendancecontroller.NewStudentAttendanceController(db)
	api.Get("/attendance", ctrl.MyAttendance)
}
