package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentcontroller "kursusku_backend/internals/features/school/assignments/controller"
)

// Dipasang di bawah /api/a (admin)
func AssignmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assignmentcontroller.NewAdminAssignmentController(db)
	assignments := api.Group("/assignments")
	assignments.Get("/", ctrl.ListAssignments)
	assignments.Post("/", ctrl.CreateAssignment)
	assignments.Put("/:id", ctrl.UpdateAssignment)
	assignments.Delete("/:id", ctrl.DeleteAssignment)
	assignments.Get("/:id/submissions", ctrl.Submissions)
	assignments.Put("/:id/submissions/:submission_id/grade", ctrl.GradeSubmission)
}

// Dipasang di bawah /api/t (teacher)
func AssignmentTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assignmentcontroller.NewTeacherAssignmentController(db)
	assignments := api.Group("/assignments")
	assignments.Get("/", ctrl.MyAssignments)
	assignments.Post("/", ctrl.CreateAssignment)
	assignments.Put("/:id", ctrl.UpdateAssignment)
	assignments.Delete("/:id", ctrl.DeleteAssignment)
	assignments.Get("/:id/submissions", ctrl.Submissions)
	assignments.Put("/:id/submissions/:submission_id/grade", ctrl.GradeSubmission)
}

// Dipasang di bawah /api/s (student)
func AssignmentStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assignmentcontroller.NewStudentAssignmentController(db)
	assignments := api.Group("/assignments")
	assignments.Get("/", ctrl.MyAssignments)
	assignments.Post("/:id/submit", ctrl.SubmitAssignment)
	assignments.Get("/:id/submission", ctrl.MySubmission)
}
