package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupcontroller "kursusku_backend/internals/features/school/groups/controller"
)

// Dipasang di bawah /api/a (admin)
func GroupAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := groupcontroller.NewAdminGroupController(db)
	groups := api.Group("/groups")
	groups.Get("/", ctrl.ListGroups)
	groups.Post("/", ctrl.CreateGroup)
	groups.Get("/:id", ctrl.GetGroupByID)
	groups.Put("/:id", ctrl.UpdateGroup)
	groups.Delete("/:id", ctrl.DeleteGroup)
}

// Dipasang di bawah /api/t (teacher)
func GroupTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := groupcontroller.NewTeacherGroupController(db)
	api.Get("/groups", ctrl.MyGroups)
}

// Dipasang di bawah /api/s (student)
func GroupStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := groupcontroller.NewStudentGroupController(db)
	api.Get("/groups", ctrl.MyGroups)
}
