package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "kursusku_backend/internals/features/users/user/controller"
)

// Dipasang di group yang sudah lewat AuthMiddleware (semua role)
func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := usercontroller.NewProfileController(db)
	profile := api.Group("/profile")
	profile.Get("/me", profileCtrl.Me)
	profile.Post("/image", profileCtrl.UploadProfileImage)
}
