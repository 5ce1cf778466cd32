package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "kursusku_backend/internals/features/users/auth/controller"
	"kursusku_backend/internals/middlewares"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/logout", ctrl.Logout)

	protected := api.Group("/", authMiddleware.AuthMiddleware(db))
	protected.Post("/change-password", ctrl.ChangePassword)
}
