package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/users/auth/controller"
	authMiddleware "metalab_backend/internals/middlewares/auth"
)

// Base: /api
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	base := app.Group("/api")
	base.Post("/register", authController.Register)
	base.Post("/login", authController.Login)

	protected := app.Group("/api", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/check-auth", authController.CheckAuth)
	protected.Get("/profile", authController.GetProfile)
}
