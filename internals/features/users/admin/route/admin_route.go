package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/users/admin/controller"
)

// Base: /api/admin (publik — bootstrap superadmin & login admin)
func AdminPublicRoutes(app *fiber.App, db *gorm.DB) {
	adminController := controller.NewAdminController(db)

	base := app.Group("/api/admin")
	base.Post("/register-superadmin", adminController.RegisterSuperAdmin)
	base.Post("/login", adminController.Login)
}

// Base: /api/s (group superadmin, middleware dipasang di index)
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	adminController := controller.NewAdminController(db)

	api.Post("/supervisors", adminController.RegisterSupervisor)
	api.Post("/verify", adminController.VerifyUser)
	api.Get("/users", adminController.GetUsers)
	api.Delete("/users/:id", adminController.DeleteUser)
}
