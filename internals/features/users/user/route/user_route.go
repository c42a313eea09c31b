package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/users/user/controller"
)

// Base: /api/m (group supervisor) — kelola akun end user.
func UserManagementRoutes(api fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	api.Get("/users", userController.GetUsers)
	api.Put("/user/edit", userController.EditUser)
	api.Delete("/user/delete", userController.DeleteUser)
	api.Post("/get-image-profile", userController.GetImageProfile)
}

// Base: /api/u (group user) — akses avatar sendiri/rekan satu project.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	api.Post("/get-image-profile", userController.GetImageProfile)
}
