package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/projects/project/controller"
)

// Base: /api/m (group supervisor)
func ProjectRoutes(api fiber.Router, db *gorm.DB) {
	projectController := controller.NewProjectController(db)

	api.Get("/projects", projectController.GetAllProjects)
	api.Get("/projects/:id", projectController.GetProjectByID)
	api.Post("/projects", projectController.AddProject)
	api.Put("/projects/edit", projectController.EditProject)
	api.Delete("/projects/delete", projectController.DeleteProject)
	api.Post("/projects/add/users", projectController.AssignUsers)
	api.Post("/projects/get/users", projectController.GetProjectUsers)
}

// Base: /api/u (group user) — hanya project yang ditugaskan ke dirinya.
func UserProjectRoutes(api fiber.Router, db *gorm.DB) {
	userProjectController := controller.NewUserProjectController(db)

	api.Get("/projects", userProjectController.GetMyProjects)
	api.Get("/projects/:id", userProjectController.GetMyProjectByID)
}
