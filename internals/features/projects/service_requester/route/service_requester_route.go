package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/projects/service_requester/controller"
)

// Base: /api/m (group supervisor)
func ServiceRequesterRoutes(api fiber.Router, db *gorm.DB) {
	serviceRequesterController := controller.NewServiceRequesterController(db)

	api.Get("/service-requester", serviceRequesterController.GetAll)
	api.Post("/service-requester", serviceRequesterController.Add)
	api.Delete("/service-requester/:id", serviceRequesterController.Delete)
}
