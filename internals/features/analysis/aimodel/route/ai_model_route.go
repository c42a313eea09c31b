package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/analysis/aimodel/controller"
)

// Base: /api/m (group supervisor)
func AiModelRoutes(api fiber.Router, db *gorm.DB) {
	aiModelController := controller.NewAiModelController(db)

	api.Get("/ai-models", aiModelController.GetAiModels)
	api.Post("/ai-models", aiModelController.AddAiModel)
	api.Delete("/ai-models/:id", aiModelController.DeleteAiModel)
}
