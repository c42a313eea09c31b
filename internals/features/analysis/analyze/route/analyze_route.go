package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/analysis/analyze/controller"
	"metalab_backend/internals/features/analysis/analyze/service"
)

// Base: /api/m (group supervisor)
func AnalyzeRoutes(api fiber.Router, db *gorm.DB, svc *service.AnalyzeService) {
	analyzeController := controller.NewAnalyzeController(db, svc)

	api.Post("/projects/evaluation/:code/analyze", analyzeController.Analyze)
	api.Get("/projects/evaluation/:code/analyzed-result", analyzeController.GetAnalyzedResult)
	api.Put("/projects/evaluation/:code/classification", analyzeController.UpdateClassification)
	api.Post("/samples/recommendation", analyzeController.RecommendFromSamples)
	api.Get("/samples/history", analyzeController.GetSampleHistory)
}
