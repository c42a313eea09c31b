package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "metalab_backend/internals/features/evaluations/evaluation/controller"
)

// Base: /api/m (group supervisor)
func EvaluationRoutes(api fiber.Router, db *gorm.DB) {
	evaluationController := controller.NewEvaluationController(db)

	api.Post("/projects/evaluation", evaluationController.AddEvaluation)
	api.Get("/projects/evaluation/:code", evaluationController.GetEvaluationByCode)
	api.Get("/projects/:id/evaluations", evaluationController.GetEvaluationsByProject)
	api.Put("/projects/evaluation/:code", evaluationController.EditEvaluation)
	api.Put("/projects/evaluation/:code/status", evaluationController.SetStatus)
	api.Delete("/projects/evaluation/:code", evaluationController.DeleteEvaluation)
}
