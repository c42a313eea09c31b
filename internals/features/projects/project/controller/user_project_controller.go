package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	evaluationModel "metalab_backend/internals/features/evaluations/evaluation/model"
	"metalab_backend/internals/features/projects/project/model"
	helper "metalab_backend/internals/helpers"
)

// UserProjectController melayani end user: hanya project yang memuat
// user_id miliknya yang terlihat.
type UserProjectController struct {
	DB *gorm.DB
}

func NewUserProjectController(db *gorm.DB) *UserProjectController {
	return &UserProjectController{DB: db}
}

// GET /api/u/projects
func (ctrl *UserProjectController) GetMyProjects(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var projects []model.ProjectModel
	if err := ctrl.DB.
		Where("? = ANY(user_ids)", userID.String()).
		Order("test_date DESC").
		Find(&projects).Error; err != nil {
		log.Println("[ERROR] Gagal ambil projects user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Project failed")
	}
	return helper.Success(c, "OK", projects)
}

// GET /api/u/project/:id
func (ctrl *UserProjectController) GetMyProjectByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "project_id tidak valid")
	}

	var project model.ProjectModel
	if err := ctrl.DB.
		Where("project_id = ? AND ? = ANY(user_ids)", id, userID.String()).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Project failed")
	}

	var evaluations []evaluationModel.ProjectEvaluationModel
	if err := ctrl.DB.
		Where("project_id = ?", project.ProjectID).
		Order("created_at DESC").
		Find(&evaluations).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pengujian project:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Project failed")
	}

	return helper.Success(c, "OK", fiber.Map{
		"project":     project,
		"evaluations": evaluations,
	})
}
