package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskModel "metalab_backend/internals/features/analysis/analyze/model"
	"metalab_backend/internals/features/analysis/aimodel/model"
	helper "metalab_backend/internals/helpers"
)

type AiModelController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAiModelController(db *gorm.DB) *AiModelController {
	return &AiModelController{DB: db, Validate: validator.New()}
}

type createAiModelRequest struct {
	NamaModel   string `json:"nama_model" validate:"required,max=100"`
	JenisModel  string `json:"jenis_model" validate:"required,oneof=fasa crack degradasi"`
	NamaPembuat string `json:"nama_pembuat"`
	FileName    string `json:"file_name"`
	Notes       string `json:"notes"`
}

// GET /api/m/ai-models?jenis_model=fasa
func (ctrl *AiModelController) GetAiModels(c *fiber.Ctx) error {
	q := ctrl.DB.Order("created_at DESC")
	if jenis := c.Query("jenis_model"); jenis != "" {
		if _, err := taskModel.ParseTaskType(jenis); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("jenis_model = ?", jenis)
	}

	var models []model.AiModelModel
	if err := q.Find(&models).Error; err != nil {
		log.Println("[ERROR] Gagal ambil daftar model AI:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get model AI failed")
	}
	return helper.Success(c, "OK", models)
}

// POST /api/m/ai-models
func (ctrl *AiModelController) AddAiModel(c *fiber.Ctx) error {
	var req createAiModelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.AiModelModel{}).
		Where("nama_model = ?", req.NamaModel).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add model AI failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama model sudah digunakan")
	}

	entry := &model.AiModelModel{
		NamaModel:   req.NamaModel,
		JenisModel:  req.JenisModel,
		NamaPembuat: req.NamaPembuat,
		FileName:    req.FileName,
		Notes:       req.Notes,
	}
	if err := ctrl.DB.Create(entry).Error; err != nil {
		log.Println("[ERROR] Gagal simpan model AI:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add model AI failed")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Model AI berhasil ditambahkan", entry)
}

// DELETE /api/m/ai-models/:id
func (ctrl *AiModelController) DeleteAiModel(c *fiber.Ctx) error {
	var entry model.AiModelModel
	if err := ctrl.DB.Where("ai_model_id = ?", c.Params("id")).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Model AI tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete model AI failed")
	}
	if err := ctrl.DB.Delete(&entry).Error; err != nil {
		log.Println("[ERROR] Gagal hapus model AI:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete model AI failed")
	}
	return helper.Success(c, "Model AI berhasil dihapus", nil)
}
