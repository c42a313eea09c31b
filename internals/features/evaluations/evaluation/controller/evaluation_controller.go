package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"metalab_backend/internals/features/evaluations/evaluation/dto"
	"metalab_backend/internals/features/evaluations/evaluation/model"
	"metalab_backend/internals/features/evaluations/evaluation/service"
	projectModel "metalab_backend/internals/features/projects/project/model"
	helper "metalab_backend/internals/helpers"
)

type EvaluationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{DB: db, Validate: validator.New()}
}

// POST /api/m/projects/evaluation
// Pengujian baru selalu DRAFT. Kode unik; duplikat ditolak tanpa menulis apa pun.
func (ctrl *EvaluationController) AddEvaluation(c *fiber.Ctx) error {
	var req dto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var projectCount int64
	if err := ctrl.DB.Model(&projectModel.ProjectModel{}).
		Where("project_id = ?", req.ProjectID).Count(&projectCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Pengujian failed")
	}
	if projectCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
	}

	var dupCount int64
	if err := ctrl.DB.Model(&model.ProjectEvaluationModel{}).
		Where("evaluation_code = ?", req.EvaluationCode).Count(&dupCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Pengujian failed")
	}
	if dupCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode pengujian sudah digunakan")
	}

	eval := req.ToModel()
	eval.LastActive = time.Now()
	if err := ctrl.DB.Create(eval).Error; err != nil {
		log.Println("[ERROR] Gagal simpan pengujian:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Pengujian failed")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengujian berhasil ditambahkan", dto.EvaluationResponse{
		Evaluation: eval,
		Progress:   service.CalculateProgress(eval, service.EvaluationProgressFields),
	})
}

// GET /api/m/projects/evaluation/:code
func (ctrl *EvaluationController) GetEvaluationByCode(c *fiber.Ctx) error {
	eval, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return ctrl.evalError(c, err, "Get Pengujian failed")
	}
	return helper.Success(c, "OK", dto.EvaluationResponse{
		Evaluation: eval,
		Progress:   service.CalculateProgress(eval, service.EvaluationProgressFields),
	})
}

// GET /api/m/projects/:id/evaluations
func (ctrl *EvaluationController) GetEvaluationsByProject(c *fiber.Ctx) error {
	var evals []model.ProjectEvaluationModel
	if err := ctrl.DB.
		Where("project_id = ?", c.Params("id")).
		Order("created_at DESC").
		Find(&evals).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pengujian project:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Pengujian failed")
	}
	return helper.Success(c, "OK", evals)
}

// PUT /api/m/projects/evaluation/:code
// Edit field + media (multipart), lalu hitung ulang progress:
// 100 → COMPLETED, > ambang → PROCESSING, selain itu status tetap.
func (ctrl *EvaluationController) EditEvaluation(c *fiber.Ctx) error {
	eval, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return ctrl.evalError(c, err, "Edit Pengujian failed")
	}

	var req dto.EditEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.ApplyTo(eval)

	// Media upload opsional
	replaced := []string{}
	if fh, err := c.FormFile("gambar_komponent_1"); err == nil && fh != nil {
		path, err := helper.SaveUploadedImage("evaluations", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		replaced = append(replaced, eval.GambarKomponent1)
		eval.GambarKomponent1 = path
	}
	if fh, err := c.FormFile("gambar_komponent_2"); err == nil && fh != nil {
		path, err := helper.SaveUploadedImage("evaluations", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		replaced = append(replaced, eval.GambarKomponent2)
		eval.GambarKomponent2 = path
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files, ok := form.File["list_gambar_struktur_mikro"]; ok && len(files) > 0 {
			paths := make([]string, 0, len(files))
			for _, fh := range files {
				path, err := helper.SaveUploadedImage("evaluations/mikro", fh)
				if err != nil {
					return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
				}
				paths = append(paths, path)
			}
			replaced = append(replaced, eval.ListGambarStrukturMikro...)
			eval.ListGambarStrukturMikro = paths
		}
	}

	progress := service.CalculateProgress(eval, service.EvaluationProgressFields)
	eval.Status = service.ApplyProgressRule(eval.Status, progress.Progress, service.ProcessingThreshold())

	if err := ctrl.DB.Save(eval).Error; err != nil {
		log.Println("[ERROR] Gagal update pengujian:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Edit Pengujian failed")
	}

	for _, old := range replaced {
		helper.DeleteStoredFile(old)
	}

	return helper.Success(c, "Edit berhasil", dto.EvaluationResponse{
		Evaluation: eval,
		Progress:   progress,
	})
}

// PUT /api/m/projects/evaluation/:code/status
func (ctrl *EvaluationController) SetStatus(c *fiber.Ctx) error {
	var req dto.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	eval, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return ctrl.evalError(c, err, "Update status failed")
	}

	if err := service.ExplicitTransition(eval, req.Status, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Save(eval).Error; err != nil {
		log.Println("[ERROR] Gagal update status pengujian:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update status failed")
	}

	return helper.Success(c, "Status berhasil diubah", eval)
}

// DELETE /api/m/projects/evaluation/:code
func (ctrl *EvaluationController) DeleteEvaluation(c *fiber.Ctx) error {
	eval, err := ctrl.findByCode(c.Params("code"))
	if err != nil {
		return ctrl.evalError(c, err, "Delete Pengujian failed")
	}

	if err := ctrl.DB.Delete(eval).Error; err != nil {
		log.Println("[ERROR] Gagal hapus pengujian:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete Pengujian failed")
	}

	helper.DeleteStoredFile(eval.GambarKomponent1)
	helper.DeleteStoredFile(eval.GambarKomponent2)
	for _, p := range eval.ListGambarStrukturMikro {
		helper.DeleteStoredFile(p)
	}

	return helper.Success(c, "Pengujian berhasil dihapus", nil)
}

func (ctrl *EvaluationController) findByCode(code string) (*model.ProjectEvaluationModel, error) {
	var eval model.ProjectEvaluationModel
	if err := ctrl.DB.Where("evaluation_code = ?", code).First(&eval).Error; err != nil {
		return nil, err
	}
	return &eval, nil
}

func (ctrl *EvaluationController) evalError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengujian tidak ditemukan")
	}
	log.Println("[ERROR]", fallback+":", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
