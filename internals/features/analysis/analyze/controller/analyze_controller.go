package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"metalab_backend/internals/features/analysis/analyze/dto"
	"metalab_backend/internals/features/analysis/analyze/model"
	"metalab_backend/internals/features/analysis/analyze/service"
	evalModel "metalab_backend/internals/features/evaluations/evaluation/model"
	evalService "metalab_backend/internals/features/evaluations/evaluation/service"
	projectModel "metalab_backend/internals/features/projects/project/model"
	userModel "metalab_backend/internals/features/users/user/model"
	helper "metalab_backend/internals/helpers"
)

type AnalyzeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.AnalyzeService
}

func NewAnalyzeController(db *gorm.DB, svc *service.AnalyzeService) *AnalyzeController {
	return &AnalyzeController{DB: db, Validate: validator.New(), Service: svc}
}

// POST /api/m/projects/evaluation/:code/analyze
// Menjalankan fan-out klasifikasi AI. Satu run per kode pada satu waktu.
func (ctrl *AnalyzeController) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
		}
	}

	eval, err := ctrl.findEvaluation(c.Params("code"))
	if err != nil {
		return ctrl.notFoundOr500(c, err, "Analisa gagal")
	}

	var project projectModel.ProjectModel
	if err := ctrl.DB.Where("project_id = ?", eval.ProjectID).First(&project).Error; err != nil {
		return ctrl.notFoundOr500(c, err, "Analisa gagal")
	}

	progress := evalService.CalculateProgress(eval, evalService.EvaluationProgressFields)
	input := service.AnalysisInput{
		EvaluationCode: eval.EvaluationCode,
		ProjectID:      eval.ProjectID,
		Nama:           eval.Nama,
		Status:         string(eval.Status),
		Progress:       progress.Progress,
		Snapshot: model.DetailSnapshot{
			PemintaJasa:         project.ServiceRequest,
			TanggalOrderMasuk:   eval.Tanggal,
			Lokasi:              eval.Lokasi,
			Area:                eval.Area,
			Posisi:              eval.Posisi,
			Material:            eval.Material,
			GritSandWhell:       eval.GritSandWhell,
			Etsa:                eval.Etsa,
			Kamera:              eval.Kamera,
			MerkMikroskop:       eval.MerkMikroskop,
			PerbesaranMikroskop: eval.PerbesaranMikroskop,
			GambarKomponent1:    eval.GambarKomponent1,
			GambarKomponent2:    eval.GambarKomponent2,
		},
		Images:         []string(eval.ListGambarStrukturMikro),
		ModelFasa:      eval.AiModelFasa,
		ModelCrack:     eval.AiModelCrack,
		ModelDegradasi: eval.AiModelDegradasi,
		Penguji:        req.Penguji,
		Pemeriksa:      req.Pemeriksa,
	}

	outcome, err := ctrl.Service.Analyze(c.Context(), input)
	switch {
	case errors.Is(err, service.ErrAnalysisInFlight):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEvaluationIncomplete):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		log.Println("[ERROR] Analisa gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Analisa gagal")
	}

	message := "Analisa selesai"
	if len(outcome.Failures) > 0 {
		message = "Analisa selesai dengan sebagian kegagalan"
	}
	return helper.Success(c, message, outcome)
}

// GET /api/m/projects/evaluation/:code/analyzed-result
func (ctrl *AnalyzeController) GetAnalyzedResult(c *fiber.Ctx) error {
	var result model.AnalyzedResultModel
	if err := ctrl.DB.Where("evaluation_code = ?", c.Params("code")).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hasil analisa tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil hasil analisa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get hasil analisa failed")
	}
	return helper.Success(c, "OK", result)
}

// PUT /api/m/projects/evaluation/:code/classification
// Ubah mode satu sub-hasil: MANUAL menimpa dengan label koreksi, AI
// mengembalikan label AI sebagai acuan. Idempoten untuk keadaan yang sama.
func (ctrl *AnalyzeController) UpdateClassification(c *fiber.Ctx) error {
	var req dto.UpdateClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	task, err := model.ParseTaskType(req.JenisPengujian)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	penguji := ""
	if userID, err := helper.GetUserIDFromLocals(c); err == nil {
		var user userModel.UserModel
		if err := ctrl.DB.Select("name").Where("user_id = ?", userID).First(&user).Error; err == nil {
			penguji = user.Name
		}
	}

	result, err := service.UpdateClassification(ctrl.DB, c.Params("code"), req.DetailID, task,
		model.ClassificationMode(req.Mode), req.Hasil, penguji)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Hasil analisa tidak ditemukan")
	case errors.Is(err, service.ErrDetailNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Detail hasil analisa tidak ditemukan")
	case err != nil:
		log.Println("[ERROR] Gagal koreksi klasifikasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update klasifikasi failed")
	}

	return helper.Success(c, "Klasifikasi berhasil diperbarui", result)
}

// POST /api/m/samples/recommendation
// Rekomendasi hasil lama per nama gambar; gambar tanpa riwayat dilewati.
func (ctrl *AnalyzeController) RecommendFromSamples(c *fiber.Ctx) error {
	var req dto.SampleRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var task model.TaskType
	if req.JenisPengujian != "" {
		parsed, err := model.ParseTaskType(req.JenisPengujian)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		task = parsed
	}

	recommendations := make([]fiber.Map, 0, len(req.Images))
	for _, image := range req.Images {
		sample, err := service.LatestSample(ctrl.DB, image)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			log.Println("[ERROR] Gagal ambil rekomendasi sample:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Get rekomendasi failed")
		}

		entry := fiber.Map{
			"image":      sample.Image,
			"created_at": sample.CreatedAt,
		}
		if task != "" {
			sub, err := sample.SubJSON(task)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
			}
			entry["jenis_pengujian"] = task
			entry["hasil"] = sub
		} else {
			entry["fasa"] = sample.Fasa
			entry["crack"] = sample.Crack
			entry["degradasi"] = sample.Degradasi
		}
		recommendations = append(recommendations, entry)
	}

	return helper.Success(c, "OK", recommendations)
}

// GET /api/m/samples/history?image=...&limit=...
func (ctrl *AnalyzeController) GetSampleHistory(c *fiber.Ctx) error {
	image := c.Query("image")
	if image == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter image wajib diisi")
	}
	samples, err := service.SampleHistory(ctrl.DB, image, c.QueryInt("limit", 20))
	if err != nil {
		log.Println("[ERROR] Gagal ambil riwayat sample:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get riwayat failed")
	}
	return helper.Success(c, "OK", samples)
}

func (ctrl *AnalyzeController) findEvaluation(code string) (*evalModel.ProjectEvaluationModel, error) {
	var eval evalModel.ProjectEvaluationModel
	if err := ctrl.DB.Where("evaluation_code = ?", code).First(&eval).Error; err != nil {
		return nil, err
	}
	return &eval, nil
}

func (ctrl *AnalyzeController) notFoundOr500(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengujian tidak ditemukan")
	}
	log.Println("[ERROR]", fallback+":", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
