package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"metalab_backend/internals/features/projects/project/dto"
	"metalab_backend/internals/features/projects/project/model"
	userModel "metalab_backend/internals/features/users/user/model"
	helper "metalab_backend/internals/helpers"
)

type ProjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db, Validate: validator.New()}
}

// GET /api/m/projects
func (ctrl *ProjectController) GetAllProjects(c *fiber.Ctx) error {
	var projects []model.ProjectModel
	if err := ctrl.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		log.Println("[ERROR] Gagal ambil projects:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Project failed")
	}
	return helper.Success(c, "OK", projects)
}

// GET /api/m/projects/:id
func (ctrl *ProjectController) GetProjectByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "project_id tidak valid")
	}

	var project model.ProjectModel
	if err := ctrl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Project failed")
	}
	return helper.Success(c, "OK", project)
}

// POST /api/m/projects
func (ctrl *ProjectController) AddProject(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	testDate, err := req.ParseTestDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal pengujian tidak valid (dd-mm-yyyy)")
	}

	var count int64
	if err := ctrl.DB.Model(&model.ProjectModel{}).
		Where("project_name = ?", req.ProjectName).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Project failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama project sudah terdaftar")
	}

	project := req.ToModel(testDate)
	if err := ctrl.DB.Create(project).Error; err != nil {
		log.Println("[ERROR] Gagal simpan project:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Project failed")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Project berhasil ditambahkan", project)
}

// PUT /api/m/projects/edit
func (ctrl *ProjectController) EditProject(c *fiber.Ctx) error {
	var req dto.EditProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.ProjectModel
	if err := ctrl.DB.First(&existing, "project_id = ?", req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Edit Project failed")
	}

	var dup model.ProjectModel
	if err := ctrl.DB.Where("project_name = ?", req.ProjectName).First(&dup).Error; err == nil &&
		dup.ProjectID != existing.ProjectID {
		return helper.JsonError(c, fiber.StatusConflict, "Edit gagal, nama project sudah digunakan")
	}

	testDate, err := req.ParseTestDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal pengujian tidak valid (dd-mm-yyyy)")
	}

	updates := req.ToModel(testDate)
	if err := ctrl.DB.Model(&existing).Updates(map[string]interface{}{
		"project_name":     updates.ProjectName,
		"service_request":  updates.ServiceRequest,
		"sample":           updates.Sample,
		"test_date":        updates.TestDate,
		"test_location":    updates.TestLocation,
		"test_area":        updates.TestArea,
		"test_position":    updates.TestPosition,
		"material":         updates.Material,
		"grit_sand_wheel":  updates.GritSandWheel,
		"etsa":             updates.Etsa,
		"camera":           updates.Camera,
		"microscope_brand": updates.MicroscopeBrand,
		"microscope_zoom":  updates.MicroscopeZoom,
	}).Error; err != nil {
		log.Println("[ERROR] Gagal update project:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Edit Project failed")
	}

	return helper.Success(c, "Edit berhasil", existing)
}

// DELETE /api/m/projects/delete
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	var req struct {
		ProjectID uuid.UUID `json:"project_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Delete(&model.ProjectModel{}, "project_id = ?", req.ProjectID)
	if res.Error != nil {
		log.Println("[ERROR] Gagal hapus project:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete Project failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
	}
	return helper.Success(c, "Project berhasil dihapus", nil)
}

// POST /api/m/projects/add/users
// Ganti daftar user project; semua id harus user terdaftar.
func (ctrl *ProjectController) AssignUsers(c *fiber.Ctx) error {
	var req dto.AssignUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id IN ?", req.UserIDs).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Data user failed")
	}
	if int(count) != len(req.UserIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data User tidak valid")
	}

	ids := make([]string, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		ids = append(ids, id.String())
	}

	res := ctrl.DB.Model(&model.ProjectModel{}).
		Where("project_id = ?", req.ProjectID).
		Update("user_ids", pq.StringArray(ids))
	if res.Error != nil {
		log.Println("[ERROR] Gagal assign users:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Data user failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project tidak ditemukan")
	}

	return helper.Success(c, "Data user berhasil ditambahkan", nil)
}

// POST /api/m/projects/get/users
func (ctrl *ProjectController) GetProjectUsers(c *fiber.Ctx) error {
	var req struct {
		ProjectID uuid.UUID `json:"project_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var project model.ProjectModel
	if err := ctrl.DB.Select("user_ids").First(&project, "project_id = ?", req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Data user failed")
	}

	return helper.Success(c, "OK", project.UserIDs)
}
