package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"metalab_backend/internals/features/projects/service_requester/model"
	helper "metalab_backend/internals/helpers"
)

type ServiceRequesterController struct {
	DB *gorm.DB
}

func NewServiceRequesterController(db *gorm.DB) *ServiceRequesterController {
	return &ServiceRequesterController{DB: db}
}

// GET /api/m/service-requester
func (ctrl *ServiceRequesterController) GetAll(c *fiber.Ctx) error {
	var requesters []model.ServiceRequesterModel
	if err := ctrl.DB.Order("nama ASC").Find(&requesters).Error; err != nil {
		log.Println("[ERROR] Gagal ambil service requester:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Service Requester failed")
	}
	return helper.Success(c, "OK", requesters)
}

// POST /api/m/service-requester
func (ctrl *ServiceRequesterController) Add(c *fiber.Ctx) error {
	var req struct {
		Nama string `json:"nama"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Nama = strings.TrimSpace(req.Nama)
	if req.Nama == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama wajib diisi")
	}

	var count int64
	if err := ctrl.DB.Model(&model.ServiceRequesterModel{}).
		Where("nama = ?", req.Nama).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Service Requester failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Peminta jasa sudah terdaftar")
	}

	requester := model.ServiceRequesterModel{Nama: req.Nama}
	if err := ctrl.DB.Create(&requester).Error; err != nil {
		log.Println("[ERROR] Gagal simpan service requester:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Add Service Requester failed")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Peminta jasa berhasil ditambahkan", requester)
}

// DELETE /api/m/service-requester/:id
func (ctrl *ServiceRequesterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctrl.DB.Delete(&model.ServiceRequesterModel{}, "service_requester_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Gagal hapus service requester:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete Service Requester failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Peminta jasa tidak ditemukan")
	}
	return helper.Success(c, "Peminta jasa berhasil dihapus", nil)
}
