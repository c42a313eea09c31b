package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"metalab_backend/internals/features/users/auth/dto"
	authService "metalab_backend/internals/features/users/auth/service"
	userModel "metalab_backend/internals/features/users/user/model"
	helper "metalab_backend/internals/helpers"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

// POST /api/admin/register-superadmin
// Hanya boleh saat belum ada superadmin sama sekali (bootstrap instalasi).
func (ctrl *AdminController) RegisterSuperAdmin(c *fiber.Ctx) error {
	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Where("is_super_admin = true").Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek superadmin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Register failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Superadmin sudah terdaftar")
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Register failed")
	}

	su := userModel.UserModel{
		Username:     req.Username,
		Password:     hashed,
		Name:         req.Name,
		NomorInduk:   req.NomorInduk,
		Devisi:       req.Devisi,
		Jabatan:      req.Jabatan,
		Email:        req.Email,
		NoHp:         req.NoHp,
		Alamat:       req.Alamat,
		IsSuperAdmin: true,
		IsAdmin:      true,
		IsVerify:     true,
	}
	if err := ctrl.DB.Create(&su).Error; err != nil {
		log.Println("[ERROR] Gagal simpan superadmin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Register failed")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Superadmin berhasil didaftarkan", fiber.Map{
		"user_id": su.UserID,
	})
}

// POST /api/admin/login
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil || !user.IsVerify || !user.IsSuperAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Login failed")
	}
	if err := authService.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Login failed")
	}

	token, err := authService.CreateSession(ctrl.DB, user.UserID, user.Role())
	if err != nil {
		log.Println("[ERROR] Gagal buat sesi superadmin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.Success(c, "Login superadmin berhasil", fiber.Map{
		"token": token,
		"role":  user.Role(),
	})
}

// POST /api/s/supervisors
// Promosi user terdaftar menjadi supervisor.
func (ctrl *AdminController) RegisterSupervisor(c *fiber.Ctx) error {
	var req struct {
		UserID uuid.UUID `json:"user_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	if user.IsSuperAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Superadmin tidak bisa diubah")
	}

	if err := ctrl.DB.Model(&user).Update("is_admin", true).Error; err != nil {
		log.Println("[ERROR] Gagal promosi supervisor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Update failed")
	}
	return helper.Success(c, "User dipromosikan menjadi supervisor", nil)
}

// POST /api/s/verify
func (ctrl *AdminController) VerifyUser(c *fiber.Ctx) error {
	var req struct {
		UserID uuid.UUID `json:"user_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND is_super_admin = false", req.UserID).
		Update("is_verify", true)
	if res.Error != nil {
		log.Println("[ERROR] Gagal verifikasi user:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Verify failed")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "User berhasil diverifikasi", nil)
}

// GET /api/s/users
func (ctrl *AdminController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get users failed")
	}

	var users []userModel.UserModel
	if err := ctrl.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Gagal ambil users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get users failed")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      users,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// DELETE /api/s/users/:id
func (ctrl *AdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete user failed")
	}
	if user.IsSuperAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Superadmin tidak bisa dihapus")
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		log.Println("[ERROR] Gagal hapus user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete user failed")
	}
	helper.DeleteStoredFile(user.AvatarPath)
	return helper.Success(c, "User deleted successfully", nil)
}
