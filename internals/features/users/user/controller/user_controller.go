package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "metalab_backend/internals/features/users/auth/service"
	"metalab_backend/internals/features/users/user/dto"
	userModel "metalab_backend/internals/features/users/user/model"
	helper "metalab_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/m/users
// Daftar user untuk supervisor; superadmin tidak ikut ditampilkan.
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := ctrl.DB.
		Where("is_super_admin = false").
		Order("name ASC").
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Gagal ambil users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get users failed")
	}
	return helper.Success(c, "OK", users)
}

// PUT /api/m/user/edit (multipart; file "image" opsional untuk avatar)
func (ctrl *UserController) EditUser(c *fiber.Ctx) error {
	var req dto.EditUserRequest
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Edit failed")
	}
	if user.IsSuperAdmin {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized user")
	}

	// Email / no HP tidak boleh nabrak milik user lain
	var owner userModel.UserModel
	if err := ctrl.DB.Where("LOWER(email) = LOWER(?)", req.Email).First(&owner).Error; err == nil && owner.UserID != user.UserID {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if err := ctrl.DB.Where("no_hp = ?", req.NoHp).First(&owner).Error; err == nil && owner.UserID != user.UserID {
		return helper.JsonError(c, fiber.StatusConflict, "No HP sudah terdaftar")
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"devisi":  req.Devisi,
		"jabatan": req.Jabatan,
		"email":   req.Email,
		"no_hp":   req.NoHp,
		"alamat":  req.Alamat,
	}

	if req.Password != dto.PasswordSentinel {
		hashed, err := authService.HashPassword(req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Edit failed")
		}
		updates["password"] = hashed
	}

	oldAvatarPath := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := helper.SaveUploadedImage("avatars", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["avatar_filename"] = fh.Filename
		updates["avatar_path"] = path
		oldAvatarPath = user.AvatarPath
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Gagal update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Edit failed")
	}

	if oldAvatarPath != "" {
		helper.DeleteStoredFile(oldAvatarPath)
	}

	return helper.Success(c, "Edit berhasil", nil)
}

// DELETE /api/m/user/delete
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete user failed")
	}
	// Supervisor tidak boleh menghapus sesama admin atau superadmin
	if user.IsSuperAdmin || user.IsAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Delete user failed")
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		log.Println("[ERROR] Gagal hapus user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Delete user failed")
	}
	helper.DeleteStoredFile(user.AvatarPath)

	return helper.Success(c, "User deleted successfully", nil)
}

// POST /api/m/get-image-profile
// Kirim file avatar user; path diverifikasi masih di folder upload.
func (ctrl *UserController) GetImageProfile(c *fiber.Ctx) error {
	var req struct {
		UserID   uuid.UUID `json:"user_id" validate:"required"`
		Filename string    `json:"filename" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Where("user_id = ? AND avatar_filename = ?", req.UserID, req.Filename).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "File not found")
	}

	path, err := helper.ResolveStoredFile(user.AvatarPath)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "File not found")
	}
	return c.SendFile(path)
}
