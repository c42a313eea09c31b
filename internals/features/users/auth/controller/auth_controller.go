package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"metalab_backend/internals/features/users/auth/dto"
	authService "metalab_backend/internals/features/users/auth/service"
	userModel "metalab_backend/internals/features/users/user/model"
	helper "metalab_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/register
// Registrasi user biasa (bukan superadmin). Verifikasi langsung aktif,
// promosi jadi supervisor dilakukan superadmin.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Cek duplikat satu per satu supaya pesannya spesifik
	dupChecks := []struct {
		column  string
		value   string
		message string
	}{
		{"username", req.Username, "Username sudah digunakan"},
		{"nomor_induk", req.NomorInduk, "Nomor Induk sudah digunakan"},
		{"lower(email)", req.Email, "Email sudah digunakan"},
		{"no_hp", req.NoHp, "Nomor HP sudah digunakan"},
	}
	for _, chk := range dupChecks {
		var count int64
		q := ctrl.DB.Model(&userModel.UserModel{})
		if chk.column == "lower(email)" {
			q = q.Where("LOWER(email) = LOWER(?)", chk.value)
		} else {
			q = q.Where(chk.column+" = ?", chk.value)
		}
		if err := q.Count(&count).Error; err != nil {
			log.Println("[ERROR] Gagal cek duplikat:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Register failed")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, chk.message)
		}
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Register failed")
	}

	newUser := userModel.UserModel{
		Username:     req.Username,
		Password:     hashed,
		Name:         req.Name,
		NomorInduk:   req.NomorInduk,
		Devisi:       req.Devisi,
		Jabatan:      req.Jabatan,
		Email:        req.Email,
		NoHp:         req.NoHp,
		Alamat:       req.Alamat,
		IsSuperAdmin: false,
		IsAdmin:      false,
		IsVerify:     true,
	}
	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Println("[ERROR] Gagal simpan user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Register failed")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi user berhasil", fiber.Map{
		"user_id": newUser.UserID,
	})
}

// POST /api/login
// Login supervisor & user biasa. Superadmin login lewat /api/admin/login.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil || !user.IsVerify || user.IsSuperAdmin {
		// Pesan sengaja generik: tidak membocorkan apakah username terdaftar
		return helper.JsonError(c, fiber.StatusBadRequest, "Login failed")
	}
	if err := authService.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Login failed")
	}

	token, err := authService.CreateSession(ctrl.DB, user.UserID, user.Role())
	if err != nil {
		log.Println("[ERROR] Gagal buat sesi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	setAuthCookies(c, token, user.Role())
	log.Println("[SUCCESS] Login:", user.Username, "role:", user.Role())
	return helper.Success(c, "Login berhasil", fiber.Map{
		"token": token,
		"role":  user.Role(),
	})
}

// POST /api/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := authService.DeleteSession(ctrl.DB, userID); err != nil {
		log.Println("[ERROR] Gagal hapus sesi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	clearAuthCookies(c)
	return helper.Success(c, "Logout berhasil", nil)
}

// GET /api/check-auth
func (ctrl *AuthController) CheckAuth(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.Success(c, "Valid token", fiber.Map{"role": role})
}

// GET /api/profile
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil profile:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Get Data user failed")
	}

	return helper.Success(c, "OK", dto.ProfileResponse{
		UserID:     user.UserID.String(),
		Name:       user.Name,
		NomorInduk: user.NomorInduk,
		Devisi:     user.Devisi,
		Jabatan:    user.Jabatan,
		Email:      user.Email,
		NoHp:       user.NoHp,
		Alamat:     user.Alamat,
		Role:       user.Role(),
	})
}

func setAuthCookies(c *fiber.Ctx, token, role string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Expires:  time.Now().Add(time.Hour),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "role",
		Value:    role,
		HTTPOnly: false,
		Secure:   true,
		SameSite: "Strict",
		Expires:  time.Now().Add(time.Hour),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"token", "role"} {
		c.Cookie(&fiber.Cookie{
			Name:    name,
			Value:   "",
			Expires: time.Now().Add(-time.Hour),
		})
	}
}
