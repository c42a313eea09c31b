package dto

/* ==============================
   REGISTER (POST /register)
============================== */

type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"required,max=100"`
	NomorInduk string `json:"nomor_induk" validate:"required,max=50"`
	Devisi     string `json:"devisi" validate:"required,max=100"`
	Jabatan    string `json:"jabatan" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	NoHp       string `json:"no_hp" validate:"required,max=30"`
	Alamat     string `json:"alamat" validate:"required"`
}

/* ==============================
   LOGIN (POST /login)
============================== */

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileResponse struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	NomorInduk string `json:"nomor_induk"`
	Devisi     string `json:"devisi"`
	Jabatan    string `json:"jabatan"`
	Email      string `json:"email"`
	NoHp       string `json:"no_hp"`
	Alamat     string `json:"alamat"`
	Role       string `json:"role"`
}
