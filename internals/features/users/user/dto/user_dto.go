package dto

import "github.com/google/uuid"

/* ==============================
   EDIT (PUT /user/edit) — multipart, file "image" opsional
============================== */

type EditUserRequest struct {
	UserID   uuid.UUID `json:"user_id" form:"user_id" validate:"required"`
	Name     string    `json:"name" form:"name" validate:"required,max=100"`
	Devisi   string    `json:"devisi" form:"devisi" validate:"required,max=100"`
	Jabatan  string    `json:"jabatan" form:"jabatan" validate:"required,max=100"`
	Email    string    `json:"email" form:"email" validate:"required,email"`
	NoHp     string    `json:"no_hp" form:"no_hp" validate:"required,max=30"`
	Alamat   string    `json:"alamat" form:"alamat" validate:"required"`
	Password string    `json:"password" form:"password" validate:"required"`
}

// PasswordSentinel: frontend mengirim delapan bintang kalau password tidak diganti.
const PasswordSentinel = "********"
