package model

import (
	"time"

	"github.com/google/uuid"

	"metalab_backend/internals/constants"
)

type UserModel struct {
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	Username   string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex;column:username"`
	Password   string    `json:"-" gorm:"type:text;not null;column:password"`
	Name       string    `json:"name" gorm:"type:text;not null;column:name"`
	NomorInduk string    `json:"nomor_induk" gorm:"type:varchar(50);not null;uniqueIndex;column:nomor_induk"`
	Devisi     string    `json:"devisi" gorm:"type:text;not null;column:devisi"`
	Jabatan    string    `json:"jabatan" gorm:"type:text;not null;column:jabatan"`
	Email      string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex;column:email"`
	NoHp       string    `json:"no_hp" gorm:"type:varchar(30);not null;uniqueIndex;column:no_hp"`
	Alamat     string    `json:"alamat" gorm:"type:text;not null;column:alamat"`

	AvatarFilename string `json:"avatar_filename" gorm:"type:text;column:avatar_filename"`
	AvatarPath     string `json:"-" gorm:"type:text;column:avatar_path"`

	IsSuperAdmin bool `json:"is_super_admin" gorm:"not null;default:false;column:is_super_admin"`
	IsAdmin      bool `json:"is_admin" gorm:"not null;default:false;column:is_admin"`
	IsVerify     bool `json:"is_verify" gorm:"not null;default:false;column:is_verify"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

// Role menurunkan role dari flag admin. superadmin > supervisor > user.
func (u *UserModel) Role() string {
	switch {
	case u.IsSuperAdmin:
		return constants.RoleSuperadmin
	case u.IsAdmin:
		return constants.RoleSupervisor
	default:
		return constants.RoleUser
	}
}
