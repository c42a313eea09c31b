package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel menyimpan satu sesi login aktif per user. Login baru
// menggantikan sesi lama, logout menghapusnya.
type SessionModel struct {
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;primaryKey;column:session_id;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;column:user_id"`
	Token     string    `json:"-" gorm:"type:text;not null;index;column:token"`
	ExpiredAt time.Time `json:"expired_at" gorm:"not null;column:expired_at"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (SessionModel) TableName() string { return "sessions" }
