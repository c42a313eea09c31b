package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"metalab_backend/internals/configs"
	sessionModel "metalab_backend/internals/features/users/auth/model"
)

const sessionTTL = time.Hour

// CreateSession menandatangani JWT baru dan menggantikan sesi lama user.
// Satu sesi aktif per user: login baru mencabut token sebelumnya.
func CreateSession(db *gorm.DB, userID uuid.UUID, role string) (string, error) {
	expiredAt := time.Now().Add(sessionTTL)

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     expiredAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", err
	}

	if err := db.Where("user_id = ?", userID).Delete(&sessionModel.SessionModel{}).Error; err != nil {
		return "", err
	}
	sess := sessionModel.SessionModel{
		UserID:    userID,
		Token:     signed,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&sess).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// DeleteSession menghapus sesi aktif user (logout).
func DeleteSession(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&sessionModel.SessionModel{}).Error
}
