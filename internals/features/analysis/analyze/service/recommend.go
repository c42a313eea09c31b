package service

import (
	"gorm.io/gorm"

	"metalab_backend/internals/features/analysis/analyze/model"
)

// LatestSample mengambil entri log terbaru untuk satu nama gambar —
// rekomendasi hasil lama saat gambar yang sama diuji ulang.
func LatestSample(db *gorm.DB, image string) (*model.SampleModel, error) {
	var sample model.SampleModel
	if err := db.Where("image = ?", image).
		Order("created_at DESC").
		First(&sample).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// SampleHistory mengembalikan seluruh riwayat klasifikasi satu gambar,
// terbaru dulu.
func SampleHistory(db *gorm.DB, image string, limit int) ([]model.SampleModel, error) {
	var samples []model.SampleModel
	q := db.Where("image = ?", image).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}
