package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"metalab_backend/internals/features/analysis/analyze/model"
)

var ErrDetailNotFound = errors.New("detail hasil analisa tidak ditemukan")

// ApplyOverride mengubah mode satu sub-hasil. Mode MANUAL mengisi
// hasil_klasifikasi_manual dengan label koreksi; mode AI mengembalikan label
// AI sebagai acuan tampilan tanpa menghapus jejak koreksi sebelumnya. Label
// AI, model, dan confidence tidak pernah disentuh — koreksi harus bisa
// dibandingkan dengan prediksi awalnya.
// Mengembalikan false kalau sub-hasil sudah dalam keadaan yang diminta
// (idempoten).
func ApplyOverride(details []model.AnalyzedDetail, detailID string, task model.TaskType, mode model.ClassificationMode, label, penguji string, now time.Time) (bool, error) {
	for i := range details {
		if details[i].DetailID != detailID {
			continue
		}
		sub, err := details[i].Sub(task)
		if err != nil {
			return false, err
		}

		switch mode {
		case model.ModeAI:
			if sub.Mode == model.ModeAI {
				return false, nil
			}
			sub.Mode = model.ModeAI
		case model.ModeManual:
			if sub.Mode == model.ModeManual &&
				sub.HasilKlasifikasiManual != nil && *sub.HasilKlasifikasiManual == label {
				return false, nil
			}
			sub.Mode = model.ModeManual
			sub.HasilKlasifikasiManual = &label
		default:
			return false, fmt.Errorf("mode klasifikasi %q tidak dikenal", mode)
		}

		if penguji != "" {
			sub.Penguji = penguji
		}
		sub.TanggalUpdate = now
		return true, nil
	}
	return false, ErrDetailNotFound
}

// UpdateClassification memuat dokumen hasil, menerapkan perubahan mode,
// menghitung ulang kesimpulan, dan menyimpan. Tanpa perubahan = tanpa tulis.
func UpdateClassification(db *gorm.DB, evaluationCode, detailID string, task model.TaskType, mode model.ClassificationMode, label, penguji string) (*model.AnalyzedResultModel, error) {
	var result model.AnalyzedResultModel
	if err := db.Where("evaluation_code = ?", evaluationCode).First(&result).Error; err != nil {
		return nil, err
	}

	details, err := result.DecodeHasilAnalisa()
	if err != nil {
		return nil, err
	}

	changed, err := ApplyOverride(details, detailID, task, mode, label, penguji, time.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return &result, nil
	}

	if err := result.SetHasilAnalisa(details); err != nil {
		return nil, err
	}
	if err := result.SetKesimpulan(BuildKesimpulan(details)); err != nil {
		return nil, err
	}
	if err := db.Save(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
