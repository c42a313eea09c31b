package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metalab_backend/internals/features/analysis/analyze/model"
)

func TestMostFrequentPrediction(t *testing.T) {
	assert.Equal(t, "perlit", MostFrequentPrediction([]string{"perlit", "ferit", "perlit"}))
	// Seri: label yang muncul lebih dulu menang
	assert.Equal(t, "A", MostFrequentPrediction([]string{"A", "B", "A", "B"}))
	// Label kosong (sentinel gagal) tidak ikut dihitung
	assert.Equal(t, "ferit", MostFrequentPrediction([]string{"", "ferit", ""}))
	assert.Equal(t, "", MostFrequentPrediction(nil))
	assert.Equal(t, "", MostFrequentPrediction([]string{"", ""}))
}

func TestCrackDetected(t *testing.T) {
	assert.False(t, CrackDetected(""))
	assert.False(t, CrackDetected("0"))
	assert.True(t, CrackDetected("1"))
	assert.True(t, CrackDetected("microcrack"))
}

func detailWith(fasa, crack, degradasi string) model.AnalyzedDetail {
	return model.AnalyzedDetail{
		Fasa:      model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: fasa},
		Crack:     model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: crack},
		Degradasi: model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: degradasi},
	}
}

func TestBuildKesimpulanVoteAndCrack(t *testing.T) {
	details := []model.AnalyzedDetail{
		detailWith("perlit", "0", "ringan"),
		detailWith("perlit", "1", "sedang"),
		detailWith("ferit", "0", "ringan"),
	}

	k := BuildKesimpulan(details)
	assert.Equal(t, "perlit", k.StrukturMikro)
	assert.Equal(t, "ringan", k.DamageClass)
	assert.Equal(t, "Terdeteksi microcrack pada struktur mikro", k.FiturMikroskopik)
	assert.Contains(t, k.Rekomendasi, "perlit")
	assert.Contains(t, k.Rekomendasi, "ringan")
}

func TestBuildKesimpulanNoCrack(t *testing.T) {
	details := []model.AnalyzedDetail{
		detailWith("bainit", "0", "berat"),
		detailWith("bainit", "", "berat"),
	}

	k := BuildKesimpulan(details)
	assert.Equal(t, "Tidak terdeteksi microcrack pada struktur mikro", k.FiturMikroskopik)
	assert.Equal(t, "bainit", k.StrukturMikro)
}

func TestBuildKesimpulanManualOverrideWins(t *testing.T) {
	manual := "ferit"
	details := []model.AnalyzedDetail{
		detailWith("perlit", "0", "ringan"),
		{
			Fasa: model.HasilUji{
				Mode:                   model.ModeManual,
				HasilKlasifikasiAI:     "perlit",
				HasilKlasifikasiManual: &manual,
			},
			Crack:     model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: "0"},
			Degradasi: model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: "ringan"},
		},
		{
			Fasa: model.HasilUji{
				Mode:                   model.ModeManual,
				HasilKlasifikasiAI:     "perlit",
				HasilKlasifikasiManual: &manual,
			},
			Crack:     model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: "0"},
			Degradasi: model.HasilUji{Mode: model.ModeAI, HasilKlasifikasiAI: "ringan"},
		},
	}

	k := BuildKesimpulan(details)
	assert.Equal(t, "ferit", k.StrukturMikro)
}

func TestBuildKesimpulanIgnoresFailedItems(t *testing.T) {
	details := []model.AnalyzedDetail{
		detailWith("perlit", "1", "ringan"),
		{
			Fasa:      model.HasilUji{Error: "timeout"},
			Crack:     model.HasilUji{Error: "timeout"},
			Degradasi: model.HasilUji{Error: "timeout"},
		},
	}

	k := BuildKesimpulan(details)
	assert.Equal(t, "perlit", k.StrukturMikro)
	assert.Equal(t, "ringan", k.DamageClass)
	assert.Equal(t, "Terdeteksi microcrack pada struktur mikro", k.FiturMikroskopik)
}

func TestBuildKesimpulanAllFailed(t *testing.T) {
	details := []model.AnalyzedDetail{
		{
			Fasa:      model.HasilUji{Error: "down"},
			Crack:     model.HasilUji{Error: "down"},
			Degradasi: model.HasilUji{Error: "down"},
		},
	}

	k := BuildKesimpulan(details)
	assert.Equal(t, "", k.StrukturMikro)
	assert.Equal(t, "", k.DamageClass)
	assert.Equal(t, "", k.Rekomendasi)
	assert.Equal(t, "Tidak terdeteksi microcrack pada struktur mikro", k.FiturMikroskopik)
}
