package service

import (
	"math"

	"metalab_backend/internals/features/evaluations/evaluation/model"
)

// ProgressField: satu field yang dihitung dalam persentase kelengkapan.
// Daftar field eksplisit dan berversi — menambah kolom baru di model TIDAK
// mengubah semantik progress kecuali field-nya didaftarkan di sini.
type ProgressField struct {
	Name   string
	Filled func(*model.ProjectEvaluationModel) bool
}

func stringField(name string, get func(*model.ProjectEvaluationModel) string) ProgressField {
	return ProgressField{
		Name:   name,
		Filled: func(m *model.ProjectEvaluationModel) bool { return get(m) != "" },
	}
}

// EvaluationProgressFields v1: field yang relevan untuk kelengkapan pengujian.
// Field pembukuan (kode, project_id, status, is_analyzed, last_active,
// timestamp) sengaja tidak dihitung.
var EvaluationProgressFields = []ProgressField{
	stringField("nama", func(m *model.ProjectEvaluationModel) string { return m.Nama }),
	stringField("tanggal", func(m *model.ProjectEvaluationModel) string { return m.Tanggal }),
	stringField("lokasi", func(m *model.ProjectEvaluationModel) string { return m.Lokasi }),
	stringField("area", func(m *model.ProjectEvaluationModel) string { return m.Area }),
	stringField("posisi", func(m *model.ProjectEvaluationModel) string { return m.Posisi }),
	stringField("material", func(m *model.ProjectEvaluationModel) string { return m.Material }),
	stringField("grit_sand_whell", func(m *model.ProjectEvaluationModel) string { return m.GritSandWhell }),
	stringField("etsa", func(m *model.ProjectEvaluationModel) string { return m.Etsa }),
	stringField("kamera", func(m *model.ProjectEvaluationModel) string { return m.Kamera }),
	stringField("merk_mikroskop", func(m *model.ProjectEvaluationModel) string { return m.MerkMikroskop }),
	stringField("perbesaran_mikroskop", func(m *model.ProjectEvaluationModel) string { return m.PerbesaranMikroskop }),
	stringField("gambar_komponent_1", func(m *model.ProjectEvaluationModel) string { return m.GambarKomponent1 }),
	stringField("gambar_komponent_2", func(m *model.ProjectEvaluationModel) string { return m.GambarKomponent2 }),
	{
		Name:   "list_gambar_struktur_mikro",
		Filled: func(m *model.ProjectEvaluationModel) bool { return len(m.ListGambarStrukturMikro) > 0 },
	},
	stringField("ai_model_fasa", func(m *model.ProjectEvaluationModel) string { return m.AiModelFasa }),
	stringField("ai_model_crack", func(m *model.ProjectEvaluationModel) string { return m.AiModelCrack }),
	stringField("ai_model_degradasi", func(m *model.ProjectEvaluationModel) string { return m.AiModelDegradasi }),
}

type ProgressResult struct {
	Progress      int      `json:"progress"`
	MissingFields []string `json:"missing_fields"`
}

// CalculateProgress menghitung persentase kelengkapan (0..100) dan daftar
// field yang masih kosong. Fungsi murni, tanpa side effect.
// Daftar field kosong menghasilkan 100 (tidak ada yang bisa kurang).
func CalculateProgress(m *model.ProjectEvaluationModel, fields []ProgressField) ProgressResult {
	if len(fields) == 0 {
		return ProgressResult{Progress: 100, MissingFields: []string{}}
	}

	filled := 0
	missing := []string{}
	for _, f := range fields {
		if f.Filled(m) {
			filled++
		} else {
			missing = append(missing, f.Name)
		}
	}

	progress := int(math.Round(100 * float64(filled) / float64(len(fields))))
	return ProgressResult{Progress: progress, MissingFields: missing}
}
