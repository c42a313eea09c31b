package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"metalab_backend/internals/features/evaluations/evaluation/model"
)

func fullEvaluation() *model.ProjectEvaluationModel {
	return &model.ProjectEvaluationModel{
		Nama:                "Inspeksi boiler unit 3",
		Tanggal:             "12-05-2026",
		Lokasi:              "PLTU Suralaya",
		Area:                "Superheater",
		Posisi:              "Tube row 4",
		Material:            "SA-213 T22",
		GritSandWhell:       "600",
		Etsa:                "Nital 3%",
		Kamera:              "Canon EOS",
		MerkMikroskop:       "Olympus BX53M",
		PerbesaranMikroskop: "500x",
		GambarKomponent1:    "uploads/evaluations/komp1.jpg",
		GambarKomponent2:    "uploads/evaluations/komp2.jpg",
		ListGambarStrukturMikro: pq.StringArray{
			"uploads/evaluations/mikro/m1.jpg",
		},
		AiModelFasa:      "fasa-resnet-v2",
		AiModelCrack:     "crack-yolo-v8",
		AiModelDegradasi: "degradasi-effnet",
	}
}

func TestCalculateProgressAllFilled(t *testing.T) {
	got := CalculateProgress(fullEvaluation(), EvaluationProgressFields)
	assert.Equal(t, 100, got.Progress)
	assert.Empty(t, got.MissingFields)
}

func TestCalculateProgressEmpty(t *testing.T) {
	got := CalculateProgress(&model.ProjectEvaluationModel{}, EvaluationProgressFields)
	assert.Equal(t, 0, got.Progress)
	assert.Len(t, got.MissingFields, len(EvaluationProgressFields))
}

func TestCalculateProgressPartial(t *testing.T) {
	eval := fullEvaluation()
	eval.AiModelFasa = ""
	eval.AiModelCrack = ""
	eval.AiModelDegradasi = ""
	eval.ListGambarStrukturMikro = nil

	got := CalculateProgress(eval, EvaluationProgressFields)
	// 13 dari 17 field terisi → 76%
	assert.Equal(t, 76, got.Progress)
	assert.ElementsMatch(t, []string{
		"list_gambar_struktur_mikro", "ai_model_fasa", "ai_model_crack", "ai_model_degradasi",
	}, got.MissingFields)
}

func TestCalculateProgressMissingFieldOrderStable(t *testing.T) {
	eval := fullEvaluation()
	eval.Nama = ""
	eval.Etsa = ""

	got := CalculateProgress(eval, EvaluationProgressFields)
	assert.Equal(t, []string{"nama", "etsa"}, got.MissingFields)
}

func TestCalculateProgressNoFields(t *testing.T) {
	got := CalculateProgress(&model.ProjectEvaluationModel{}, nil)
	assert.Equal(t, 100, got.Progress)
	assert.Empty(t, got.MissingFields)
}
