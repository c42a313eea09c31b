package dto

import (
	"github.com/google/uuid"

	"metalab_backend/internals/features/evaluations/evaluation/model"
	"metalab_backend/internals/features/evaluations/evaluation/service"
)

/* ==============================
   CREATE (POST /projects/evaluation)
============================== */

type CreateEvaluationRequest struct {
	EvaluationCode string    `json:"evaluation_code" validate:"required,max=100"`
	ProjectID      uuid.UUID `json:"project_id" validate:"required"`
	Nama           string    `json:"nama" validate:"required,max=200"`

	Tanggal             string `json:"tanggal" validate:"omitempty"`
	Lokasi              string `json:"lokasi" validate:"omitempty"`
	Area                string `json:"area" validate:"omitempty"`
	Posisi              string `json:"posisi" validate:"omitempty"`
	Material            string `json:"material" validate:"omitempty"`
	GritSandWhell       string `json:"grit_sand_whell" validate:"omitempty"`
	Etsa                string `json:"etsa" validate:"omitempty"`
	Kamera              string `json:"kamera" validate:"omitempty"`
	MerkMikroskop       string `json:"merk_mikroskop" validate:"omitempty"`
	PerbesaranMikroskop string `json:"perbesaran_mikroskop" validate:"omitempty"`
}

func (r *CreateEvaluationRequest) ToModel() *model.ProjectEvaluationModel {
	return &model.ProjectEvaluationModel{
		EvaluationCode:      r.EvaluationCode,
		ProjectID:           r.ProjectID,
		Status:              model.StatusDraft,
		Nama:                r.Nama,
		Tanggal:             r.Tanggal,
		Lokasi:              r.Lokasi,
		Area:                r.Area,
		Posisi:              r.Posisi,
		Material:            r.Material,
		GritSandWhell:       r.GritSandWhell,
		Etsa:                r.Etsa,
		Kamera:              r.Kamera,
		MerkMikroskop:       r.MerkMikroskop,
		PerbesaranMikroskop: r.PerbesaranMikroskop,
	}
}

/* ==============================
   EDIT (PUT /projects/evaluation/:code) — multipart
   Field nil = tidak diubah. File upload menimpa media lama.
============================== */

type EditEvaluationRequest struct {
	Nama                *string `json:"nama" form:"nama"`
	Tanggal             *string `json:"tanggal" form:"tanggal"`
	Lokasi              *string `json:"lokasi" form:"lokasi"`
	Area                *string `json:"area" form:"area"`
	Posisi              *string `json:"posisi" form:"posisi"`
	Material            *string `json:"material" form:"material"`
	GritSandWhell       *string `json:"grit_sand_whell" form:"grit_sand_whell"`
	Etsa                *string `json:"etsa" form:"etsa"`
	Kamera              *string `json:"kamera" form:"kamera"`
	MerkMikroskop       *string `json:"merk_mikroskop" form:"merk_mikroskop"`
	PerbesaranMikroskop *string `json:"perbesaran_mikroskop" form:"perbesaran_mikroskop"`
	AiModelFasa         *string `json:"ai_model_fasa" form:"ai_model_fasa"`
	AiModelCrack        *string `json:"ai_model_crack" form:"ai_model_crack"`
	AiModelDegradasi    *string `json:"ai_model_degradasi" form:"ai_model_degradasi"`
}

// ApplyTo menyalin field non-nil ke model.
func (r *EditEvaluationRequest) ApplyTo(m *model.ProjectEvaluationModel) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&m.Nama, r.Nama)
	set(&m.Tanggal, r.Tanggal)
	set(&m.Lokasi, r.Lokasi)
	set(&m.Area, r.Area)
	set(&m.Posisi, r.Posisi)
	set(&m.Material, r.Material)
	set(&m.GritSandWhell, r.GritSandWhell)
	set(&m.Etsa, r.Etsa)
	set(&m.Kamera, r.Kamera)
	set(&m.MerkMikroskop, r.MerkMikroskop)
	set(&m.PerbesaranMikroskop, r.PerbesaranMikroskop)
	set(&m.AiModelFasa, r.AiModelFasa)
	set(&m.AiModelCrack, r.AiModelCrack)
	set(&m.AiModelDegradasi, r.AiModelDegradasi)
}

/* ==============================
   SET STATUS (PUT /projects/evaluation/:code/status)
============================== */

type SetStatusRequest struct {
	Status model.EvaluationStatus `json:"status" validate:"required,oneof=PENDING PROCESSING"`
}

/* ==============================
   RESPONSE
============================== */

type EvaluationResponse struct {
	Evaluation *model.ProjectEvaluationModel `json:"evaluation"`
	Progress   service.ProgressResult        `json:"progress"`
}
