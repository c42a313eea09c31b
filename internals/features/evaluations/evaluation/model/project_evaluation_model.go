package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EvaluationStatus: siklus hidup pengujian.
type EvaluationStatus string

const (
	StatusDraft      EvaluationStatus = "DRAFT"
	StatusPending    EvaluationStatus = "PENDING"
	StatusProcessing EvaluationStatus = "PROCESSING"
	StatusCompleted  EvaluationStatus = "COMPLETED"
)

func (s EvaluationStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// ProjectEvaluationModel: satu pengujian ("Pengujian") dalam sebuah project,
// diidentifikasi kode unik yang dipilih operator.
type ProjectEvaluationModel struct {
	EvaluationID   uuid.UUID        `json:"evaluation_id" gorm:"type:uuid;primaryKey;column:evaluation_id;default:gen_random_uuid()"`
	EvaluationCode string           `json:"evaluation_code" gorm:"type:varchar(100);not null;uniqueIndex;column:evaluation_code"`
	ProjectID      uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;index;column:project_id"`
	Status         EvaluationStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';column:status"`

	Nama                string `json:"nama" gorm:"type:text;not null;column:nama"`
	Tanggal             string `json:"tanggal" gorm:"type:text;column:tanggal"`
	Lokasi              string `json:"lokasi" gorm:"type:text;column:lokasi"`
	Area                string `json:"area" gorm:"type:text;column:area"`
	Posisi              string `json:"posisi" gorm:"type:text;column:posisi"`
	Material            string `json:"material" gorm:"type:text;column:material"`
	GritSandWhell       string `json:"grit_sand_whell" gorm:"type:text;column:grit_sand_whell"`
	Etsa                string `json:"etsa" gorm:"type:text;column:etsa"`
	Kamera              string `json:"kamera" gorm:"type:text;column:kamera"`
	MerkMikroskop       string `json:"merk_mikroskop" gorm:"type:text;column:merk_mikroskop"`
	PerbesaranMikroskop string `json:"perbesaran_mikroskop" gorm:"type:text;column:perbesaran_mikroskop"`

	GambarKomponent1 string `json:"gambar_komponent_1" gorm:"type:text;column:gambar_komponent_1"`
	GambarKomponent2 string `json:"gambar_komponent_2" gorm:"type:text;column:gambar_komponent_2"`

	// Daftar gambar struktur mikro, urut sesuai upload.
	ListGambarStrukturMikro pq.StringArray `json:"list_gambar_struktur_mikro" gorm:"type:text[];not null;default:'{}';column:list_gambar_struktur_mikro"`

	AiModelFasa      string `json:"ai_model_fasa" gorm:"type:text;column:ai_model_fasa"`
	AiModelCrack     string `json:"ai_model_crack" gorm:"type:text;column:ai_model_crack"`
	AiModelDegradasi string `json:"ai_model_degradasi" gorm:"type:text;column:ai_model_degradasi"`

	IsAnalyzed bool      `json:"is_analyzed" gorm:"not null;default:false;column:is_analyzed"`
	LastActive time.Time `json:"last_active" gorm:"column:last_active;autoCreateTime"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (ProjectEvaluationModel) TableName() string { return "project_evaluations" }
