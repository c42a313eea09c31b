package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskType: tiga tugas klasifikasi AI yang berjalan independen.
type TaskType string

const (
	TaskFasa      TaskType = "fasa"
	TaskCrack     TaskType = "crack"
	TaskDegradasi TaskType = "degradasi"
)

var ErrUnknownTask = errors.New("jenis klasifikasi tidak dikenal")

func ParseTaskType(s string) (TaskType, error) {
	switch TaskType(s) {
	case TaskFasa:
		return TaskFasa, nil
	case TaskCrack:
		return TaskCrack, nil
	case TaskDegradasi:
		return TaskDegradasi, nil
	default:
		return "", ErrUnknownTask
	}
}

// ClassificationMode menentukan label mana yang otoritatif untuk tampilan:
// AI → hasil_klasifikasi_ai, MANUAL → hasil_klasifikasi_manual.
type ClassificationMode string

const (
	ModeAI     ClassificationMode = "AI"
	ModeManual ClassificationMode = "MANUAL"
)

// HasilUji: satu hasil klasifikasi per gambar per tugas.
type HasilUji struct {
	Image                  string             `json:"image"` // gambar beranotasi (base64) dari layanan AI
	Penguji                string             `json:"penguji"`
	TanggalUpdate          time.Time          `json:"tanggal_update"`
	Mode                   ClassificationMode `json:"mode"`
	HasilKlasifikasiAI     string             `json:"hasil_klasifikasi_ai"`
	ModelAI                string             `json:"model_ai"`
	Confidence             float64            `json:"confidence"`
	HasilKlasifikasiManual *string            `json:"hasil_klasifikasi_manual"`
	// Error terisi kalau panggilan upstream gagal untuk item ini; entri
	// tetap ada supaya urutan indeks tidak bergeser.
	Error string `json:"error,omitempty"`
}

// Failed menandakan item ini sentinel kegagalan upstream, bukan hasil valid.
func (h *HasilUji) Failed() bool { return h.Error != "" }

// AnalyzedDetail: satu entri hasil_analisa — satu gambar input dengan tiga
// sub-hasil. DetailID dipakai sebagai target koreksi manual.
type AnalyzedDetail struct {
	DetailID  string   `json:"detail_id"`
	Image     string   `json:"image"` // nama/path gambar input asli
	Fasa      HasilUji `json:"fasa"`
	Crack     HasilUji `json:"crack"`
	Degradasi HasilUji `json:"degradasi"`
}

// Sub mengembalikan pointer sub-hasil untuk tugas tertentu. Switch lengkap:
// TaskType yang lolos ParseTaskType selalu punya cabang.
func (d *AnalyzedDetail) Sub(task TaskType) (*HasilUji, error) {
	switch task {
	case TaskFasa:
		return &d.Fasa, nil
	case TaskCrack:
		return &d.Crack, nil
	case TaskDegradasi:
		return &d.Degradasi, nil
	default:
		return nil, ErrUnknownTask
	}
}

// Kesimpulan: rangkuman hasil analisa satu pengujian.
type Kesimpulan struct {
	StrukturMikro    string `json:"struktur_mikro"`
	FiturMikroskopik string `json:"fitur_mikroskopik"`
	DamageClass      string `json:"damage_class"`
	Hardness         string `json:"hardness"`
	Rekomendasi      string `json:"rekomendasi"`
}

// DetailSnapshot: salinan kondisi pengujian saat analisa dijalankan.
type DetailSnapshot struct {
	PemintaJasa         string `json:"peminta_jasa"`
	TanggalOrderMasuk   string `json:"tanggal_order_masuk"`
	Lokasi              string `json:"lokasi"`
	Area                string `json:"area"`
	Posisi              string `json:"posisi"`
	Material            string `json:"material"`
	GritSandWhell       string `json:"grit_sand_whell"`
	Etsa                string `json:"etsa"`
	Kamera              string `json:"kamera"`
	MerkMikroskop       string `json:"merk_mikroskop"`
	PerbesaranMikroskop string `json:"perbesaran_mikroskop"`
	GambarKomponent1    string `json:"gambar_komponent_1"`
	GambarKomponent2    string `json:"gambar_komponent_2"`
}

// AnalyzedResultModel: hasil satu run analisa AI untuk satu pengujian.
// Maksimal satu baris hidup per evaluation_code; analisa ulang men-soft-delete
// baris lama (jejak audit) lalu membuat baris baru.
type AnalyzedResultModel struct {
	AnalyzedResultID uuid.UUID `json:"analyzed_result_id" gorm:"type:uuid;primaryKey;column:analyzed_result_id;default:gen_random_uuid()"`
	EvaluationCode   string    `json:"evaluation_code" gorm:"type:varchar(100);not null;index;column:evaluation_code"`
	ProjectID        uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index;column:project_id"`

	Nama     string `json:"nama" gorm:"type:text;column:nama"`
	Status   string `json:"status" gorm:"type:varchar(20);column:status"`
	Progress int    `json:"progress" gorm:"column:progress"`

	Detail       datatypes.JSON `json:"detail" gorm:"type:jsonb;column:detail"`
	HasilAnalisa datatypes.JSON `json:"hasil_analisa" gorm:"type:jsonb;not null;default:'[]';column:hasil_analisa"`
	Kesimpulan   datatypes.JSON `json:"kesimpulan" gorm:"type:jsonb;column:kesimpulan"`

	Penguji   pq.StringArray `json:"penguji" gorm:"type:text[];not null;default:'{}';column:penguji"`
	Pemeriksa pq.StringArray `json:"pemeriksa" gorm:"type:text[];not null;default:'{}';column:pemeriksa"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (AnalyzedResultModel) TableName() string { return "analyzed_results" }

func (m *AnalyzedResultModel) DecodeHasilAnalisa() ([]AnalyzedDetail, error) {
	var details []AnalyzedDetail
	if len(m.HasilAnalisa) == 0 {
		return details, nil
	}
	if err := json.Unmarshal(m.HasilAnalisa, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (m *AnalyzedResultModel) SetHasilAnalisa(details []AnalyzedDetail) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	m.HasilAnalisa = datatypes.JSON(raw)
	return nil
}

func (m *AnalyzedResultModel) SetKesimpulan(k Kesimpulan) error {
	raw, err := json.Marshal(k)
	if err != nil {
		return err
	}
	m.Kesimpulan = datatypes.JSON(raw)
	return nil
}

func (m *AnalyzedResultModel) SetDetail(d DetailSnapshot) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	m.Detail = datatypes.JSON(raw)
	return nil
}
