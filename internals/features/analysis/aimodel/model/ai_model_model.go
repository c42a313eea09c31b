package model

import (
	"time"

	"github.com/google/uuid"
)

// AiModelModel: katalog model klasifikasi yang tersedia di layanan AI.
// Supervisor memilih satu model per jenis pengujian pada tiap pengujian.
type AiModelModel struct {
	AiModelID   uuid.UUID `json:"ai_model_id" gorm:"type:uuid;primaryKey;column:ai_model_id;default:gen_random_uuid()"`
	NamaModel   string    `json:"nama_model" gorm:"type:varchar(100);not null;uniqueIndex;column:nama_model"`
	JenisModel  string    `json:"jenis_model" gorm:"type:varchar(20);not null;index;column:jenis_model"` // fasa | crack | degradasi
	NamaPembuat string    `json:"nama_pembuat" gorm:"type:text;column:nama_pembuat"`
	FileName    string    `json:"file_name" gorm:"type:text;column:file_name"`
	Notes       string    `json:"notes" gorm:"type:text;column:notes"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (AiModelModel) TableName() string { return "ai_models" }
