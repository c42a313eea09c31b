package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SampleModel: log append-only semua klasifikasi yang pernah dihasilkan,
// per gambar, lintas pengujian. Dipakai untuk merekomendasikan hasil lama
// berdasarkan nama gambar. Tidak pernah di-update.
type SampleModel struct {
	SampleID uuid.UUID `json:"sample_id" gorm:"type:uuid;primaryKey;column:sample_id;default:gen_random_uuid()"`
	Image    string    `json:"image" gorm:"type:text;not null;index;column:image"`

	Fasa      datatypes.JSON `json:"fasa" gorm:"type:jsonb;not null;column:fasa"`
	Crack     datatypes.JSON `json:"crack" gorm:"type:jsonb;not null;column:crack"`
	Degradasi datatypes.JSON `json:"degradasi" gorm:"type:jsonb;not null;column:degradasi"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (SampleModel) TableName() string { return "samples" }

// NewSample membungkus tiga sub-hasil satu gambar jadi satu baris log.
func NewSample(image string, fasa, crack, degradasi HasilUji) (*SampleModel, error) {
	s := &SampleModel{Image: image}
	set := func(dst *datatypes.JSON, src HasilUji) error {
		raw, err := json.Marshal(src)
		if err != nil {
			return err
		}
		*dst = datatypes.JSON(raw)
		return nil
	}
	if err := set(&s.Fasa, fasa); err != nil {
		return nil, err
	}
	if err := set(&s.Crack, crack); err != nil {
		return nil, err
	}
	if err := set(&s.Degradasi, degradasi); err != nil {
		return nil, err
	}
	return s, nil
}

// SubJSON mengembalikan sub-hasil mentah untuk satu tugas.
func (s *SampleModel) SubJSON(task TaskType) (datatypes.JSON, error) {
	switch task {
	case TaskFasa:
		return s.Fasa, nil
	case TaskCrack:
		return s.Crack, nil
	case TaskDegradasi:
		return s.Degradasi, nil
	default:
		return nil, ErrUnknownTask
	}
}
