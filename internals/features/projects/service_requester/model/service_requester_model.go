package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequesterModel: daftar peminta jasa pengujian.
type ServiceRequesterModel struct {
	ServiceRequesterID uuid.UUID `json:"service_requester_id" gorm:"type:uuid;primaryKey;column:service_requester_id;default:gen_random_uuid()"`
	Nama               string    `json:"nama" gorm:"type:text;not null;uniqueIndex;column:nama"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (ServiceRequesterModel) TableName() string { return "service_requesters" }
