package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProjectModel struct {
	ProjectID      uuid.UUID `json:"project_id" gorm:"type:uuid;primaryKey;column:project_id;default:gen_random_uuid()"`
	ProjectName    string    `json:"project_name" gorm:"type:text;not null;uniqueIndex;column:project_name"`
	ServiceRequest string    `json:"service_request" gorm:"type:text;not null;column:service_request"`
	Sample         string    `json:"sample" gorm:"type:text;not null;column:sample"`
	TestDate       time.Time `json:"test_date" gorm:"not null;column:test_date"`
	TestLocation   string    `json:"test_location" gorm:"type:text;not null;column:test_location"`
	TestArea       string    `json:"test_area" gorm:"type:text;not null;column:test_area"`
	TestPosition   string    `json:"test_position" gorm:"type:text;not null;column:test_position"`
	Material       string    `json:"material" gorm:"type:text;not null;column:material"`
	GritSandWheel  string    `json:"grit_sand_wheel" gorm:"type:text;not null;column:grit_sand_wheel"`
	Etsa           string    `json:"etsa" gorm:"type:text;not null;column:etsa"`
	Camera         string    `json:"camera" gorm:"type:text;not null;column:camera"`
	MicroscopeBrand string   `json:"microscope_brand" gorm:"type:text;not null;column:microscope_brand"`
	MicroscopeZoom string    `json:"microscope_zoom" gorm:"type:text;not null;column:microscope_zoom"`

	// End user yang ditugaskan ke project ini (uuid dalam bentuk string).
	UserIDs pq.StringArray `json:"user_ids" gorm:"type:text[];not null;default:'{}';column:user_ids"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (ProjectModel) TableName() string { return "projects" }
