package dto

import (
	"time"

	"github.com/google/uuid"

	"metalab_backend/internals/features/projects/project/model"
)

/* ==============================
   CREATE (POST /projects)
============================== */

type CreateProjectRequest struct {
	ProjectName     string `json:"project_name" validate:"required,max=200"`
	ServiceRequest  string `json:"service_request" validate:"required"`
	Sample          string `json:"sample" validate:"required"`
	TestDate        string `json:"test_date" validate:"required"` // dd-mm-yyyy
	TestLocation    string `json:"test_location" validate:"required"`
	TestArea        string `json:"test_area" validate:"required"`
	TestPosition    string `json:"test_position" validate:"required"`
	Material        string `json:"material" validate:"required"`
	GritSandWheel   string `json:"grit_sand_wheel" validate:"required"`
	Etsa            string `json:"etsa" validate:"required"`
	Camera          string `json:"camera" validate:"required"`
	MicroscopeBrand string `json:"microscope_brand" validate:"required"`
	MicroscopeZoom  string `json:"microscope_zoom" validate:"required"`
}

// ParseTestDate menerima format dd-mm-yyyy dari frontend.
func (r *CreateProjectRequest) ParseTestDate() (time.Time, error) {
	return time.Parse("02-01-2006", r.TestDate)
}

func (r *CreateProjectRequest) ToModel(testDate time.Time) *model.ProjectModel {
	return &model.ProjectModel{
		ProjectName:     r.ProjectName,
		ServiceRequest:  r.ServiceRequest,
		Sample:          r.Sample,
		TestDate:        testDate,
		TestLocation:    r.TestLocation,
		TestArea:        r.TestArea,
		TestPosition:    r.TestPosition,
		Material:        r.Material,
		GritSandWheel:   r.GritSandWheel,
		Etsa:            r.Etsa,
		Camera:          r.Camera,
		MicroscopeBrand: r.MicroscopeBrand,
		MicroscopeZoom:  r.MicroscopeZoom,
	}
}

/* ==============================
   EDIT (PUT /projects/edit)
============================== */

type EditProjectRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	CreateProjectRequest
}

/* ==============================
   ASSIGN USERS (POST /projects/add/users)
============================== */

type AssignUsersRequest struct {
	ProjectID uuid.UUID   `json:"project_id" validate:"required"`
	UserIDs   []uuid.UUID `json:"user_ids" validate:"required"`
}
