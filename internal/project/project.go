package project

import (
	"time"

	projectDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/project"
)

// DateLayout matches how project dates travel over the wire.
const DateLayout = "2006-01-02"

type Project struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      int8       `json:"status"`
	AddedBy     int64      `json:"addedBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromDataModel(p *projectDatamodel.Project) *Project {
	return &Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      p.Status,
		AddedBy:     p.AddedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromDataModelSlice(records []*projectDatamodel.Project) []*Project {
	result := make([]*Project, len(records))
	for i, p := range records {
		result[i] = FromDataModel(p)
	}
	return result
}
