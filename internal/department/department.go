package department

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/department"
)

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      int8      `json:"status"`
	AddedBy     int64     `json:"addedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      d.Status,
		AddedBy:     d.AddedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDataModelSlice(records []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(records))
	for i, d := range records {
		result[i] = FromDataModel(d)
	}
	return result
}
