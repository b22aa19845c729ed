package designation

import (
	"time"

	designationDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/designation"
)

type Designation struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DepartmentID int64     `json:"departmentId"`
	Status       int8      `json:"status"`
	AddedBy      int64     `json:"addedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromDataModel(d *designationDatamodel.Designation) *Designation {
	return &Designation{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		DepartmentID: d.DepartmentID,
		Status:       d.Status,
		AddedBy:      d.AddedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func FromDataModelSlice(records []*designationDatamodel.Designation) []*Designation {
	result := make([]*Designation, len(records))
	for i, d := range records {
		result[i] = FromDataModel(d)
	}
	return result
}
