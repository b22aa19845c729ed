package workstream

import (
	"time"

	workstreamDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/workstream"
)

type Workstream struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      int8      `json:"status"`
	AddedBy     int64     `json:"addedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDataModel(w *workstreamDatamodel.Workstream) *Workstream {
	return &Workstream{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Status:      w.Status,
		AddedBy:     w.AddedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func FromDataModelSlice(records []*workstreamDatamodel.Workstream) []*Workstream {
	result := make([]*Workstream, len(records))
	for i, w := range records {
		result[i] = FromDataModel(w)
	}
	return result
}
