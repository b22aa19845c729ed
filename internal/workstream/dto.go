package workstream

import (
	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/validation"
)

type CreateWorkstreamDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (dto CreateWorkstreamDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("description", dto.Description).Required().MaxLength(500)
	return v.Validate()
}

type UpdateWorkstreamDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *int8   `json:"status,omitempty"`
}

func (dto UpdateWorkstreamDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(100)
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).Required().MaxLength(500)
	}
	return v.Validate()
}
