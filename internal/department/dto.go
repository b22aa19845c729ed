package department

import (
	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/validation"
)

type CreateDepartmentDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (dto CreateDepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("description", dto.Description).Required().MaxLength(500)
	return v.Validate()
}

type UpdateDepartmentDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *int8   `json:"status,omitempty"`
}

func (dto UpdateDepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(100)
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).Required().MaxLength(500)
	}
	return v.Validate()
}
