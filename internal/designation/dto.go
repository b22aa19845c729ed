package designation

import (
	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/validation"
)

type CreateDesignationDTO struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"departmentId"`
}

func (dto CreateDesignationDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("description", dto.Description).Required().MaxLength(500)
	v.Field("departmentId", dto.DepartmentID).Required().PositiveID()
	return v.Validate()
}

type UpdateDesignationDTO struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
	Status       *int8   `json:"status,omitempty"`
}

func (dto UpdateDesignationDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(100)
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).Required().MaxLength(500)
	}
	if dto.DepartmentID != nil {
		v.Field("departmentId", *dto.DepartmentID).Required().PositiveID()
	}
	return v.Validate()
}
