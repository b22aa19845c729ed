package user

import (
	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/validation"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

type UpdateUserDTO struct {
	Name          *string `json:"name,omitempty"`
	Role          *int8   `json:"role,omitempty"`
	Status        *int8   `json:"status,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	CountryCode   *string `json:"countryCode,omitempty"`
	ProfileImage  *string `json:"profileImage,omitempty"`
	DepartmentID  *int64  `json:"departmentId,omitempty"`
	DesignationID *int64  `json:"designationId,omitempty"`
}

func (dto UpdateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(100)
	}
	if dto.Role != nil && !coreuser.Role(*dto.Role).Valid() {
		return internal.NewValidationFieldError("role", "role must be between 0 and 3", internal.ErrCodeValidationFailed)
	}
	if dto.Status != nil && *dto.Status != 0 && *dto.Status != 1 {
		return internal.NewValidationFieldError("status", "status must be 0 or 1", internal.ErrCodeValidationFailed)
	}
	if dto.DepartmentID != nil {
		v.Field("departmentId", *dto.DepartmentID).PositiveID()
	}
	if dto.DesignationID != nil {
		v.Field("designationId", *dto.DesignationID).PositiveID()
	}
	return v.Validate()
}
