package project

import (
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/validation"
)

type CreateProjectDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
}

func (dto CreateProjectDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("description", dto.Description).Required().MaxLength(500)
	v.Field("startDate", dto.StartDate).Required().Custom(validDate)
	if dto.EndDate != "" {
		v.Field("endDate", dto.EndDate).Custom(validDate)
	}
	if err := v.Validate(); err != nil {
		return err
	}

	if dto.EndDate != "" {
		start, _ := time.Parse(DateLayout, dto.StartDate)
		end, _ := time.Parse(DateLayout, dto.EndDate)
		if end.Before(start) {
			return internal.NewValidationError("endDate must not be before startDate", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

func (dto CreateProjectDTO) Dates() (time.Time, *time.Time, error) {
	start, err := time.Parse(DateLayout, dto.StartDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	if dto.EndDate == "" {
		return start, nil, nil
	}
	end, err := time.Parse(DateLayout, dto.EndDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	return start, &end, nil
}

type UpdateProjectDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Status      *int8   `json:"status,omitempty"`
}

func (dto UpdateProjectDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.Name != nil {
		v.Field("name", *dto.Name).Required().MaxLength(100)
	}
	if dto.Description != nil {
		v.Field("description", *dto.Description).Required().MaxLength(500)
	}
	if dto.StartDate != nil {
		v.Field("startDate", *dto.StartDate).Required().Custom(validDate)
	}
	if dto.EndDate != nil && *dto.EndDate != "" {
		v.Field("endDate", *dto.EndDate).Custom(validDate)
	}
	return v.Validate()
}

func validDate(value interface{}) *internal.AppError {
	s, ok := value.(string)
	if !ok {
		return internal.NewValidationError("must be a date string", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return internal.NewValidationError("must be a valid date in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
	}
	return nil
}
