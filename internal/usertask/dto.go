package usertask

import (
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/validation"
)

type CreateUserTaskDTO struct {
	ProjectID       int64  `json:"projectId"`
	WorkstreamID    int64  `json:"workstreamId"`
	TaskDescription string `json:"taskDescription"`
	Date            string `json:"date"`
	SpendHours      string `json:"spendHours"`
}

func (dto CreateUserTaskDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("projectId", dto.ProjectID).Required().PositiveID()
	v.Field("workstreamId", dto.WorkstreamID).Required().PositiveID()
	v.Field("taskDescription", dto.TaskDescription).Required().MaxLength(1000)
	v.Field("date", dto.Date).Required().Custom(validDate)
	v.Field("spendHours", dto.SpendHours).Required().NumericHours()
	if err := v.Validate(); err != nil {
		return err
	}

	date, _ := time.Parse(DateLayout, dto.Date)
	if date.After(time.Now()) {
		return internal.NewValidationFieldError("date", "date cannot be in the future", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto CreateUserTaskDTO) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, dto.Date)
}

type UpdateUserTaskDTO struct {
	ProjectID       *int64  `json:"projectId,omitempty"`
	WorkstreamID    *int64  `json:"workstreamId,omitempty"`
	TaskDescription *string `json:"taskDescription,omitempty"`
	Date            *string `json:"date,omitempty"`
	SpendHours      *string `json:"spendHours,omitempty"`
}

func (dto UpdateUserTaskDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.ProjectID != nil {
		v.Field("projectId", *dto.ProjectID).PositiveID()
	}
	if dto.WorkstreamID != nil {
		v.Field("workstreamId", *dto.WorkstreamID).PositiveID()
	}
	if dto.TaskDescription != nil {
		v.Field("taskDescription", *dto.TaskDescription).Required().MaxLength(1000)
	}
	if dto.Date != nil {
		v.Field("date", *dto.Date).Required().Custom(validDate)
	}
	if dto.SpendHours != nil {
		v.Field("spendHours", *dto.SpendHours).Required().NumericHours()
	}
	return v.Validate()
}

// FinalSubmitDTO scopes a bulk lock to an optional inclusive date window.
// Both bounds empty locks every remaining draft for the user.
type FinalSubmitDTO struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (dto FinalSubmitDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.StartDate != "" {
		v.Field("startDate", dto.StartDate).Custom(validDate)
	}
	if dto.EndDate != "" {
		v.Field("endDate", dto.EndDate).Custom(validDate)
	}
	if err := v.Validate(); err != nil {
		return err
	}

	if dto.StartDate != "" && dto.EndDate != "" {
		start, _ := time.Parse(DateLayout, dto.StartDate)
		end, _ := time.Parse(DateLayout, dto.EndDate)
		if end.Before(start) {
			return internal.NewValidationError("endDate must not be before startDate", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

func (dto FinalSubmitDTO) Window() (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if dto.StartDate != "" {
		t, err := time.Parse(DateLayout, dto.StartDate)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if dto.EndDate != "" {
		t, err := time.Parse(DateLayout, dto.EndDate)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
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
