package usertask

import (
	"time"

	usertaskDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/usertask"
)

const DateLayout = "2006-01-02"

type UserTask struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	ProjectID       int64     `json:"projectId"`
	WorkstreamID    int64     `json:"workstreamId"`
	TaskDescription string    `json:"taskDescription"`
	Date            time.Time `json:"date"`
	SpendHours      string    `json:"spendHours"`
	FinalSubmit     bool      `json:"finalSubmit"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromDataModel(t *usertaskDatamodel.UserTask) *UserTask {
	return &UserTask{
		ID:              t.ID,
		UserID:          t.UserID,
		ProjectID:       t.ProjectID,
		WorkstreamID:    t.WorkstreamID,
		TaskDescription: t.TaskDescription,
		Date:            t.Date,
		SpendHours:      t.SpendHours,
		FinalSubmit:     t.FinalSubmit,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromDataModelSlice(records []*usertaskDatamodel.UserTask) []*UserTask {
	result := make([]*UserTask, len(records))
	for i, t := range records {
		result[i] = FromDataModel(t)
	}
	return result
}

// FinalSubmitResult reports how many draft tasks a bulk submit locked.
type FinalSubmitResult struct {
	SubmittedCount int64 `json:"submittedCount"`
}

// ListFilter narrows a task listing. Nil fields leave that dimension open.
// The user filter is only honored for callers allowed to see everyone's
// tasks; other callers are always pinned to their own.
type ListFilter struct {
	UserID    *int64
	StartDate *time.Time
	EndDate   *time.Time
}
