package usertask

import "time"

// SpendHours stays string-encoded end to end; the dashboard coerces it to a
// float and treats unparseable values as zero.
type UserTask struct {
	ID              int64     `gorm:"primaryKey"`
	UserID          int64     `gorm:"column:user_id;not null"`
	ProjectID       int64     `gorm:"column:project_id;not null"`
	WorkstreamID    int64     `gorm:"column:workstream_id;not null"`
	TaskDescription string    `gorm:"column:task_description;not null"`
	Date            time.Time `gorm:"column:date;type:date;not null"`
	SpendHours      string    `gorm:"column:spend_hours;not null"`
	FinalSubmit     bool      `gorm:"column:final_submit;not null;default:false"`
	IsDeleted       bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserTask) TableName() string {
	return "user_tasks"
}
