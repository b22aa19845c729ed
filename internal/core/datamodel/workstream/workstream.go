package workstream

import "time"

type Workstream struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;not null"`
	Status      int8      `gorm:"column:status;not null;default:1"`
	AddedBy     int64     `gorm:"column:added_by;not null"`
	IsDeleted   bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Workstream) TableName() string {
	return "workstreams"
}
