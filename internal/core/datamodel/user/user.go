package user

import "time"

type User struct {
	ID            int64     `gorm:"primaryKey"`
	Email         string    `gorm:"column:email;not null"`
	Name          string    `gorm:"column:name;not null"`
	PasswordHash  string    `gorm:"column:password_hash;not null"`
	Role          int8      `gorm:"column:role;not null;default:3"`
	Status        int8      `gorm:"column:status;not null;default:1"`
	PhoneNumber   string    `gorm:"column:phone_number"`
	CountryCode   string    `gorm:"column:country_code"`
	ProfileImage  string    `gorm:"column:profile_image"`
	DepartmentID  *int64    `gorm:"column:department_id"`
	DesignationID *int64    `gorm:"column:designation_id"`
	IsDeleted     bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
