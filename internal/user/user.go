package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/user"
)

type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            int8      `json:"role"`
	Status          int8      `json:"status"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	CountryCode     string    `json:"countryCode,omitempty"`
	ProfileImage    string    `json:"profileImage,omitempty"`
	DepartmentID    *int64    `json:"departmentId,omitempty"`
	DesignationID   *int64    `json:"designationId,omitempty"`
	DepartmentName  string    `json:"departmentName,omitempty"`
	DesignationName string    `json:"designationName,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		Status:        u.Status,
		PhoneNumber:   u.PhoneNumber,
		CountryCode:   u.CountryCode,
		ProfileImage:  u.ProfileImage,
		DepartmentID:  u.DepartmentID,
		DesignationID: u.DesignationID,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func FromDataModelSlice(records []*userDatamodel.User) []*User {
	result := make([]*User, len(records))
	for i, u := range records {
		result[i] = FromDataModel(u)
	}
	return result
}
