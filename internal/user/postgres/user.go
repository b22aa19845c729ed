package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	departmentDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/department"
	designationDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/designation"
	userDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/user"
	"github.com/frahmantamala/tracko/internal/user"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(params listing.Params) ([]*userDatamodel.User, int64, error) {
	query := r.db.Model(&userDatamodel.User{}).Where("is_deleted = ?", false)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*userDatamodel.User
	err := query.
		Order(params.OrderClause(sortColumns, "created_at")).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	return records, total, err
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var record userDatamodel.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// GetProfile loads the user plus department and designation names in one
// round trip.
func (r *UserRepository) GetProfile(id int64) (*user.Profile, error) {
	record, err := r.GetByID(id)
	if err != nil || record == nil {
		return nil, err
	}

	profile := &user.Profile{User: record}

	type nameRow struct {
		Name string
	}
	if record.DepartmentID != nil {
		var row nameRow
		err := r.db.Model(&departmentDatamodel.Department{}).
			Select("name").
			Where("id = ? AND is_deleted = ?", *record.DepartmentID, false).
			Scan(&row).Error
		if err != nil {
			return nil, err
		}
		profile.DepartmentName = row.Name
	}
	if record.DesignationID != nil {
		var row nameRow
		err := r.db.Model(&designationDatamodel.Designation{}).
			Select("name").
			Where("id = ? AND is_deleted = ?", *record.DesignationID, false).
			Scan(&row).Error
		if err != nil {
			return nil, err
		}
		profile.DesignationName = row.Name
	}
	return profile, nil
}

func (r *UserRepository) Update(record *userDatamodel.User) error {
	record.UpdatedAt = time.Now()
	return r.db.Save(record).Error
}

func (r *UserRepository) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&userDatamodel.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) ActiveDepartmentExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&departmentDatamodel.Department{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ActiveDesignationExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&designationDatamodel.Designation{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}
