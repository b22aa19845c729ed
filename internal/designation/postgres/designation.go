package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	departmentDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/department"
	designationDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/designation"
	"github.com/frahmantamala/tracko/internal/designation"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":         "name",
	"status":       "status",
	"departmentId": "department_id",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

type DesignationRepository struct {
	db *gorm.DB
}

func NewDesignationRepository(db *gorm.DB) *DesignationRepository {
	return &DesignationRepository{db: db}
}

var _ designation.Repository = (*DesignationRepository)(nil)
var _ designation.DepartmentChecker = (*DesignationRepository)(nil)

func (r *DesignationRepository) List(params listing.Params) ([]*designationDatamodel.Designation, int64, error) {
	query := r.db.Model(&designationDatamodel.Designation{}).Where("is_deleted = ?", false)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*designationDatamodel.Designation
	err := query.
		Order(params.OrderClause(sortColumns, "created_at")).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	return records, total, err
}

func (r *DesignationRepository) GetByID(id int64) (*designationDatamodel.Designation, error) {
	var record designationDatamodel.Designation
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *DesignationRepository) ActiveNameExists(name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&designationDatamodel.Designation{}).
		Where("name = ? AND is_deleted = ?", name, false)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ActiveDepartmentExists validates the department foreign key against
// non-deleted rows.
func (r *DesignationRepository) ActiveDepartmentExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&departmentDatamodel.Department{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}

func (r *DesignationRepository) Create(record *designationDatamodel.Designation) error {
	err := r.db.Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return designation.ErrDuplicate
	}
	return err
}

func (r *DesignationRepository) Update(record *designationDatamodel.Designation) error {
	record.UpdatedAt = time.Now()
	err := r.db.Save(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return designation.ErrDuplicate
	}
	return err
}

func (r *DesignationRepository) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&designationDatamodel.Designation{}).
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
