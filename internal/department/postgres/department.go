package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	departmentDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/department"
	"github.com/frahmantamala/tracko/internal/department"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":      "name",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.Repository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(params listing.Params) ([]*departmentDatamodel.Department, int64, error) {
	query := r.db.Model(&departmentDatamodel.Department{}).Where("is_deleted = ?", false)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*departmentDatamodel.Department
	err := query.
		Order(params.OrderClause(sortColumns, "created_at")).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	return records, total, err
}

func (r *DepartmentRepository) GetByID(id int64) (*departmentDatamodel.Department, error) {
	var record departmentDatamodel.Department
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ActiveNameExists checks uniqueness among non-deleted rows with exact,
// case-sensitive match. excludeID skips the record being updated.
func (r *DepartmentRepository) ActiveNameExists(name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&departmentDatamodel.Department{}).
		Where("name = ? AND is_deleted = ?", name, false)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *DepartmentRepository) Create(record *departmentDatamodel.Department) error {
	err := r.db.Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the partial unique index closes the check-then-act window
		return department.ErrDuplicate
	}
	return err
}

func (r *DepartmentRepository) Update(record *departmentDatamodel.Department) error {
	record.UpdatedAt = time.Now()
	err := r.db.Save(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return department.ErrDuplicate
	}
	return err
}

// SoftDelete flips the tombstone; returns false when the record is missing or
// already deleted.
func (r *DepartmentRepository) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&departmentDatamodel.Department{}).
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
