package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	workstreamDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/workstream"
	"github.com/frahmantamala/tracko/internal/workstream"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":      "name",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type WorkstreamRepository struct {
	db *gorm.DB
}

func NewWorkstreamRepository(db *gorm.DB) workstream.Repository {
	return &WorkstreamRepository{db: db}
}

func (r *WorkstreamRepository) List(params listing.Params) ([]*workstreamDatamodel.Workstream, int64, error) {
	query := r.db.Model(&workstreamDatamodel.Workstream{}).Where("is_deleted = ?", false)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*workstreamDatamodel.Workstream
	err := query.
		Order(params.OrderClause(sortColumns, "created_at")).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	return records, total, err
}

func (r *WorkstreamRepository) GetByID(id int64) (*workstreamDatamodel.Workstream, error) {
	var record workstreamDatamodel.Workstream
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *WorkstreamRepository) ActiveNameExists(name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&workstreamDatamodel.Workstream{}).
		Where("name = ? AND is_deleted = ?", name, false)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *WorkstreamRepository) Create(record *workstreamDatamodel.Workstream) error {
	err := r.db.Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return workstream.ErrDuplicate
	}
	return err
}

func (r *WorkstreamRepository) Update(record *workstreamDatamodel.Workstream) error {
	record.UpdatedAt = time.Now()
	err := r.db.Save(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return workstream.ErrDuplicate
	}
	return err
}

func (r *WorkstreamRepository) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&workstreamDatamodel.Workstream{}).
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
