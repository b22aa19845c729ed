package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	projectDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/project"
	"github.com/frahmantamala/tracko/internal/project"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":      "name",
	"status":    "status",
	"startDate": "start_date",
	"endDate":   "end_date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(params listing.Params) ([]*projectDatamodel.Project, int64, error) {
	query := r.db.Model(&projectDatamodel.Project{}).Where("is_deleted = ?", false)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*projectDatamodel.Project
	err := query.
		Order(params.OrderClause(sortColumns, "created_at")).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	return records, total, err
}

func (r *ProjectRepository) GetByID(id int64) (*projectDatamodel.Project, error) {
	var record projectDatamodel.Project
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ProjectRepository) ActiveNameExists(name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&projectDatamodel.Project{}).
		Where("name = ? AND is_deleted = ?", name, false)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepository) Create(record *projectDatamodel.Project) error {
	err := r.db.Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return project.ErrDuplicate
	}
	return err
}

func (r *ProjectRepository) Update(record *projectDatamodel.Project) error {
	record.UpdatedAt = time.Now()
	err := r.db.Save(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return project.ErrDuplicate
	}
	return err
}

func (r *ProjectRepository) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&projectDatamodel.Project{}).
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
