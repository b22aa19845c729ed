package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	projectDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/project"
	usertaskDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/usertask"
	workstreamDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/workstream"
	"github.com/frahmantamala/tracko/internal/usertask"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"date":        "date",
	"spendHours":  "spend_hours",
	"finalSubmit": "final_submit",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

type UserTaskRepository struct {
	db *gorm.DB
}

func NewUserTaskRepository(db *gorm.DB) *UserTaskRepository {
	return &UserTaskRepository{db: db}
}

var _ usertask.Repository = (*UserTaskRepository)(nil)
var _ usertask.ReferenceChecker = (*UserTaskRepository)(nil)

func (r *UserTaskRepository) List(params listing.Params, filter usertask.ListFilter) ([]*usertaskDatamodel.UserTask, int64, error) {
	query := r.db.Model(&usertaskDatamodel.UserTask{}).Where("is_deleted = ?", false)
	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(task_description) LIKE ?", pattern)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return r.page(query, params)
}

func (r *UserTaskRepository) page(query *gorm.DB, params listing.Params) ([]*usertaskDatamodel.UserTask, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*usertaskDatamodel.UserTask
	err := query.
		Order(params.OrderClause(sortColumns, "date")).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error
	return records, total, err
}

func (r *UserTaskRepository) GetByID(id int64) (*usertaskDatamodel.UserTask, error) {
	var record usertaskDatamodel.UserTask
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *UserTaskRepository) Create(record *usertaskDatamodel.UserTask) error {
	return r.db.Create(record).Error
}

func (r *UserTaskRepository) Update(record *usertaskDatamodel.UserTask) error {
	record.UpdatedAt = time.Now()
	return r.db.Save(record).Error
}

func (r *UserTaskRepository) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&usertaskDatamodel.UserTask{}).
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

// LockDrafts flips every matching draft to submitted in a single UPDATE so
// the set of rows it locks is atomic. Nil bounds leave that side of the
// window open.
func (r *UserTaskRepository) LockDrafts(userID int64, startDate, endDate *time.Time) (int64, error) {
	query := r.db.Model(&usertaskDatamodel.UserTask{}).
		Where("user_id = ? AND is_deleted = ? AND final_submit = ?", userID, false, false)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	result := query.Updates(map[string]interface{}{
		"final_submit": true,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *UserTaskRepository) ActiveProjectExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&projectDatamodel.Project{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}

func (r *UserTaskRepository) ActiveWorkstreamExists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&workstreamDatamodel.Workstream{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}
