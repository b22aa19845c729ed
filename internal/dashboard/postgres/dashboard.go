package postgres

import (
	"github.com/frahmantamala/tracko/internal/dashboard"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &DashboardRepository{db: db}
}

// FinalizedTaskRows returns one row per finalized task in the window, joined
// to its project name. Grouping and hour coercion happen in the service so
// string-encoded hours never fail the query.
func (r *DashboardRepository) FinalizedTaskRows(userID int64, window dashboard.Window) ([]dashboard.TaskRow, error) {
	var rows []dashboard.TaskRow
	err := r.db.
		Table("user_tasks").
		Select("user_tasks.project_id AS project_id, projects.name AS project_name, user_tasks.spend_hours AS spend_hours").
		Joins("JOIN projects ON projects.id = user_tasks.project_id").
		Where("user_tasks.user_id = ?", userID).
		Where("user_tasks.is_deleted = ? AND user_tasks.final_submit = ?", false, true).
		Where("user_tasks.date BETWEEN ? AND ?", window.Start, window.End).
		Scan(&rows).Error
	return rows, err
}
