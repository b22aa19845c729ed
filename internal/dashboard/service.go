package dashboard

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/frahmantamala/tracko/internal"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var ErrInvalidPeriod = internal.NewValidationError(
	"period must be one of today, week, month, lastMonth", internal.ErrCodeInvalidPeriod)

type Repository interface {
	FinalizedTaskRows(userID int64, window Window) ([]TaskRow, error)
}

type Service struct {
	repo   Repository
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, now: time.Now, logger: logger}
}

// NewServiceWithClock pins the clock so window resolution is testable.
func NewServiceWithClock(repo Repository, now func() time.Time, logger *slog.Logger) *Service {
	return &Service{repo: repo, now: now, logger: logger}
}

func (s *Service) Stats(actor *coreuser.Actor, period Period) (*Stats, error) {
	if actor == nil || actor.ID <= 0 {
		return nil, internal.NewValidationError("invalid user", internal.ErrCodeUserNotFound)
	}
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}

	window := s.resolveWindow(period)

	rows, err := s.repo.FinalizedTaskRows(actor.ID, window)
	if err != nil {
		s.logger.Error("failed to load dashboard rows", "error", err, "user_id", actor.ID)
		return nil, err
	}

	stats := aggregate(rows, period, window)
	s.logger.Debug("dashboard stats computed",
		"user_id", actor.ID,
		"period", string(period),
		"active_projects", stats.ActiveProjects)
	return stats, nil
}

// resolveWindow maps a period onto calendar-day boundaries in server-local
// time. Weeks start on Sunday.
func (s *Service) resolveWindow(period Period) Window {
	now := s.now()
	loc := now.Location()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch period {
	case PeriodToday:
		return Window{Start: startOfDay, End: startOfDay.AddDate(0, 0, 1).Add(-time.Millisecond)}
	case PeriodWeek:
		sunday := startOfDay.AddDate(0, 0, -int(now.Weekday()))
		return Window{Start: sunday, End: now}
	case PeriodMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return Window{Start: firstOfMonth, End: now}
	case PeriodLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		firstOfLast := firstOfMonth.AddDate(0, -1, 0)
		return Window{Start: firstOfLast, End: firstOfMonth.Add(-time.Millisecond)}
	}
	return Window{Start: startOfDay, End: now}
}

func aggregate(rows []TaskRow, period Period, window Window) *Stats {
	type bucket struct {
		projectID   int64
		projectName string
		hours       float64
	}

	buckets := make(map[int64]*bucket)
	order := make([]int64, 0)
	for _, row := range rows {
		b, seen := buckets[row.ProjectID]
		if !seen {
			b = &bucket{projectID: row.ProjectID, projectName: row.ProjectName}
			buckets[row.ProjectID] = b
			order = append(order, row.ProjectID)
		}
		b.hours += coerceHours(row.SpendHours)
	}

	grouped := make([]*bucket, 0, len(buckets))
	for _, id := range order {
		grouped = append(grouped, buckets[id])
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].hours > grouped[j].hours
	})

	projects := make([]ProjectStat, len(grouped))
	var total float64
	for i, b := range grouped {
		rounded := round1(b.hours)
		projects[i] = ProjectStat{
			ProjectID:       b.projectID,
			ProjectName:     b.projectName,
			ProductiveHours: rounded,
			Color:           colorForRank(i),
		}
		total += rounded
	}
	total = round1(total)

	return &Stats{
		Period:               period,
		Projects:             projects,
		TotalProductiveHours: total,
		ActiveProjects:       len(projects),
		AverageDailyHours:    averageDaily(total, period, window),
	}
}

// coerceHours parses string-encoded hours, treating unparseable values as
// zero rather than failing the whole aggregation.
func coerceHours(raw string) float64 {
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	return hours
}

func averageDaily(total float64, period Period, window Window) float64 {
	switch period {
	case PeriodToday:
		return total
	case PeriodWeek:
		return round1(total / 7)
	default:
		days := int(window.End.Sub(window.Start).Hours()/24) + 1
		if days < 1 {
			days = 1
		}
		return round1(total / float64(days))
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
