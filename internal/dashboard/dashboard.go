package dashboard

import "time"

type Period string

const (
	PeriodToday     Period = "today"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodLastMonth Period = "lastMonth"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodLastMonth:
		return true
	}
	return false
}

// palette assigned to projects by descending-hours rank, cycling past ten.
var palette = [10]string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F",
	"#EDC948", "#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
}

func colorForRank(rank int) string {
	return palette[rank%len(palette)]
}

// TaskRow is one finalized task joined to its project, as the repository
// returns it. SpendHours stays string-encoded; aggregation coerces it.
type TaskRow struct {
	ProjectID   int64
	ProjectName string
	SpendHours  string
}

type ProjectStat struct {
	ProjectID       int64   `json:"projectId"`
	ProjectName     string  `json:"projectName"`
	ProductiveHours float64 `json:"productiveHours"`
	Color           string  `json:"color"`
}

type Stats struct {
	Period               Period        `json:"period"`
	Projects             []ProjectStat `json:"projects"`
	TotalProductiveHours float64       `json:"totalProductiveHours"`
	ActiveProjects       int           `json:"activeProjects"`
	AverageDailyHours    float64       `json:"averageDailyHours"`
}

// Window is the inclusive date range a period resolves to.
type Window struct {
	Start time.Time
	End   time.Time
}
