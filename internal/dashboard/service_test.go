package dashboard_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/tracko/internal/dashboard"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

func TestDashboardService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Service Suite")
}

type mockDashboardRepository struct {
	rows       []dashboard.TaskRow
	lastUserID int64
	lastWindow dashboard.Window
	err        error
}

func (m *mockDashboardRepository) FinalizedTaskRows(userID int64, window dashboard.Window) ([]dashboard.TaskRow, error) {
	m.lastUserID = userID
	m.lastWindow = window
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

var _ = Describe("DashboardService", func() {
	var (
		service *dashboard.Service
		repo    *mockDashboardRepository
		actor   *coreuser.Actor
		now     time.Time
	)

	// Wednesday, 2025-06-18 15:30 local time
	now = time.Date(2025, time.June, 18, 15, 30, 0, 0, time.Local)

	BeforeEach(func() {
		repo = &mockDashboardRepository{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = dashboard.NewServiceWithClock(repo, func() time.Time { return now }, logger)
		actor = &coreuser.Actor{ID: 42, Email: "emp@tracko.local", Role: coreuser.RoleEmployee}
	})

	Describe("Stats", func() {
		It("rejects an unknown period", func() {
			_, err := service.Stats(actor, dashboard.Period("yesterday"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("period"))
		})

		It("groups hours by project and sorts descending", func() {
			repo.rows = []dashboard.TaskRow{
				{ProjectID: 1, ProjectName: "A", SpendHours: "2"},
				{ProjectID: 1, ProjectName: "A", SpendHours: "1.5"},
				{ProjectID: 2, ProjectName: "B", SpendHours: "3"},
			}

			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Projects).To(HaveLen(2))
			Expect(stats.Projects[0].ProjectName).To(Equal("A"))
			Expect(stats.Projects[0].ProductiveHours).To(Equal(3.5))
			Expect(stats.Projects[1].ProjectName).To(Equal("B"))
			Expect(stats.Projects[1].ProductiveHours).To(Equal(3.0))
			Expect(stats.TotalProductiveHours).To(Equal(6.5))
			Expect(stats.ActiveProjects).To(Equal(2))
		})

		It("coerces non-numeric hours to zero instead of failing", func() {
			repo.rows = []dashboard.TaskRow{
				{ProjectID: 1, ProjectName: "A", SpendHours: "abc"},
				{ProjectID: 1, ProjectName: "A", SpendHours: "2"},
			}

			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Projects[0].ProductiveHours).To(Equal(2.0))
			Expect(stats.TotalProductiveHours).To(Equal(2.0))
		})

		It("keeps a zero-hour project in the group count", func() {
			repo.rows = []dashboard.TaskRow{
				{ProjectID: 3, ProjectName: "C", SpendHours: "not-a-number"},
			}

			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.ActiveProjects).To(Equal(1))
			Expect(stats.Projects[0].ProductiveHours).To(Equal(0.0))
		})

		It("rounds project totals to one decimal", func() {
			repo.rows = []dashboard.TaskRow{
				{ProjectID: 1, ProjectName: "A", SpendHours: "1.33"},
				{ProjectID: 1, ProjectName: "A", SpendHours: "1.33"},
			}

			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Projects[0].ProductiveHours).To(Equal(2.7))
		})

		It("cycles colors past ten projects", func() {
			rows := make([]dashboard.TaskRow, 12)
			for i := range rows {
				rows[i] = dashboard.TaskRow{
					ProjectID:   int64(i + 1),
					ProjectName: "P",
					SpendHours:  "1",
				}
			}
			repo.rows = rows

			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Projects).To(HaveLen(12))
			Expect(stats.Projects[10].Color).To(Equal(stats.Projects[0].Color))
			Expect(stats.Projects[11].Color).To(Equal(stats.Projects[1].Color))
		})

		It("returns empty stats when no tasks match", func() {
			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Projects).To(BeEmpty())
			Expect(stats.TotalProductiveHours).To(Equal(0.0))
			Expect(stats.ActiveProjects).To(Equal(0))
			Expect(stats.AverageDailyHours).To(Equal(0.0))
		})

		It("propagates repository errors", func() {
			repo.err = errors.New("db down")
			_, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).To(HaveOccurred())
		})

		It("queries with the actor's id", func() {
			_, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastUserID).To(Equal(int64(42)))
		})
	})

	Describe("period windows", func() {
		It("resolves today to the current calendar day", func() {
			_, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.lastWindow.Start).To(Equal(time.Date(2025, time.June, 18, 0, 0, 0, 0, time.Local)))
			Expect(repo.lastWindow.End.Day()).To(Equal(18))
			Expect(repo.lastWindow.End.Hour()).To(Equal(23))
		})

		It("resolves week starting on Sunday", func() {
			_, err := service.Stats(actor, dashboard.PeriodWeek)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.lastWindow.Start.Weekday()).To(Equal(time.Sunday))
			Expect(repo.lastWindow.Start).To(Equal(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)))
			Expect(repo.lastWindow.End).To(Equal(now))
		})

		It("resolves month from the first", func() {
			_, err := service.Stats(actor, dashboard.PeriodMonth)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.lastWindow.Start).To(Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)))
			Expect(repo.lastWindow.End).To(Equal(now))
		})

		It("resolves lastMonth to the full previous calendar month", func() {
			_, err := service.Stats(actor, dashboard.PeriodLastMonth)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.lastWindow.Start).To(Equal(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local)))
			Expect(repo.lastWindow.End.Month()).To(Equal(time.May))
			Expect(repo.lastWindow.End.Day()).To(Equal(31))
		})
	})

	Describe("averageDailyHours", func() {
		BeforeEach(func() {
			repo.rows = []dashboard.TaskRow{
				{ProjectID: 1, ProjectName: "A", SpendHours: "7"},
			}
		})

		It("equals the total for today", func() {
			stats, err := service.Stats(actor, dashboard.PeriodToday)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.AverageDailyHours).To(Equal(stats.TotalProductiveHours))
		})

		It("divides by seven for week", func() {
			stats, err := service.Stats(actor, dashboard.PeriodWeek)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.AverageDailyHours).To(Equal(1.0))
		})

		It("divides by days spanned for month", func() {
			stats, err := service.Stats(actor, dashboard.PeriodMonth)
			Expect(err).NotTo(HaveOccurred())
			// June 1 through June 18 spans 18 days
			Expect(stats.AverageDailyHours).To(Equal(0.4))
		})

		It("divides by the previous month's length for lastMonth", func() {
			stats, err := service.Stats(actor, dashboard.PeriodLastMonth)
			Expect(err).NotTo(HaveOccurred())
			// May has 31 days
			Expect(stats.AverageDailyHours).To(Equal(0.2))
		})
	})
})
