package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	projectDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/project"
	usertaskDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/usertask"
	workstreamDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/workstream"
)

func TestUserTaskRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UserTask Repository Suite")
}

var _ = Describe("UserTaskRepository", func() {
	var (
		db   *gorm.DB
		repo *UserTaskRepository
	)

	day := func(offset int) time.Time {
		base := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
		return base.AddDate(0, 0, offset)
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&usertaskDatamodel.UserTask{},
			&projectDatamodel.Project{},
			&workstreamDatamodel.Workstream{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = NewUserTaskRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	newTask := func(userID int64, date time.Time) *usertaskDatamodel.UserTask {
		now := time.Now()
		return &usertaskDatamodel.UserTask{
			UserID:          userID,
			ProjectID:       1,
			WorkstreamID:    1,
			TaskDescription: "work",
			Date:            date,
			SpendHours:      "2",
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}

	Describe("LockDrafts", func() {
		It("locks every draft for the user with an open window", func() {
			Expect(repo.Create(newTask(10, day(0)))).To(Succeed())
			Expect(repo.Create(newTask(10, day(1)))).To(Succeed())
			Expect(repo.Create(newTask(11, day(0)))).To(Succeed())

			count, err := repo.LockDrafts(10, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))

			otherCount := int64(0)
			Expect(db.Model(&usertaskDatamodel.UserTask{}).
				Where("user_id = ? AND final_submit = ?", 11, true).
				Count(&otherCount).Error).To(Succeed())
			Expect(otherCount).To(BeZero())
		})

		It("respects the inclusive date window", func() {
			Expect(repo.Create(newTask(10, day(0)))).To(Succeed())
			Expect(repo.Create(newTask(10, day(1)))).To(Succeed())
			Expect(repo.Create(newTask(10, day(5)))).To(Succeed())

			start := day(0)
			end := day(1)
			count, err := repo.LockDrafts(10, &start, &end)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})

		It("skips already-locked and deleted tasks", func() {
			locked := newTask(10, day(0))
			locked.FinalSubmit = true
			Expect(repo.Create(locked)).To(Succeed())

			deleted := newTask(10, day(0))
			deleted.IsDeleted = true
			Expect(repo.Create(deleted)).To(Succeed())

			count, err := repo.LockDrafts(10, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("reports zero when the user has no drafts", func() {
			count, err := repo.LockDrafts(10, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})

	Describe("GetByID", func() {
		It("hides soft-deleted tasks", func() {
			task := newTask(10, day(0))
			Expect(repo.Create(task)).To(Succeed())

			deleted, err := repo.SoftDelete(task.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			fetched, err := repo.GetByID(task.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeNil())
		})
	})

	Describe("reference checks", func() {
		It("sees only non-deleted projects and workstreams", func() {
			Expect(db.Create(&projectDatamodel.Project{
				Name: "P", Description: "p", StartDate: day(0), Status: 1, AddedBy: 1,
			}).Error).To(Succeed())
			Expect(db.Create(&workstreamDatamodel.Workstream{
				Name: "W", Description: "w", Status: 1, AddedBy: 1, IsDeleted: true,
			}).Error).To(Succeed())

			ok, err := repo.ActiveProjectExists(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = repo.ActiveWorkstreamExists(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
