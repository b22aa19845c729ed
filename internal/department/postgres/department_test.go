package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	departmentDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/department"
	"github.com/frahmantamala/tracko/internal/department"
)

func TestDepartmentRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Repository Suite")
}

var _ = Describe("DepartmentRepository", func() {
	var (
		db   *gorm.DB
		repo department.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewDepartmentRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	newRecord := func(name string) *departmentDatamodel.Department {
		now := time.Now()
		return &departmentDatamodel.Department{
			Name:        name,
			Description: "desc for " + name,
			Status:      1,
			AddedBy:     1,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	Describe("Create and GetByID", func() {
		It("round-trips a record", func() {
			record := newRecord("Engineering")
			Expect(repo.Create(record)).To(Succeed())
			Expect(record.ID).NotTo(BeZero())

			fetched, err := repo.GetByID(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Name).To(Equal("Engineering"))
		})

		It("returns nil for a missing id", func() {
			fetched, err := repo.GetByID(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeNil())
		})
	})

	Describe("ActiveNameExists", func() {
		It("sees active names and skips deleted ones", func() {
			record := newRecord("Engineering")
			Expect(repo.Create(record)).To(Succeed())

			exists, err := repo.ActiveNameExists("Engineering", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			deleted, err := repo.SoftDelete(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			exists, err = repo.ActiveNameExists("Engineering", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("is case-sensitive", func() {
			Expect(repo.Create(newRecord("Engineering"))).To(Succeed())

			exists, err := repo.ActiveNameExists("engineering", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("excludes the record being updated", func() {
			record := newRecord("Engineering")
			Expect(repo.Create(record)).To(Succeed())

			exists, err := repo.ActiveNameExists("Engineering", record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("SoftDelete", func() {
		It("hides the record from lookups", func() {
			record := newRecord("Engineering")
			Expect(repo.Create(record)).To(Succeed())

			deleted, err := repo.SoftDelete(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			fetched, err := repo.GetByID(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeNil())
		})

		It("reports false on a second delete", func() {
			record := newRecord("Engineering")
			Expect(repo.Create(record)).To(Succeed())

			_, err := repo.SoftDelete(record.ID)
			Expect(err).NotTo(HaveOccurred())

			deleted, err := repo.SoftDelete(record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})

		It("reports false for a missing id", func() {
			deleted, err := repo.SoftDelete(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			Expect(repo.Create(newRecord("Engineering"))).To(Succeed())
			Expect(repo.Create(newRecord("Human Resources"))).To(Succeed())
			Expect(repo.Create(newRecord("Finance"))).To(Succeed())
		})

		It("paginates", func() {
			records, total, err := repo.List(listing.Params{Page: 1, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(records).To(HaveLen(2))

			records, _, err = repo.List(listing.Params{Page: 2, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})

		It("searches name and description case-insensitively", func() {
			records, total, err := repo.List(listing.Params{Page: 1, Limit: 10, Search: "engineer"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(records[0].Name).To(Equal("Engineering"))
		})

		It("excludes soft-deleted rows", func() {
			records, _, err := repo.List(listing.Params{Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.SoftDelete(records[0].ID)
			Expect(err).NotTo(HaveOccurred())

			_, total, err := repo.List(listing.Params{Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})

		It("sorts by an allowed column", func() {
			records, _, err := repo.List(listing.Params{
				Page: 1, Limit: 10, SortBy: "name", SortOrder: "asc",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(records[0].Name).To(Equal("Engineering"))
			Expect(records[2].Name).To(Equal("Human Resources"))
		})
	})
})
