package workstream_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	workstreamDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/workstream"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"github.com/frahmantamala/tracko/internal/workstream"
)

func TestWorkstreamService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Workstream Service Suite")
}

type mockWorkstreamRepository struct {
	records     map[int64]*workstreamDatamodel.Workstream
	nextID      int64
	createError error
}

func newMockWorkstreamRepository() *mockWorkstreamRepository {
	return &mockWorkstreamRepository{
		records: make(map[int64]*workstreamDatamodel.Workstream),
		nextID:  1,
	}
}

func (m *mockWorkstreamRepository) List(params listing.Params) ([]*workstreamDatamodel.Workstream, int64, error) {
	var out []*workstreamDatamodel.Workstream
	for _, r := range m.records {
		if !r.IsDeleted {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockWorkstreamRepository) GetByID(id int64) (*workstreamDatamodel.Workstream, error) {
	r, ok := m.records[id]
	if !ok || r.IsDeleted {
		return nil, nil
	}
	return r, nil
}

func (m *mockWorkstreamRepository) ActiveNameExists(name string, excludeID int64) (bool, error) {
	for _, r := range m.records {
		if r.IsDeleted || r.ID == excludeID {
			continue
		}
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockWorkstreamRepository) Create(record *workstreamDatamodel.Workstream) error {
	if m.createError != nil {
		return m.createError
	}
	record.ID = m.nextID
	m.nextID++
	m.records[record.ID] = record
	return nil
}

func (m *mockWorkstreamRepository) Update(record *workstreamDatamodel.Workstream) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockWorkstreamRepository) SoftDelete(id int64) (bool, error) {
	r, ok := m.records[id]
	if !ok || r.IsDeleted {
		return false, nil
	}
	r.IsDeleted = true
	return true, nil
}

var _ = Describe("WorkstreamService", func() {
	var (
		service  *workstream.Service
		repo     *mockWorkstreamRepository
		admin    *coreuser.Actor
		manager  *coreuser.Actor
		employee *coreuser.Actor
	)

	BeforeEach(func() {
		repo = newMockWorkstreamRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = workstream.NewService(repo, logger)

		admin = &coreuser.Actor{ID: 1, Email: "admin@tracko.local", Role: coreuser.RoleAdmin}
		manager = &coreuser.Actor{ID: 2, Email: "manager@tracko.local", Role: coreuser.RoleManager}
		employee = &coreuser.Actor{ID: 3, Email: "emp@tracko.local", Role: coreuser.RoleEmployee}
	})

	Describe("Create", func() {
		dto := workstream.CreateWorkstreamDTO{Name: "Development", Description: "Feature work"}

		It("lets an admin create a workstream", func() {
			created, err := service.Create(admin, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.AddedBy).To(Equal(admin.ID))
		})

		It("lets a manager create a workstream", func() {
			_, err := service.Create(manager, dto)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an employee", func() {
			_, err := service.Create(employee, dto)
			Expect(err).To(Equal(workstream.ErrNoCreate))
		})

		It("rejects a duplicate active name", func() {
			_, err := service.Create(admin, dto)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(admin, dto)
			Expect(err).To(Equal(workstream.ErrDuplicate))
		})

		It("frees the name after a soft delete", func() {
			created, err := service.Create(admin, dto)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(admin, created.ID)).To(Succeed())

			_, err = service.Create(admin, dto)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects missing fields", func() {
			_, err := service.Create(admin, workstream.CreateWorkstreamDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("propagates repository errors", func() {
			repo.createError = errors.New("db down")
			_, err := service.Create(admin, dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var existingID int64

		BeforeEach(func() {
			created, err := service.Create(admin, workstream.CreateWorkstreamDTO{
				Name: "Development", Description: "Feature work",
			})
			Expect(err).NotTo(HaveOccurred())
			existingID = created.ID
		})

		It("rejects an employee", func() {
			name := "Review"
			_, err := service.Update(employee, existingID, workstream.UpdateWorkstreamDTO{Name: &name})
			Expect(err).To(Equal(workstream.ErrNoUpdate))
		})

		It("updates the name when it is free", func() {
			name := "Review"
			updated, err := service.Update(admin, existingID, workstream.UpdateWorkstreamDTO{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Review"))
		})

		It("rejects a name already held by another active workstream", func() {
			_, err := service.Create(admin, workstream.CreateWorkstreamDTO{
				Name: "Review", Description: "Code review",
			})
			Expect(err).NotTo(HaveOccurred())

			name := "Review"
			_, err = service.Update(admin, existingID, workstream.UpdateWorkstreamDTO{Name: &name})
			Expect(err).To(Equal(workstream.ErrDuplicate))
		})

		It("allows keeping the same name on update", func() {
			name := "Development"
			desc := "All feature work"
			_, err := service.Update(admin, existingID, workstream.UpdateWorkstreamDTO{Name: &name, Description: &desc})
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports not found for a missing workstream", func() {
			name := "Review"
			_, err := service.Update(admin, 999, workstream.UpdateWorkstreamDTO{Name: &name})
			Expect(err).To(Equal(workstream.ErrNotFound))
		})

		It("reports not found for a soft-deleted workstream", func() {
			Expect(service.Delete(admin, existingID)).To(Succeed())

			name := "Review"
			_, err := service.Update(admin, existingID, workstream.UpdateWorkstreamDTO{Name: &name})
			Expect(err).To(Equal(workstream.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("soft-deletes and hides the record", func() {
			created, err := service.Create(admin, workstream.CreateWorkstreamDTO{
				Name: "Development", Description: "Feature work",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(admin, created.ID)).To(Succeed())

			_, err = service.GetByID(created.ID)
			Expect(err).To(Equal(workstream.ErrNotFound))
		})

		It("reports not found on double delete", func() {
			created, err := service.Create(admin, workstream.CreateWorkstreamDTO{
				Name: "Development", Description: "Feature work",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(admin, created.ID)).To(Succeed())
			Expect(service.Delete(admin, created.ID)).To(Equal(workstream.ErrNotFound))
		})
	})
})
