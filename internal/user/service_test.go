package user_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
	userDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
	"github.com/frahmantamala/tracko/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

type mockUserRepository struct {
	records      map[int64]*userDatamodel.User
	departments  map[int64]string
	designations map[int64]string
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		records:      make(map[int64]*userDatamodel.User),
		departments:  make(map[int64]string),
		designations: make(map[int64]string),
	}
}

func (m *mockUserRepository) List(params listing.Params) ([]*userDatamodel.User, int64, error) {
	var out []*userDatamodel.User
	for _, r := range m.records {
		if !r.IsDeleted {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	r, ok := m.records[id]
	if !ok || r.IsDeleted {
		return nil, nil
	}
	return r, nil
}

func (m *mockUserRepository) GetProfile(id int64) (*user.Profile, error) {
	r, ok := m.records[id]
	if !ok || r.IsDeleted {
		return nil, nil
	}
	profile := &user.Profile{User: r}
	if r.DepartmentID != nil {
		profile.DepartmentName = m.departments[*r.DepartmentID]
	}
	if r.DesignationID != nil {
		profile.DesignationName = m.designations[*r.DesignationID]
	}
	return profile, nil
}

func (m *mockUserRepository) Update(record *userDatamodel.User) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockUserRepository) SoftDelete(id int64) (bool, error) {
	r, ok := m.records[id]
	if !ok || r.IsDeleted {
		return false, nil
	}
	r.IsDeleted = true
	return true, nil
}

func (m *mockUserRepository) ActiveDepartmentExists(id int64) (bool, error) {
	_, ok := m.departments[id]
	return ok, nil
}

func (m *mockUserRepository) ActiveDesignationExists(id int64) (bool, error) {
	_, ok := m.designations[id]
	return ok, nil
}

var _ = Describe("UserService", func() {
	var (
		service  *user.Service
		repo     *mockUserRepository
		admin    *coreuser.Actor
		manager  *coreuser.Actor
		employee *coreuser.Actor
	)

	seedUser := func(id int64, email string, role coreuser.Role) *userDatamodel.User {
		record := &userDatamodel.User{
			ID:        id,
			Email:     email,
			Name:      "Someone",
			Role:      int8(role),
			Status:    int8(coreuser.StatusActive),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		repo.records[id] = record
		return record
	}

	BeforeEach(func() {
		repo = newMockUserRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(repo, logger)

		admin = &coreuser.Actor{ID: 1, Email: "admin@tracko.local", Role: coreuser.RoleAdmin}
		manager = &coreuser.Actor{ID: 2, Email: "manager@tracko.local", Role: coreuser.RoleManager}
		employee = &coreuser.Actor{ID: 3, Email: "emp@tracko.local", Role: coreuser.RoleEmployee}

		seedUser(admin.ID, admin.Email, coreuser.RoleAdmin)
		seedUser(manager.ID, manager.Email, coreuser.RoleManager)
		seedUser(employee.ID, employee.Email, coreuser.RoleEmployee)

		repo.departments[10] = "Engineering"
		repo.designations[20] = "Backend Engineer"
	})

	Describe("Me", func() {
		It("resolves department and designation names", func() {
			deptID, desigID := int64(10), int64(20)
			repo.records[employee.ID].DepartmentID = &deptID
			repo.records[employee.ID].DesignationID = &desigID

			me, err := service.Me(employee)
			Expect(err).NotTo(HaveOccurred())
			Expect(me.DepartmentName).To(Equal("Engineering"))
			Expect(me.DesignationName).To(Equal("Backend Engineer"))
		})

		It("reports not found for a deleted account", func() {
			repo.records[employee.ID].IsDeleted = true

			_, err := service.Me(employee)
			Expect(err).To(Equal(user.ErrNotFound))
		})
	})

	Describe("List", func() {
		It("lets an admin list users", func() {
			result, err := service.List(admin, listing.Params{Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(3)))
		})

		It("lets a manager list users", func() {
			_, err := service.List(manager, listing.Params{Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an employee", func() {
			_, err := service.List(employee, listing.Params{Page: 1, Limit: 10})
			Expect(err).To(Equal(user.ErrNoManage))
		})
	})

	Describe("Update", func() {
		It("lets an admin change role and status", func() {
			role, status := int8(2), int8(0)
			updated, err := service.Update(admin, employee.ID, user.UpdateUserDTO{Role: &role, Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(int8(2)))
			Expect(updated.Status).To(Equal(int8(0)))
		})

		It("rejects a manager", func() {
			role := int8(2)
			_, err := service.Update(manager, employee.ID, user.UpdateUserDTO{Role: &role})
			Expect(err).To(Equal(user.ErrNoManage))
		})

		It("rejects an employee", func() {
			name := "New Name"
			_, err := service.Update(employee, employee.ID, user.UpdateUserDTO{Name: &name})
			Expect(err).To(Equal(user.ErrNoManage))
		})

		It("rejects an out-of-range role", func() {
			role := int8(7)
			_, err := service.Update(admin, employee.ID, user.UpdateUserDTO{Role: &role})
			Expect(err).To(HaveOccurred())
		})

		It("assigns an existing department", func() {
			deptID := int64(10)
			updated, err := service.Update(admin, employee.ID, user.UpdateUserDTO{DepartmentID: &deptID})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.DepartmentID).To(Equal(deptID))
		})

		It("rejects a missing department", func() {
			deptID := int64(99)
			_, err := service.Update(admin, employee.ID, user.UpdateUserDTO{DepartmentID: &deptID})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("department"))
		})

		It("rejects a missing designation", func() {
			desigID := int64(99)
			_, err := service.Update(admin, employee.ID, user.UpdateUserDTO{DesignationID: &desigID})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("designation"))
		})

		It("reports not found for a deleted user", func() {
			repo.records[employee.ID].IsDeleted = true

			name := "New Name"
			_, err := service.Update(admin, employee.ID, user.UpdateUserDTO{Name: &name})
			Expect(err).To(Equal(user.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("lets an admin soft-delete a user", func() {
			Expect(service.Delete(admin, employee.ID)).To(Succeed())
			Expect(repo.records[employee.ID].IsDeleted).To(BeTrue())
		})

		It("rejects a manager", func() {
			Expect(service.Delete(manager, employee.ID)).To(Equal(user.ErrNoManage))
		})

		It("rejects deleting your own account", func() {
			err := service.Delete(admin, admin.ID)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("own account"))
		})

		It("reports not found on double delete", func() {
			Expect(service.Delete(admin, employee.ID)).To(Succeed())
			Expect(service.Delete(admin, employee.ID)).To(Equal(user.ErrNotFound))
		})
	})
})
