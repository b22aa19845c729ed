package designation

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/listing"
	designationDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/designation"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var (
	ErrNotFound          = internal.NewNotFoundError("designation not found", internal.ErrCodeDesignationNotFound)
	ErrDuplicate         = internal.NewDuplicateError("designation with this name already exists", internal.ErrCodeDuplicateName)
	ErrNoCreate          = internal.NewNotAllowedError("you are not allowed to create designations", internal.ErrCodeRoleNotAllowed)
	ErrNoUpdate          = internal.NewNotAllowedError("you are not allowed to update designations", internal.ErrCodeRoleNotAllowed)
	ErrDepartmentMissing = internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
)

type Repository interface {
	List(params listing.Params) ([]*designationDatamodel.Designation, int64, error)
	GetByID(id int64) (*designationDatamodel.Designation, error)
	ActiveNameExists(name string, excludeID int64) (bool, error)
	Create(record *designationDatamodel.Designation) error
	Update(record *designationDatamodel.Designation) error
	SoftDelete(id int64) (bool, error)
}

// DepartmentChecker resolves the foreign key without coupling this package to
// the department feature.
type DepartmentChecker interface {
	ActiveDepartmentExists(id int64) (bool, error)
}

type Service struct {
	repo        Repository
	departments DepartmentChecker
	logger      *slog.Logger
}

func NewService(repo Repository, departments DepartmentChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		logger:      logger,
	}
}

func (s *Service) List(params listing.Params) (listing.Result[*Designation], error) {
	records, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list designations", "error", err)
		return listing.Result[*Designation]{}, err
	}
	return listing.NewResult(FromDataModelSlice(records), total, params), nil
}

func (s *Service) GetByID(id int64) (*Designation, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(actor *coreuser.Actor, dto CreateDesignationDTO) (*Designation, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("create designation denied", "user_id", actor.ID, "role", actor.Role.String())
		return nil, ErrNoCreate
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkDepartment(dto.DepartmentID); err != nil {
		return nil, err
	}

	exists, err := s.repo.ActiveNameExists(dto.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	now := time.Now()
	record := &designationDatamodel.Designation{
		Name:         dto.Name,
		Description:  dto.Description,
		DepartmentID: dto.DepartmentID,
		Status:       1,
		AddedBy:      actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create designation", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("designation created",
		"designation_id", record.ID,
		"name", record.Name,
		"department_id", record.DepartmentID,
		"added_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Update(actor *coreuser.Actor, id int64, dto UpdateDesignationDTO) (*Designation, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("update designation denied", "user_id", actor.ID, "role", actor.Role.String())
		return nil, ErrNoUpdate
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	if dto.DepartmentID != nil && *dto.DepartmentID != record.DepartmentID {
		if err := s.checkDepartment(*dto.DepartmentID); err != nil {
			return nil, err
		}
		record.DepartmentID = *dto.DepartmentID
	}

	if dto.Name != nil && *dto.Name != record.Name {
		exists, err := s.repo.ActiveNameExists(*dto.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicate
		}
		record.Name = *dto.Name
	}
	if dto.Description != nil {
		record.Description = *dto.Description
	}
	if dto.Status != nil {
		record.Status = *dto.Status
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update designation", "error", err, "designation_id", id)
		return nil, err
	}

	s.logger.Info("designation updated", "designation_id", id, "updated_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(actor *coreuser.Actor, id int64) error {
	deleted, err := s.repo.SoftDelete(id)
	if err != nil {
		s.logger.Error("failed to delete designation", "error", err, "designation_id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("designation deleted", "designation_id", id, "deleted_by", actor.ID)
	return nil
}

func (s *Service) checkDepartment(departmentID int64) error {
	ok, err := s.departments.ActiveDepartmentExists(departmentID)
	if err != nil {
		s.logger.Error("department lookup failed", "error", err, "department_id", departmentID)
		return err
	}
	if !ok {
		return ErrDepartmentMissing
	}
	return nil
}
