package department

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/listing"
	departmentDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/department"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var (
	ErrNotFound  = internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
	ErrDuplicate = internal.NewDuplicateError("department with this name already exists", internal.ErrCodeDuplicateName)
	ErrNoCreate  = internal.NewNotAllowedError("you are not allowed to create departments", internal.ErrCodeRoleNotAllowed)
	ErrNoUpdate  = internal.NewNotAllowedError("you are not allowed to update departments", internal.ErrCodeRoleNotAllowed)
)

type Repository interface {
	List(params listing.Params) ([]*departmentDatamodel.Department, int64, error)
	GetByID(id int64) (*departmentDatamodel.Department, error)
	ActiveNameExists(name string, excludeID int64) (bool, error)
	Create(record *departmentDatamodel.Department) error
	Update(record *departmentDatamodel.Department) error
	SoftDelete(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) List(params listing.Params) (listing.Result[*Department], error) {
	records, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return listing.Result[*Department]{}, err
	}
	return listing.NewResult(FromDataModelSlice(records), total, params), nil
}

func (s *Service) GetByID(id int64) (*Department, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(actor *coreuser.Actor, dto CreateDepartmentDTO) (*Department, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("create department denied", "user_id", actor.ID, "role", actor.Role.String())
		return nil, ErrNoCreate
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ActiveNameExists(dto.Name, 0)
	if err != nil {
		s.logger.Error("department uniqueness check failed", "error", err, "name", dto.Name)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	now := time.Now()
	record := &departmentDatamodel.Department{
		Name:        dto.Name,
		Description: dto.Description,
		Status:      1,
		AddedBy:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("department created", "department_id", record.ID, "name", record.Name, "added_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Update(actor *coreuser.Actor, id int64, dto UpdateDepartmentDTO) (*Department, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("update department denied", "user_id", actor.ID, "role", actor.Role.String())
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
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return nil, err
	}

	s.logger.Info("department updated", "department_id", id, "updated_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(actor *coreuser.Actor, id int64) error {
	deleted, err := s.repo.SoftDelete(id)
	if err != nil {
		s.logger.Error("failed to delete department", "error", err, "department_id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("department deleted", "department_id", id, "deleted_by", actor.ID)
	return nil
}
