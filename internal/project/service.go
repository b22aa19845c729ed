package project

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/listing"
	projectDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/project"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var (
	ErrNotFound  = internal.NewNotFoundError("project not found", internal.ErrCodeProjectNotFound)
	ErrDuplicate = internal.NewDuplicateError("project with this name already exists", internal.ErrCodeDuplicateName)
	ErrNoCreate  = internal.NewNotAllowedError("you are not allowed to create projects", internal.ErrCodeRoleNotAllowed)
	ErrNoUpdate  = internal.NewNotAllowedError("you are not allowed to update projects", internal.ErrCodeRoleNotAllowed)
)

type Repository interface {
	List(params listing.Params) ([]*projectDatamodel.Project, int64, error)
	GetByID(id int64) (*projectDatamodel.Project, error)
	ActiveNameExists(name string, excludeID int64) (bool, error)
	Create(record *projectDatamodel.Project) error
	Update(record *projectDatamodel.Project) error
	SoftDelete(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(params listing.Params) (listing.Result[*Project], error) {
	records, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return listing.Result[*Project]{}, err
	}
	return listing.NewResult(FromDataModelSlice(records), total, params), nil
}

func (s *Service) GetByID(id int64) (*Project, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(actor *coreuser.Actor, dto CreateProjectDTO) (*Project, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("create project denied", "user_id", actor.ID, "role", actor.Role.String())
		return nil, ErrNoCreate
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ActiveNameExists(dto.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	startDate, endDate, err := dto.Dates()
	if err != nil {
		return nil, internal.NewValidationError("invalid project dates", internal.ErrCodeInvalidDate)
	}

	now := time.Now()
	record := &projectDatamodel.Project{
		Name:        dto.Name,
		Description: dto.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      1,
		AddedBy:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create project", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", record.ID,
		"name", record.Name,
		"added_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Update(actor *coreuser.Actor, id int64, dto UpdateProjectDTO) (*Project, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("update project denied", "user_id", actor.ID, "role", actor.Role.String())
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
	if dto.StartDate != nil {
		start, err := time.Parse(DateLayout, *dto.StartDate)
		if err != nil {
			return nil, internal.NewValidationError("invalid startDate", internal.ErrCodeInvalidDate)
		}
		record.StartDate = start
	}
	if dto.EndDate != nil {
		if *dto.EndDate == "" {
			record.EndDate = nil
		} else {
			end, err := time.Parse(DateLayout, *dto.EndDate)
			if err != nil {
				return nil, internal.NewValidationError("invalid endDate", internal.ErrCodeInvalidDate)
			}
			record.EndDate = &end
		}
	}
	if record.EndDate != nil && record.EndDate.Before(record.StartDate) {
		return nil, internal.NewValidationError("endDate must not be before startDate", internal.ErrCodeInvalidDate)
	}
	if dto.Status != nil {
		record.Status = *dto.Status
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update project", "error", err, "project_id", id)
		return nil, err
	}

	s.logger.Info("project updated", "project_id", id, "updated_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(actor *coreuser.Actor, id int64) error {
	deleted, err := s.repo.SoftDelete(id)
	if err != nil {
		s.logger.Error("failed to delete project", "error", err, "project_id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("project deleted", "project_id", id, "deleted_by", actor.ID)
	return nil
}
