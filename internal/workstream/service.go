package workstream

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/listing"
	workstreamDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/workstream"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var (
	ErrNotFound  = internal.NewNotFoundError("workstream not found", internal.ErrCodeWorkstreamNotFound)
	ErrDuplicate = internal.NewDuplicateError("workstream with this name already exists", internal.ErrCodeDuplicateName)
	ErrNoCreate  = internal.NewNotAllowedError("you are not allowed to create workstreams", internal.ErrCodeRoleNotAllowed)
	ErrNoUpdate  = internal.NewNotAllowedError("you are not allowed to update workstreams", internal.ErrCodeRoleNotAllowed)
)

type Repository interface {
	List(params listing.Params) ([]*workstreamDatamodel.Workstream, int64, error)
	GetByID(id int64) (*workstreamDatamodel.Workstream, error)
	ActiveNameExists(name string, excludeID int64) (bool, error)
	Create(record *workstreamDatamodel.Workstream) error
	Update(record *workstreamDatamodel.Workstream) error
	SoftDelete(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(params listing.Params) (listing.Result[*Workstream], error) {
	records, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list workstreams", "error", err)
		return listing.Result[*Workstream]{}, err
	}
	return listing.NewResult(FromDataModelSlice(records), total, params), nil
}

func (s *Service) GetByID(id int64) (*Workstream, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(actor *coreuser.Actor, dto CreateWorkstreamDTO) (*Workstream, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("create workstream denied", "user_id", actor.ID, "role", actor.Role.String())
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

	now := time.Now()
	record := &workstreamDatamodel.Workstream{
		Name:        dto.Name,
		Description: dto.Description,
		Status:      1,
		AddedBy:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create workstream", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("workstream created", "workstream_id", record.ID, "name", record.Name, "added_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Update(actor *coreuser.Actor, id int64, dto UpdateWorkstreamDTO) (*Workstream, error) {
	if !actor.Role.CanManageEntities() {
		s.logger.Warn("update workstream denied", "user_id", actor.ID, "role", actor.Role.String())
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
		s.logger.Error("failed to update workstream", "error", err, "workstream_id", id)
		return nil, err
	}

	s.logger.Info("workstream updated", "workstream_id", id, "updated_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(actor *coreuser.Actor, id int64) error {
	deleted, err := s.repo.SoftDelete(id)
	if err != nil {
		s.logger.Error("failed to delete workstream", "error", err, "workstream_id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("workstream deleted", "workstream_id", id, "deleted_by", actor.ID)
	return nil
}
