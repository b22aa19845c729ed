package user

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/listing"
	userDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var (
	ErrNotFound = internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
	ErrNoManage = internal.NewNotAllowedError("you are not allowed to manage users", internal.ErrCodeRoleNotAllowed)
)

// Profile is a user with resolved department and designation names.
type Profile struct {
	User            *userDatamodel.User
	DepartmentName  string
	DesignationName string
}

type Repository interface {
	List(params listing.Params) ([]*userDatamodel.User, int64, error)
	GetByID(id int64) (*userDatamodel.User, error)
	GetProfile(id int64) (*Profile, error)
	Update(record *userDatamodel.User) error
	SoftDelete(id int64) (bool, error)
	ActiveDepartmentExists(id int64) (bool, error)
	ActiveDesignationExists(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Me(actor *coreuser.Actor) (*User, error) {
	profile, err := s.repo.GetProfile(actor.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	result := FromDataModel(profile.User)
	result.DepartmentName = profile.DepartmentName
	result.DesignationName = profile.DesignationName
	return result, nil
}

func (s *Service) List(actor *coreuser.Actor, params listing.Params) (listing.Result[*User], error) {
	if !actor.Role.CanViewAllUsers() {
		return listing.Result[*User]{}, ErrNoManage
	}

	records, total, err := s.repo.List(params)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return listing.Result[*User]{}, err
	}
	return listing.NewResult(FromDataModelSlice(records), total, params), nil
}

// Update applies role, status, and profile changes. Admin only; managers can
// view users but not change them.
func (s *Service) Update(actor *coreuser.Actor, id int64, dto UpdateUserDTO) (*User, error) {
	if actor.Role != coreuser.RoleAdmin && actor.Role != coreuser.RoleSuperAdmin {
		s.logger.Warn("update user denied", "user_id", actor.ID, "role", actor.Role.String())
		return nil, ErrNoManage
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

	if dto.DepartmentID != nil {
		ok, err := s.repo.ActiveDepartmentExists(*dto.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, internal.NewNotFoundError("department not found", internal.ErrCodeDepartmentNotFound)
		}
		record.DepartmentID = dto.DepartmentID
	}
	if dto.DesignationID != nil {
		ok, err := s.repo.ActiveDesignationExists(*dto.DesignationID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, internal.NewNotFoundError("designation not found", internal.ErrCodeDesignationNotFound)
		}
		record.DesignationID = dto.DesignationID
	}

	if dto.Name != nil {
		record.Name = *dto.Name
	}
	if dto.Role != nil {
		record.Role = *dto.Role
	}
	if dto.Status != nil {
		record.Status = *dto.Status
	}
	if dto.PhoneNumber != nil {
		record.PhoneNumber = *dto.PhoneNumber
	}
	if dto.CountryCode != nil {
		record.CountryCode = *dto.CountryCode
	}
	if dto.ProfileImage != nil {
		record.ProfileImage = *dto.ProfileImage
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update user", "error", err, "target_user_id", id)
		return nil, err
	}

	s.logger.Info("user updated", "target_user_id", id, "updated_by", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(actor *coreuser.Actor, id int64) error {
	if actor.Role != coreuser.RoleAdmin && actor.Role != coreuser.RoleSuperAdmin {
		s.logger.Warn("delete user denied", "user_id", actor.ID, "role", actor.Role.String())
		return ErrNoManage
	}
	if id == actor.ID {
		return internal.NewValidationError("cannot delete your own account", internal.ErrCodeValidationFailed)
	}

	deleted, err := s.repo.SoftDelete(id)
	if err != nil {
		s.logger.Error("failed to delete user", "error", err, "target_user_id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("user deleted", "target_user_id", id, "deleted_by", actor.ID)
	return nil
}
