package usertask

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/tracko/internal"
	"github.com/frahmantamala/tracko/internal/core/common/listing"
	usertaskDatamodel "github.com/frahmantamala/tracko/internal/core/datamodel/usertask"
	"github.com/frahmantamala/tracko/internal/core/events"
	coreuser "github.com/frahmantamala/tracko/internal/core/user"
)

var (
	ErrNotFound      = internal.NewNotFoundError("task not found", internal.ErrCodeTaskNotFound)
	ErrNotOwner      = internal.NewNotAllowedError("you are not allowed to access this task", internal.ErrCodeNotTaskOwner)
	ErrTaskFinalized = internal.NewStateConflictError("cannot modify after final submission", internal.ErrCodeTaskFinalized)
	ErrNoTasksToLock = internal.NewStateConflictError("no tasks found to submit", internal.ErrCodeNoTasksToLock)
)

type Repository interface {
	List(params listing.Params, filter ListFilter) ([]*usertaskDatamodel.UserTask, int64, error)
	GetByID(id int64) (*usertaskDatamodel.UserTask, error)
	Create(record *usertaskDatamodel.UserTask) error
	Update(record *usertaskDatamodel.UserTask) error
	SoftDelete(id int64) (bool, error)
	LockDrafts(userID int64, startDate, endDate *time.Time) (int64, error)
}

// ReferenceChecker validates the project and workstream foreign keys against
// non-deleted rows.
type ReferenceChecker interface {
	ActiveProjectExists(id int64) (bool, error)
	ActiveWorkstreamExists(id int64) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo     Repository
	refs     ReferenceChecker
	eventBus EventPublisher
	logger   *slog.Logger
}

func NewService(repo Repository, refs ReferenceChecker, eventBus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		refs:     refs,
		eventBus: eventBus,
		logger:   logger,
	}
}

// List returns the actor's own tasks; admins and managers see everyone's
// and may narrow the result to a single user.
func (s *Service) List(actor *coreuser.Actor, params listing.Params, filter ListFilter) (listing.Result[*UserTask], error) {
	if !actor.Role.CanViewAllUsers() {
		own := actor.ID
		filter.UserID = &own
	}

	records, total, err := s.repo.List(params, filter)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", actor.ID)
		return listing.Result[*UserTask]{}, err
	}
	return listing.NewResult(FromDataModelSlice(records), total, params), nil
}

func (s *Service) GetByID(actor *coreuser.Actor, id int64) (*UserTask, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	if record.UserID != actor.ID && !actor.Role.CanViewAllUsers() {
		return nil, ErrNotOwner
	}
	return FromDataModel(record), nil
}

func (s *Service) Create(actor *coreuser.Actor, dto CreateUserTaskDTO) (*UserTask, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(dto.ProjectID, dto.WorkstreamID); err != nil {
		return nil, err
	}

	date, err := dto.ParsedDate()
	if err != nil {
		return nil, internal.NewValidationError("invalid task date", internal.ErrCodeInvalidDate)
	}

	now := time.Now()
	record := &usertaskDatamodel.UserTask{
		UserID:          actor.ID,
		ProjectID:       dto.ProjectID,
		WorkstreamID:    dto.WorkstreamID,
		TaskDescription: dto.TaskDescription,
		Date:            date,
		SpendHours:      dto.SpendHours,
		FinalSubmit:     false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", actor.ID)
		return nil, err
	}

	s.logger.Info("task created",
		"task_id", record.ID,
		"user_id", actor.ID,
		"project_id", record.ProjectID)
	return FromDataModel(record), nil
}

func (s *Service) Update(actor *coreuser.Actor, id int64, dto UpdateUserTaskDTO) (*UserTask, error) {
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
	if record.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	if record.FinalSubmit {
		return nil, ErrTaskFinalized
	}

	projectID := record.ProjectID
	workstreamID := record.WorkstreamID
	if dto.ProjectID != nil {
		projectID = *dto.ProjectID
	}
	if dto.WorkstreamID != nil {
		workstreamID = *dto.WorkstreamID
	}
	if projectID != record.ProjectID || workstreamID != record.WorkstreamID {
		if err := s.checkReferences(projectID, workstreamID); err != nil {
			return nil, err
		}
	}
	record.ProjectID = projectID
	record.WorkstreamID = workstreamID

	if dto.TaskDescription != nil {
		record.TaskDescription = *dto.TaskDescription
	}
	if dto.Date != nil {
		date, err := time.Parse(DateLayout, *dto.Date)
		if err != nil {
			return nil, internal.NewValidationError("invalid task date", internal.ErrCodeInvalidDate)
		}
		if date.After(time.Now()) {
			return nil, internal.NewValidationFieldError("date", "date cannot be in the future", internal.ErrCodeInvalidDate)
		}
		record.Date = date
	}
	if dto.SpendHours != nil {
		record.SpendHours = *dto.SpendHours
	}
	record.UpdatedAt = time.Now()

	if err := s.repo.Update(record); err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", id)
		return nil, err
	}

	s.logger.Info("task updated", "task_id", id, "user_id", actor.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(actor *coreuser.Actor, id int64) error {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrNotFound
	}
	if record.UserID != actor.ID {
		return ErrNotOwner
	}
	if record.FinalSubmit {
		return ErrTaskFinalized
	}

	deleted, err := s.repo.SoftDelete(id)
	if err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("task deleted", "task_id", id, "user_id", actor.ID)
	return nil
}

// FinalSubmit flips every matching draft to submitted in one bulk update.
// The flip is terminal; locked tasks reject all further modification.
func (s *Service) FinalSubmit(ctx context.Context, actor *coreuser.Actor, dto FinalSubmitDTO) (*FinalSubmitResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	startDate, endDate, err := dto.Window()
	if err != nil {
		return nil, internal.NewValidationError("invalid submission window", internal.ErrCodeInvalidDate)
	}

	count, err := s.repo.LockDrafts(actor.ID, startDate, endDate)
	if err != nil {
		s.logger.Error("failed to final-submit tasks", "error", err, "user_id", actor.ID)
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoTasksToLock
	}

	if err := s.eventBus.Publish(ctx, events.NewTaskFinalSubmitEvent(actor.ID, count, startDate, endDate)); err != nil {
		s.logger.Warn("failed to publish final-submit event", "error", err, "user_id", actor.ID)
	}

	s.logger.Info("tasks final-submitted", "user_id", actor.ID, "locked_count", count)
	return &FinalSubmitResult{SubmittedCount: count}, nil
}

func (s *Service) checkReferences(projectID, workstreamID int64) error {
	ok, err := s.refs.ActiveProjectExists(projectID)
	if err != nil {
		return err
	}
	if !ok {
		return internal.NewNotFoundError("project not found", internal.ErrCodeProjectNotFound)
	}

	ok, err = s.refs.ActiveWorkstreamExists(workstreamID)
	if err != nil {
		return err
	}
	if !ok {
		return internal.NewNotFoundError("workstream not found", internal.ErrCodeWorkstreamNotFound)
	}
	return nil
}
