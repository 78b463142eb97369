package service

import (
	"context"

	"github.com/anhtong/guild-api/internal/model"
)

// ScheduleRepository defines the interface for scheduled notification storage
type ScheduleRepository interface {
	Create(ctx context.Context, n *model.ScheduledNotification) error
	GetByID(ctx context.Context, id string) (*model.ScheduledNotification, error)
	List(ctx context.Context) ([]*model.ScheduledNotification, error)
	ListByRegion(ctx context.Context, region model.Region) ([]*model.ScheduledNotification, error)
	Update(ctx context.Context, n *model.ScheduledNotification) error
	Delete(ctx context.Context, id string) error
}

// ScheduleService handles scheduled notification configuration for the
// external Discord notifier.
type ScheduleService struct {
	schedules ScheduleRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(schedules ScheduleRepository) *ScheduleService {
	return &ScheduleService{schedules: schedules}
}

// Create stores a new scheduled notification. Enabled defaults to true.
func (s *ScheduleService) Create(ctx context.Context, req *model.CreateScheduleRequest) (*model.ScheduledNotification, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	n := &model.ScheduledNotification{
		Title:         req.Title,
		Days:          req.Days,
		Region:        req.Region,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		MinutesBefore: req.MinutesBefore,
		RoleMention:   req.RoleMention,
		ChannelID:     req.ChannelID,
		Enabled:       enabled,
	}
	if err := s.schedules.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List retrieves all scheduled notifications.
func (s *ScheduleService) List(ctx context.Context) ([]*model.ScheduledNotification, error) {
	return s.schedules.List(ctx)
}

// ListByRegion retrieves a region's scheduled notifications. This is the
// endpoint the notifier polls.
func (s *ScheduleService) ListByRegion(ctx context.Context, region model.Region) ([]*model.ScheduledNotification, error) {
	if !region.Valid() {
		return nil, ErrInvalidRegion
	}
	return s.schedules.ListByRegion(ctx, region)
}

// Update applies a sparse patch to a scheduled notification.
func (s *ScheduleService) Update(ctx context.Context, id string, req *model.UpdateScheduleRequest) (*model.ScheduledNotification, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	n, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrScheduleNotFound
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Days != nil {
		n.Days = req.Days
	}
	if req.Region != nil {
		n.Region = *req.Region
	}
	if req.StartTime != nil {
		n.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		n.EndTime = *req.EndTime
	}
	if req.MinutesBefore != nil {
		n.MinutesBefore = *req.MinutesBefore
	}
	if req.RoleMention != nil {
		n.RoleMention = req.RoleMention
	}
	if req.ChannelID != nil {
		n.ChannelID = *req.ChannelID
	}
	if req.Enabled != nil {
		n.Enabled = *req.Enabled
	}

	if err := s.schedules.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes a scheduled notification.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	n, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrScheduleNotFound
	}
	return s.schedules.Delete(ctx, n.ID)
}
