package service

import (
	"context"
	"strings"

	"studyaid/internal/model"
)

func (s *Service) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	ctx, span, err := s.start(ctx, "ListReminders", s.latency.List)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.ListReminders(ctx)
}

func (s *Service) CreateReminder(ctx context.Context, in model.ReminderInput) (*model.Reminder, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title is required")
	}
	if in.DueDate.IsZero() {
		return nil, invalid("dueDate is required")
	}
	ctx, span, err := s.start(ctx, "CreateReminder", s.latency.Write)
	defer span.End()
	if err != nil {
		return nil, err
	}
	return s.repo.CreateReminder(ctx, model.Reminder{
		OwnerID:     s.ownerID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		CreatedAt:   s.clock.Now(),
	})
}

// UpdateReminder merges the fields set in patch. An empty patch returns the reminder unchanged.
func (s *Service) UpdateReminder(ctx context.Context, id int64, patch model.ReminderPatch) (*model.Reminder, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, invalid("title must not be empty")
	}
	if patch.DueDate != nil && patch.DueDate.IsZero() {
		return nil, invalid("dueDate must not be zero")
	}
	ctx, span, err := s.start(ctx, "UpdateReminder", s.latency.Write)
	defer span.End()
	if err != nil {
		return nil, err
	}
	r, err := s.repo.UpdateReminder(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, "reminder", id)
	}
	return r, nil
}

func (s *Service) DeleteReminder(ctx context.Context, id int64) error {
	ctx, span, err := s.start(ctx, "DeleteReminder", s.latency.Delete)
	defer span.End()
	if err != nil {
		return err
	}
	return s.repo.DeleteReminder(ctx, id)
}
