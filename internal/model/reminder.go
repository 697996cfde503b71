package model

import "time"

// Reminder is a user-created task with a due date.
type Reminder struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReminderInput carries the fields a caller supplies when creating a reminder.
type ReminderInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
}

// ReminderPatch lists the fields an update may change.
// A nil field is left untouched.
type ReminderPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p ReminderPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil && p.Completed == nil
}

// Apply merges the set fields of p into r.
func (p ReminderPatch) Apply(r *Reminder) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.DueDate != nil {
		r.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
}

// Pending reports whether r is still open and due after now.
func (r Reminder) Pending(now time.Time) bool {
	return !r.Completed && r.DueDate.After(now)
}
