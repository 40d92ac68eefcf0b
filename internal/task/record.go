// Package task defines the task record model and its ingestion-boundary
// validation. Records are created here, stored by internal/store, and
// consumed read-only by internal/analytics.
package task

import (
	"fmt"
	"time"
)

// DayFormat is the canonical calendar-day layout used everywhere a task
// date appears. All grouping in the analytics engine is string equality
// on keys in this format.
const DayFormat = "2006-01-02"

// Priority levels for a task. Priorities are display-only; the analytics
// engine ignores them.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// DefaultCategory is substituted for an empty or missing category.
const DefaultCategory = "Other"

// Record is a single logged task. ActualMinutes is meaningful only when
// IsCompleted is true and is stored as 0 otherwise.
type Record struct {
	// ID is an opaque unique identifier (UUID).
	ID string `json:"id"`

	// UserID is the owner. A snapshot handed to the analytics engine is
	// always scoped to one user; the engine never filters on this.
	UserID string `json:"user_id"`

	// Activity is the short human label for the task.
	Activity string `json:"activity"`

	// TaskDate is the calendar day in DayFormat, local calendar, no time
	// component. Immutable once set.
	TaskDate string `json:"task_date"`

	// PlannedMinutes is the time budgeted for the task.
	PlannedMinutes int `json:"planned_minutes"`

	// ActualMinutes is the time actually spent, 0 until completion.
	ActualMinutes int `json:"actual_minutes"`

	// IsCompleted reports whether the task was finished.
	IsCompleted bool `json:"is_completed"`

	// Category is a free-form label, normalized to DefaultCategory when empty.
	Category string `json:"category"`

	// Priority is one of PriorityHigh, PriorityMedium, PriorityLow.
	Priority string `json:"priority"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the RFC3339 creation timestamp, used only for
	// recent-entries ordering.
	CreatedAt string `json:"created_at"`
}

// Normalize applies the engine's defaulting rules in place: empty category
// becomes DefaultCategory, negative minutes become 0, an empty priority
// becomes Medium, and actual minutes are zeroed for incomplete tasks.
func (r *Record) Normalize() {
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}
	if r.PlannedMinutes < 0 {
		r.PlannedMinutes = 0
	}
	if r.ActualMinutes < 0 {
		r.ActualMinutes = 0
	}
	if !r.IsCompleted {
		r.ActualMinutes = 0
	}
}

// Validate checks the structural invariants a record must satisfy before it
// may enter a snapshot. A missing or unparseable TaskDate is a malformed
// record; it is rejected here, at the ingestion boundary, so the analytics
// engine can assume pre-validated input and skip per-call re-validation.
func (r *Record) Validate() error {
	if r.TaskDate == "" {
		return fmt.Errorf("malformed record %s: missing task date", r.ID)
	}
	if _, err := time.ParseInLocation(DayFormat, r.TaskDate, time.Local); err != nil {
		return fmt.Errorf("malformed record %s: task date %q is not a calendar date", r.ID, r.TaskDate)
	}
	if r.PlannedMinutes < 0 || r.ActualMinutes < 0 {
		return fmt.Errorf("malformed record %s: negative minutes", r.ID)
	}
	return nil
}

// CreatedTime parses CreatedAt, returning the zero time on failure.
func (r *Record) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
