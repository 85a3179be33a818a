package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is one of the enumerated values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// IsValid reports whether the priority is one of the enumerated values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string       `gorm:"not null"`
	Description string
	Status      TaskStatus   `gorm:"type:varchar(16);not null;default:'pending'"`
	Priority    TaskPriority `gorm:"type:varchar(8);not null;default:'medium'"`
	DueDate     *time.Time
	OwnerID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_owner_created,priority:1"`
	CreatedAt   time.Time    `gorm:"index:idx_tasks_owner_created,priority:2,sort:desc"`
	UpdatedAt   time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}
