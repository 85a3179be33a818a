package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

// TaskInput carries the client-supplied fields of a task. The due date comes
// in as a string so that both date-only and full timestamp forms are accepted.
type TaskInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated rule so the client can show all
// problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type TaskService struct {
	repo repository.TaskRepositoryInterface
}

func NewTaskService(repo repository.TaskRepositoryInterface) *TaskService {
	return &TaskService{repo: repo}
}

const dueDateLayout = "2006-01-02"

// validate applies the same rules to create and update
func validate(in TaskInput) (*time.Time, *ValidationError) {
	var fields []FieldError

	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "Title is required"})
	}
	if !model.TaskPriority(in.Priority).IsValid() {
		fields = append(fields, FieldError{Field: "priority", Message: "Invalid priority level"})
	}
	if !model.TaskStatus(in.Status).IsValid() {
		fields = append(fields, FieldError{Field: "status", Message: "Invalid status"})
	}

	var dueDate *time.Time
	if in.DueDate != nil && *in.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, *in.DueDate)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, *in.DueDate)
		}
		if err != nil {
			fields = append(fields, FieldError{Field: "dueDate", Message: "Invalid due date"})
		} else {
			dueDate = &parsed
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return dueDate, nil
}

// List returns all tasks owned by uid, newest first
func (s *TaskService) List(ctx context.Context, uid uuid.UUID) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, uid)
}

// Get returns the task only if it exists and belongs to uid
func (s *TaskService) Get(ctx context.Context, uid, id uuid.UUID) (*model.Task, error) {
	return s.repo.GetByOwner(ctx, id, uid)
}

// Create validates the input and persists a new task owned by uid
func (s *TaskService) Create(ctx context.Context, uid uuid.UUID, in TaskInput) (*model.Task, error) {
	dueDate, verr := validate(in)
	if verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      model.TaskStatus(in.Status),
		Priority:    model.TaskPriority(in.Priority),
		DueDate:     dueDate,
		OwnerID:     uid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update validates the input and replaces the mutable fields of the task.
// ID, owner and creation time are never touched; updatedAt always advances.
func (s *TaskService) Update(ctx context.Context, uid, id uuid.UUID, in TaskInput) (*model.Task, error) {
	dueDate, verr := validate(in)
	if verr != nil {
		return nil, verr
	}

	task, err := s.repo.GetByOwner(ctx, id, uid)
	if err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.Status = model.TaskStatus(in.Status)
	task.Priority = model.TaskPriority(in.Priority)
	task.DueDate = dueDate
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task matching id and uid
func (s *TaskService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, uid)
}
