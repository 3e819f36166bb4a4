package domain

import "time"

// TaskType classifies a planner entry.
type TaskType string

const (
	TaskAssignment TaskType = "assignment"
	TaskTest       TaskType = "test"
	TaskClass      TaskType = "class"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskAssignment, TaskTest, TaskClass:
		return true
	}
	return false
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is an entry in the academic planner.
type Task struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Type        TaskType   `json:"task_type" bson:"task_type"`
	Priority    Priority   `json:"priority" bson:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	IsDone      bool       `json:"is_done" bson:"is_done"`
}

// TaskPatch carries the fields of a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Type        *TaskType
	Priority    *Priority
	DueDate     *time.Time
	IsDone      *bool
}

// Validate checks the enumerated fields that are present in the patch.
func (p TaskPatch) Validate() error {
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidTask
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidTask
	}
	return nil
}

// Apply merges the patch into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.IsDone != nil {
		t.IsDone = *p.IsDone
	}
}

// FilterTasksByType returns the tasks of the given type, preserving order.
// An empty type returns the input unchanged.
func FilterTasksByType(tasks []Task, t TaskType) []Task {
	if t == "" {
		return tasks
	}
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Type == t {
			out = append(out, task)
		}
	}
	return out
}
