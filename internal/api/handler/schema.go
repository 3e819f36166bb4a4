package handler

import (
	"time"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	FullName   string `json:"full_name"  validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
	School     string `json:"school"     validate:"required"`
	Department string `json:"department" validate:"required"`
	Level      string `json:"level"      validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"access_token,omitempty"`
	User  *domain.User `json:"user"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	Type        string     `json:"task_type"   validate:"required,oneof=assignment test class"`
	Priority    string     `json:"priority"    validate:"required,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Type        *string    `json:"task_type"   validate:"omitempty,oneof=assignment test class"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	IsDone      *bool      `json:"is_done"`
}

func (r updateTaskRequest) toPatch() domain.TaskPatch {
	p := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsDone:      r.IsDone,
	}
	if r.Type != nil {
		t := domain.TaskType(*r.Type)
		p.Type = &t
	}
	if r.Priority != nil {
		pr := domain.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}

// --- Opportunities ---

type bookmarksResponse struct {
	OpportunityIDs []string `json:"opportunity_ids"`
}
