package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
)

type stubTaskService struct {
	tasks     []domain.Task
	created   *ports.CreateTaskInput
	patchedID string
	patch     domain.TaskPatch
	updateErr error
	deleted   []string
}

func (s *stubTaskService) List(context.Context) ([]domain.Task, error) { return s.tasks, nil }

func (s *stubTaskService) Create(_ context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	s.created = &in
	return &domain.Task{ID: "t-new", Title: in.Title, Type: in.Type, Priority: in.Priority}, nil
}

func (s *stubTaskService) Update(_ context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	s.patchedID, s.patch = id, patch
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	t := domain.Task{ID: id, Title: "x", Type: domain.TaskClass, Priority: domain.PriorityLow}
	patch.Apply(&t)
	return &t, nil
}

func (s *stubTaskService) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestTaskHandler_List_FiltersByType(t *testing.T) {
	e := newTestEcho()
	svc := &stubTaskService{tasks: []domain.Task{
		{ID: "1", Type: domain.TaskAssignment},
		{ID: "2", Type: domain.TaskTest},
		{ID: "3", Type: domain.TaskAssignment},
	}}
	h := NewTaskHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/tasks?type=assignment", nil), rec)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got []domain.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestTaskHandler_Create(t *testing.T) {
	e := newTestEcho()
	svc := &stubTaskService{}
	h := NewTaskHandler(svc)

	body := `{"title":"Read ch. 4","task_type":"class","priority":"high","due_date":"2026-11-01T09:00:00Z"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/tasks", body), rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created == nil || svc.created.Type != domain.TaskClass || svc.created.DueDate == nil {
		t.Fatalf("unexpected input: %+v", svc.created)
	}
}

func TestTaskHandler_Create_RejectsUnknownType(t *testing.T) {
	e := newTestEcho()
	svc := &stubTaskService{}
	h := NewTaskHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/tasks", `{"title":"x","task_type":"exam","priority":"low"}`), rec)
	if code := statusOf(t, e, c, rec, h.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if svc.created != nil {
		t.Fatal("service should not be called")
	}
}

func TestTaskHandler_Update_OnlyGivenFields(t *testing.T) {
	e := newTestEcho()
	svc := &stubTaskService{}
	h := NewTaskHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, "/v1/tasks/t1", `{"is_done":true}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.patchedID != "t1" {
		t.Fatalf("wrong id: %q", svc.patchedID)
	}
	if svc.patch.IsDone == nil || !*svc.patch.IsDone {
		t.Fatal("is_done not forwarded")
	}
	if svc.patch.Title != nil || svc.patch.Type != nil || svc.patch.Priority != nil {
		t.Fatalf("unexpected fields in patch: %+v", svc.patch)
	}
}

func TestTaskHandler_Update_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	h := NewTaskHandler(&stubTaskService{updateErr: domain.ErrTaskNotFound})

	c := e.NewContext(jsonRequest(http.MethodPatch, "/v1/tasks/nope", `{"title":"y"}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := h.Update(c); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	e := newTestEcho()
	svc := &stubTaskService{}
	h := NewTaskHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/tasks/t9", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("t9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || len(svc.deleted) != 1 || svc.deleted[0] != "t9" {
		t.Fatalf("unexpected result: %d %v", rec.Code, svc.deleted)
	}
}
