package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCredential_User_DropsPassword(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	cred := Credential{
		ID:           "42",
		FullName:     "Ada Obi",
		Email:        "ada@student.com",
		School:       "UNILAG",
		Department:   "Physics",
		Level:        "200 Level",
		CreatedAt:    &now,
		PasswordHash: "$2a$10$secret",
	}

	u := cred.User()
	if u.ID != cred.ID || u.Email != cred.Email || u.FullName != cred.FullName || u.Level != cred.Level {
		t.Fatalf("projection lost fields: %+v", u)
	}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "password") || strings.Contains(string(raw), "secret") {
		t.Fatalf("public user leaks password: %s", raw)
	}
}

func TestFilterTasksByType(t *testing.T) {
	tasks := []Task{
		{ID: "1", Type: TaskAssignment},
		{ID: "2", Type: TaskTest},
		{ID: "3", Type: TaskAssignment},
	}

	got := FilterTasksByType(tasks, TaskAssignment)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if all := FilterTasksByType(tasks, ""); len(all) != 3 {
		t.Fatalf("empty type should return all, got %d", len(all))
	}
}

func TestTaskPatch_ApplyOnlySetFields(t *testing.T) {
	task := Task{ID: "1", Title: "Read", Type: TaskClass, Priority: PriorityLow}
	done := true
	TaskPatch{IsDone: &done}.Apply(&task)

	if !task.IsDone {
		t.Fatalf("expected is_done to flip")
	}
	if task.Title != "Read" || task.Type != TaskClass || task.Priority != PriorityLow {
		t.Fatalf("untouched fields changed: %+v", task)
	}
}

func TestTaskPatch_Validate(t *testing.T) {
	bad := TaskType("exam")
	if err := (TaskPatch{Type: &bad}).Validate(); err != ErrInvalidTask {
		t.Fatalf("expected ErrInvalidTask, got %v", err)
	}
	high := PriorityHigh
	if err := (TaskPatch{Priority: &high}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTutor_TeachesCourse_CaseInsensitiveSubstring(t *testing.T) {
	tutor := Tutor{Courses: []string{"CSC 201", "CSC 202"}}

	cases := map[string]bool{
		"csc":     true,
		"CSC 2":   true,
		"c 20":    true,
		"mth":     false,
		"csc 301": false,
	}
	for code, want := range cases {
		if got := tutor.TeachesCourse(code); got != want {
			t.Errorf("TeachesCourse(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestFilterOpportunities_ExactCategory(t *testing.T) {
	opps := []Opportunity{
		{ID: "1", Category: CategoryGig},
		{ID: "2", Category: CategoryScholarship},
		{ID: "3", Category: "Gig"},
	}
	got := FilterOpportunities(opps, CategoryGig)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only exact match, got %+v", got)
	}
}
