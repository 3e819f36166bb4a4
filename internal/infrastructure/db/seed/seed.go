// Package seed holds the sample planner, board and directory content loaded
// into empty stores at startup.
package seed

import (
	"time"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// Tasks returns the sample tasks with due dates relative to now.
func Tasks(now time.Time) []domain.Task {
	in := func(d time.Duration) *time.Time {
		t := now.Add(d).UTC()
		return &t
	}
	return []domain.Task{
		{
			ID:          "1",
			Title:       "Complete Math Assignment",
			Description: "Solve problems 1-10 in Chapter 5",
			Type:        domain.TaskAssignment,
			Priority:    domain.PriorityHigh,
			DueDate:     in(24 * time.Hour),
		},
		{
			ID:          "2",
			Title:       "Physics Midterm",
			Description: "Topics: Mechanics and Thermodynamics",
			Type:        domain.TaskTest,
			Priority:    domain.PriorityHigh,
			DueDate:     in(48 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "CSC 301 Class",
			Description: "Data Structures and Algorithms",
			Type:        domain.TaskClass,
			Priority:    domain.PriorityMedium,
			DueDate:     in(time.Hour),
			IsDone:      true,
		},
	}
}

func Opportunities() []domain.Opportunity {
	return []domain.Opportunity{
		{
			ID:          "1",
			Title:       "Frontend Developer Intern",
			Description: "Remote internship opportunity for React developers. Build modern web applications.",
			Category:    domain.CategoryGig,
			Deadline:    "2025-12-31",
			Link:        "https://example.com",
		},
		{
			ID:          "2",
			Title:       "MTN Foundation Scholarship",
			Description: "Annual scholarship for high-performing science and technology students.",
			Category:    domain.CategoryScholarship,
			Deadline:    "2025-11-30",
			Link:        "https://example.com",
		},
		{
			ID:          "3",
			Title:       "50% Off Laptop Repair",
			Description: "Get half price on screen replacements at TechHub Yaba.",
			Category:    domain.CategoryDeal,
			Deadline:    "2025-10-15",
			Link:        "https://example.com",
		},
	}
}

func Tutors() []domain.Tutor {
	return []domain.Tutor{
		{
			ID:         "1",
			Name:       "David Okon",
			Courses:    []string{"MTH 101", "PHY 101"},
			Rating:     4.8,
			WhatsApp:   "2348012345678",
			Bio:        "Experienced math tutor with 3 years of teaching experience. I simplify complex concepts.",
			Experience: "3 years tutoring undergraduates",
			Verified:   true,
		},
		{
			ID:         "2",
			Name:       "Sarah Adebayo",
			Courses:    []string{"CSC 201", "CSC 202"},
			Rating:     4.9,
			WhatsApp:   "2348087654321",
			Bio:        "Computer Science major. I can help you understand algorithms and data structures.",
			Experience: "Dean's list student, 2 years tutoring",
			Verified:   true,
		},
		{
			ID:         "3",
			Name:       "Emmanuel Chinedu",
			Courses:    []string{"CHM 101"},
			Rating:     4.5,
			WhatsApp:   "2348055555555",
			Bio:        "Chemistry enthusiast. Let's ace that exam together!",
			Experience: "1 year tutoring",
		},
	}
}
