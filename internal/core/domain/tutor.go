package domain

import "strings"

// Tutor is a read-only directory entry.
type Tutor struct {
	ID         string   `json:"id" bson:"_id"`
	Name       string   `json:"name" bson:"name"`
	Courses    []string `json:"courses" bson:"courses"`
	Rating     float64  `json:"rating" bson:"rating"`
	WhatsApp   string   `json:"whatsapp" bson:"whatsapp"`
	Bio        string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Experience string   `json:"experience,omitempty" bson:"experience,omitempty"`
	Verified   bool     `json:"verified" bson:"verified"`
}

// TeachesCourse reports whether any of the tutor's course codes contains
// code as a case-insensitive substring ("csc" matches "CSC 201").
func (t Tutor) TeachesCourse(code string) bool {
	needle := strings.ToLower(code)
	for _, c := range t.Courses {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}

// FilterTutors keeps the tutors teaching a course matching code.
func FilterTutors(tutors []Tutor, code string) []Tutor {
	if code == "" {
		return tutors
	}
	out := make([]Tutor, 0, len(tutors))
	for _, t := range tutors {
		if t.TeachesCourse(code) {
			out = append(out, t)
		}
	}
	return out
}
