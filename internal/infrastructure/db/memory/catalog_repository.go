package memory

import (
	"context"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// OpportunityRepository serves a fixed opportunity list.
type OpportunityRepository struct {
	opps []domain.Opportunity
}

func NewOpportunityRepository(opps ...domain.Opportunity) *OpportunityRepository {
	return &OpportunityRepository{opps: append([]domain.Opportunity(nil), opps...)}
}

func (r *OpportunityRepository) List(_ context.Context, category domain.Category) ([]domain.Opportunity, error) {
	matched := domain.FilterOpportunities(r.opps, category)
	return append([]domain.Opportunity{}, matched...), nil
}

func (r *OpportunityRepository) Get(_ context.Context, id string) (*domain.Opportunity, error) {
	for _, o := range r.opps {
		if o.ID == id {
			opp := o
			return &opp, nil
		}
	}
	return nil, domain.ErrOpportunityNotFound
}

// TutorRepository serves a fixed tutor directory.
type TutorRepository struct {
	tutors []domain.Tutor
}

func NewTutorRepository(tutors ...domain.Tutor) *TutorRepository {
	return &TutorRepository{tutors: append([]domain.Tutor(nil), tutors...)}
}

func (r *TutorRepository) List(_ context.Context, courseCode string) ([]domain.Tutor, error) {
	matched := domain.FilterTutors(r.tutors, courseCode)
	out := make([]domain.Tutor, len(matched))
	for i, t := range matched {
		out[i] = cloneTutor(t)
	}
	return out, nil
}

func (r *TutorRepository) Get(_ context.Context, id string) (*domain.Tutor, error) {
	for _, t := range r.tutors {
		if t.ID == id {
			tutor := cloneTutor(t)
			return &tutor, nil
		}
	}
	return nil, domain.ErrTutorNotFound
}

func cloneTutor(t domain.Tutor) domain.Tutor {
	t.Courses = append([]string(nil), t.Courses...)
	return t
}
