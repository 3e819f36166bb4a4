package domain

// Category groups opportunities on the board.
type Category string

const (
	CategoryGig         Category = "gig"
	CategoryScholarship Category = "scholarship"
	CategoryDeal        Category = "deal"
	CategoryInternship  Category = "internship"
	CategoryEvent       Category = "event"
	CategoryOther       Category = "other"
)

// Opportunity is a read-only board entry. Bookmark state lives in a
// separate per-owner set and is never stored on the record.
type Opportunity struct {
	ID          string   `json:"id" bson:"_id"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Category    Category `json:"category" bson:"category"`
	Deadline    string   `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Link        string   `json:"link,omitempty" bson:"link,omitempty"`
}

// FilterOpportunities returns the opportunities whose category equals c exactly.
func FilterOpportunities(opps []Opportunity, c Category) []Opportunity {
	if c == "" {
		return opps
	}
	out := make([]Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.Category == c {
			out = append(out, o)
		}
	}
	return out
}
