package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campulse/campulse-api/internal/core/domain"
)

const (
	collectionOpportunities = "opportunities"
	collectionTutors        = "tutors"
)

type OpportunityRepository struct {
	col *mongo.Collection
}

func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{col: db.Collection(collectionOpportunities)}
}

// List returns the board, filtered by exact category when one is given.
func (r *OpportunityRepository) List(ctx context.Context, category domain.Category) ([]domain.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = string(category)
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find opportunities: %w", err)
	}

	opps := make([]domain.Opportunity, 0)
	if err := cur.All(ctx, &opps); err != nil {
		return nil, fmt.Errorf("decode opportunities: %w", err)
	}
	return opps, nil
}

func (r *OpportunityRepository) Get(ctx context.Context, id string) (*domain.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Opportunity
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, err
	}
	return &o, nil
}

// EnsureIndexes creates the category index used by List.
func (r *OpportunityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}})
	return err
}

type TutorRepository struct {
	col *mongo.Collection
}

func NewTutorRepository(db *mongo.Database) *TutorRepository {
	return &TutorRepository{col: db.Collection(collectionTutors)}
}

// List matches course codes with a case-insensitive, quoted regex so that the
// filter behaves as a plain substring search.
func (r *TutorRepository) List(ctx context.Context, courseCode string) ([]domain.Tutor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if courseCode != "" {
		filter["courses"] = bson.M{"$regex": regexp.QuoteMeta(courseCode), "$options": "i"}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find tutors: %w", err)
	}

	tutors := make([]domain.Tutor, 0)
	if err := cur.All(ctx, &tutors); err != nil {
		return nil, fmt.Errorf("decode tutors: %w", err)
	}
	return tutors, nil
}

func (r *TutorRepository) Get(ctx context.Context, id string) (*domain.Tutor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tutor
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, err
	}
	return &t, nil
}
