// Package mongo holds the MongoDB-backed repositories used when the service
// runs with STORAGE=mongo or SESSION_STORE=mongo.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campulse/campulse-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials MongoDB and pings it before returning the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI).SetAppName("campulse-api"))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Seed fills the task, opportunity and tutor collections with the given
// records, but only those collections that are still empty.
func Seed(ctx context.Context, db *mongo.Database, tasks []domain.Task, opps []domain.Opportunity, tutors []domain.Tutor) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	taskRepo := NewTaskRepository(db)
	if empty, err := isEmpty(ctx, taskRepo.col); err != nil {
		return err
	} else if empty {
		for _, t := range tasks {
			if err := taskRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("seed task %s: %w", t.ID, err)
			}
		}
	}

	if err := seedMany(ctx, db.Collection(collectionOpportunities), opps); err != nil {
		return fmt.Errorf("seed opportunities: %w", err)
	}
	if err := seedMany(ctx, db.Collection(collectionTutors), tutors); err != nil {
		return fmt.Errorf("seed tutors: %w", err)
	}
	return nil
}

func seedMany[T any](ctx context.Context, col *mongo.Collection, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	empty, err := isEmpty(ctx, col)
	if err != nil || !empty {
		return err
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	_, err = col.InsertMany(ctx, batch)
	return err
}

func isEmpty(ctx context.Context, col *mongo.Collection) (bool, error) {
	n, err := col.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	return n == 0, nil
}
