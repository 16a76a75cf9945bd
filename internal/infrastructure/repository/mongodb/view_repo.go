package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const topPostsLimit = 3

// ViewRepository keeps one counter document per slug in "post_views":
// {_id: slug, views: n, updated_at: t}.
type ViewRepository struct {
	collection *mongo.Collection
}

var _ contract.IViewCounter = (*ViewRepository)(nil)

func NewViewRepository(db *mongo.Database) *ViewRepository {
	return &ViewRepository{collection: db.Collection("post_views")}
}

func (r *ViewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "views", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create view indexes: %w", err)
	}
	return nil
}

func (r *ViewRepository) GetTopThreeBlogPosts(ctx context.Context, excludeSlug string) ([]entity.RankedPost, error) {
	filter := bson.M{
		"_id":   bson.M{"$ne": excludeSlug},
		"views": bson.M{"$gt": 0},
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "views", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(topPostsLimit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query top posts: %w", err)
	}
	defer cursor.Close(ctx)

	ranked := []entity.RankedPost{}
	if err := cursor.All(ctx, &ranked); err != nil {
		return nil, fmt.Errorf("failed to decode top posts: %w", err)
	}
	return ranked, nil
}

func (r *ViewRepository) IncrementViews(ctx context.Context, slug string) (int64, error) {
	update := bson.M{
		"$inc": bson.M{"views": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter entity.RankedPost
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": slug}, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return counter.Views, nil
}

// GetViews returns 0 for a slug that was never viewed.
func (r *ViewRepository) GetViews(ctx context.Context, slug string) (int64, error) {
	var counter entity.RankedPost
	err := r.collection.FindOne(ctx, bson.M{"_id": slug}).Decode(&counter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return counter.Views, nil
}
