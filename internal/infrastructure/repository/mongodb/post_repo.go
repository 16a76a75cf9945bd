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

// PostRepository is the MongoDB implementation of contract.IPostRepository.
type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// NewPostRepository creates a PostRepository on the "posts" collection of db.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection("posts")}
}

// EnsureIndexes creates the unique slug index and the listing index.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "draft", Value: 1}, {Key: "published_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}

func (r *PostRepository) ListReadablePosts(ctx context.Context) ([]entity.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"draft": false}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// UpdatePost applies the non-nil fields of update and returns the stored post.
func (r *PostRepository) UpdatePost(ctx context.Context, slug string, update entity.PostUpdate) (*entity.Post, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Excerpt != nil {
		set["excerpt"] = *update.Excerpt
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.Draft != nil {
		set["draft"] = *update.Draft
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post entity.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &post, nil
}
