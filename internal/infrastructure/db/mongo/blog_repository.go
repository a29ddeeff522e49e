package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itsyourradio/radio-api/internal/core/domain"
)

const postsCollection = "blog_posts"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(postsCollection)}
}

type postDoc struct {
	ID               string    `bson:"_id"`
	Title            string    `bson:"title"`
	Content          string    `bson:"content"`
	AuthorID         string    `bson:"author_id"`
	FeaturedImageURL string    `bson:"featured_image_url,omitempty"`
	Published        bool      `bson:"is_published"`
	PublishedAt      time.Time `bson:"published_at,omitempty"`
	CreatedAt        time.Time `bson:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at"`
}

func toPostDoc(p *domain.BlogPost) postDoc {
	return postDoc{
		ID:               p.ID,
		Title:            p.Title,
		Content:          p.Content,
		AuthorID:         p.AuthorID,
		FeaturedImageURL: p.FeaturedImageURL,
		Published:        p.Published,
		PublishedAt:      p.PublishedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (d postDoc) toDomain() domain.BlogPost {
	return domain.BlogPost{
		ID:               d.ID,
		Title:            d.Title,
		Content:          d.Content,
		AuthorID:         d.AuthorID,
		FeaturedImageURL: d.FeaturedImageURL,
		Published:        d.Published,
		PublishedAt:      d.PublishedAt.UTC(),
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}
}

func (r *BlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if _, err := r.coll.InsertOne(ctx, toPostDoc(post)); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	post := doc.toDomain()
	return &post, nil
}

func (r *BlogRepository) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"is_published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []domain.BlogPost
	for cur.Next(ctx) {
		var doc postDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	return posts, cur.Err()
}

func (r *BlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": post.ID}, toPostDoc(post))
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
