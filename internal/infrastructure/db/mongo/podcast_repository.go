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

const (
	showsCollection    = "podcast_shows"
	episodesCollection = "podcast_episodes"
)

type ShowRepository struct {
	coll *mongo.Collection
}

func NewShowRepository(db *mongo.Database) *ShowRepository {
	return &ShowRepository{coll: db.Collection(showsCollection)}
}

type showDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	HostID      string    `bson:"host_id"`
	Description string    `bson:"description"`
	CoverArtURL string    `bson:"cover_art_url,omitempty"`
	Category    string    `bson:"category,omitempty"`
	IsOriginal  bool      `bson:"is_original"`
	IsClassic   bool      `bson:"is_classic"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d showDoc) toDomain() domain.PodcastShow {
	return domain.PodcastShow{
		ID:          d.ID,
		Title:       d.Title,
		HostID:      d.HostID,
		Description: d.Description,
		CoverArtURL: d.CoverArtURL,
		Category:    d.Category,
		IsOriginal:  d.IsOriginal,
		IsClassic:   d.IsClassic,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *ShowRepository) Create(ctx context.Context, show *domain.PodcastShow) error {
	doc := showDoc{
		ID:          show.ID,
		Title:       show.Title,
		HostID:      show.HostID,
		Description: show.Description,
		CoverArtURL: show.CoverArtURL,
		Category:    show.Category,
		IsOriginal:  show.IsOriginal,
		IsClassic:   show.IsClassic,
		CreatedAt:   show.CreatedAt,
		UpdatedAt:   show.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert show: %w", err)
	}
	return nil
}

func (r *ShowRepository) FindByID(ctx context.Context, id string) (*domain.PodcastShow, error) {
	var doc showDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrShowNotFound
		}
		return nil, fmt.Errorf("find show: %w", err)
	}
	show := doc.toDomain()
	return &show, nil
}

func (r *ShowRepository) List(ctx context.Context) ([]domain.PodcastShow, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer cur.Close(ctx)

	var shows []domain.PodcastShow
	for cur.Next(ctx) {
		var doc showDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode show: %w", err)
		}
		shows = append(shows, doc.toDomain())
	}
	return shows, cur.Err()
}

func (r *ShowRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete show: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

type EpisodeRepository struct {
	coll *mongo.Collection
}

func NewEpisodeRepository(db *mongo.Database) *EpisodeRepository {
	return &EpisodeRepository{coll: db.Collection(episodesCollection)}
}

type episodeDoc struct {
	ID            string    `bson:"_id"`
	ShowID        string    `bson:"show_id"`
	Title         string    `bson:"title"`
	Description   string    `bson:"description"`
	FilePath      string    `bson:"file_path"`
	Duration      float64   `bson:"duration,omitempty"`
	EpisodeNumber int       `bson:"episode_number,omitempty"`
	PublishedAt   time.Time `bson:"published_at"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func (d episodeDoc) toDomain() domain.PodcastEpisode {
	return domain.PodcastEpisode{
		ID:            d.ID,
		ShowID:        d.ShowID,
		Title:         d.Title,
		Description:   d.Description,
		FilePath:      d.FilePath,
		Duration:      d.Duration,
		EpisodeNumber: d.EpisodeNumber,
		PublishedAt:   d.PublishedAt.UTC(),
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func (r *EpisodeRepository) Create(ctx context.Context, episode *domain.PodcastEpisode) error {
	doc := episodeDoc{
		ID:            episode.ID,
		ShowID:        episode.ShowID,
		Title:         episode.Title,
		Description:   episode.Description,
		FilePath:      episode.FilePath,
		Duration:      episode.Duration,
		EpisodeNumber: episode.EpisodeNumber,
		PublishedAt:   episode.PublishedAt,
		CreatedAt:     episode.CreatedAt,
		UpdatedAt:     episode.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert episode: %w", err)
	}
	return nil
}

func (r *EpisodeRepository) FindByID(ctx context.Context, id string) (*domain.PodcastEpisode, error) {
	var doc episodeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("find episode: %w", err)
	}
	episode := doc.toDomain()
	return &episode, nil
}

func (r *EpisodeRepository) ListByShow(ctx context.Context, showID string) ([]domain.PodcastEpisode, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"show_id": showID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer cur.Close(ctx)

	var episodes []domain.PodcastEpisode
	for cur.Next(ctx) {
		var doc episodeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode episode: %w", err)
		}
		episodes = append(episodes, doc.toDomain())
	}
	return episodes, cur.Err()
}

func (r *EpisodeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete episode: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEpisodeNotFound
	}
	return nil
}
