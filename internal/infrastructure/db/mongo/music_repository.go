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
	albumsCollection = "albums"
	songsCollection  = "songs"
)

type AlbumRepository struct {
	coll *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) *AlbumRepository {
	return &AlbumRepository{coll: db.Collection(albumsCollection)}
}

type albumDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	ArtistID    string    `bson:"artist_id"`
	CoverArtURL string    `bson:"cover_art_url,omitempty"`
	ReleaseDate time.Time `bson:"release_date,omitempty"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d albumDoc) toDomain() domain.Album {
	return domain.Album{
		ID:          d.ID,
		Title:       d.Title,
		ArtistID:    d.ArtistID,
		CoverArtURL: d.CoverArtURL,
		ReleaseDate: d.ReleaseDate.UTC(),
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *AlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	doc := albumDoc{
		ID:          album.ID,
		Title:       album.Title,
		ArtistID:    album.ArtistID,
		CoverArtURL: album.CoverArtURL,
		ReleaseDate: album.ReleaseDate,
		Description: album.Description,
		CreatedAt:   album.CreatedAt,
		UpdatedAt:   album.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

func (r *AlbumRepository) FindByID(ctx context.Context, id string) (*domain.Album, error) {
	var doc albumDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, fmt.Errorf("find album: %w", err)
	}
	album := doc.toDomain()
	return &album, nil
}

func (r *AlbumRepository) List(ctx context.Context) ([]domain.Album, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer cur.Close(ctx)

	var albums []domain.Album
	for cur.Next(ctx) {
		var doc albumDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode album: %w", err)
		}
		albums = append(albums, doc.toDomain())
	}
	return albums, cur.Err()
}

func (r *AlbumRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

type SongRepository struct {
	coll *mongo.Collection
}

func NewSongRepository(db *mongo.Database) *SongRepository {
	return &SongRepository{coll: db.Collection(songsCollection)}
}

type songDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	ArtistID    string    `bson:"artist_id"`
	AlbumID     string    `bson:"album_id,omitempty"`
	FilePath    string    `bson:"file_path"`
	Duration    float64   `bson:"duration,omitempty"`
	TrackNumber int       `bson:"track_number,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d songDoc) toDomain() domain.Song {
	return domain.Song{
		ID:          d.ID,
		Title:       d.Title,
		ArtistID:    d.ArtistID,
		AlbumID:     d.AlbumID,
		FilePath:    d.FilePath,
		Duration:    d.Duration,
		TrackNumber: d.TrackNumber,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *SongRepository) Create(ctx context.Context, song *domain.Song) error {
	doc := songDoc{
		ID:          song.ID,
		Title:       song.Title,
		ArtistID:    song.ArtistID,
		AlbumID:     song.AlbumID,
		FilePath:    song.FilePath,
		Duration:    song.Duration,
		TrackNumber: song.TrackNumber,
		CreatedAt:   song.CreatedAt,
		UpdatedAt:   song.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

func (r *SongRepository) FindByID(ctx context.Context, id string) (*domain.Song, error) {
	var doc songDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSongNotFound
		}
		return nil, fmt.Errorf("find song: %w", err)
	}
	song := doc.toDomain()
	return &song, nil
}

func (r *SongRepository) ListByAlbum(ctx context.Context, albumID string) ([]domain.Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "track_number", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"album_id": albumID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer cur.Close(ctx)

	var songs []domain.Song
	for cur.Next(ctx) {
		var doc songDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode song: %w", err)
		}
		songs = append(songs, doc.toDomain())
	}
	return songs, cur.Err()
}

func (r *SongRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}
