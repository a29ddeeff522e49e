package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

const usersCollection = "users"

const (
	emailIndexName    = "email_unique"
	usernameIndexName = "username_unique"
)

// UserRepository is the MongoDB credential store. Email and username
// uniqueness is enforced by unique indexes, so concurrent registrations
// cannot both succeed regardless of interleaving.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique secondary indexes. Safe to call on every
// startup; Mongo treats an existing identical index as a no-op.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndexName),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(usernameIndexName),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

type userDoc struct {
	ID              string    `bson:"_id"`
	Email           string    `bson:"email"`
	Username        string    `bson:"username"`
	FullName        string    `bson:"full_name,omitempty"`
	PasswordHash    string    `bson:"password_hash"`
	Role            string    `bson:"role"`
	Bio             string    `bson:"bio,omitempty"`
	ProfileImageURL string    `bson:"profile_image_url,omitempty"`
	CoverImageURL   string    `bson:"cover_image_url,omitempty"`
	Active          bool      `bson:"is_active"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		FullName:        u.FullName,
		PasswordHash:    u.PasswordHash,
		Role:            string(u.Role),
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		CoverImageURL:   u.CoverImageURL,
		Active:          u.Active,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (d userDoc) toDomain() (*domain.User, error) {
	role, err := domain.ParseRole(d.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", d.ID, err)
	}
	return &domain.User{
		ID:              d.ID,
		Email:           d.Email,
		Username:        d.Username,
		FullName:        d.FullName,
		PasswordHash:    d.PasswordHash,
		Role:            role,
		Bio:             d.Bio,
		ProfileImageURL: d.ProfileImageURL,
		CoverImageURL:   d.CoverImageURL,
		Active:          d.Active,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.coll.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain()
}

// Update applies the whole field set in one FindOneAndUpdate so a concurrent
// update cannot interleave between read and write.
func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Email != nil {
		set["email"] = strings.ToLower(*update.Email)
	}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.ProfileImageURL != nil {
		set["profile_image_url"] = *update.ProfileImageURL
	}
	if update.CoverImageURL != nil {
		set["cover_image_url"] = *update.CoverImageURL
	}
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}
	if update.Active != nil {
		set["is_active"] = *update.Active
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain()
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// duplicateKeyError maps a unique-index violation to the field-level sentinel
// the registration handler reports. The violated index name appears in the
// server's error message.
func duplicateKeyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, usernameIndexName):
		return domain.ErrUsernameTaken
	default:
		return domain.ErrEmailTaken
	}
}
