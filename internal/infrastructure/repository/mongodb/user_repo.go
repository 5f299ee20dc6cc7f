package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository represents the MongoDB implementation of the
// IUserRepository interface.
type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

// NewMongoUserRepository creates and returns a new MongoUserRepository
// instance over the users collection.
func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// Create inserts a new user document and fills in the generated id.
func (r *MongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetByEmail retrieves a user by email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by its hex id. A malformed id is treated the same
// as an unknown one.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, contract.ErrUserNotFound
	}
	var user entity.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

// UpdateProfile overwrites the display name and photo URL unconditionally
// and returns the updated document.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, error) {
	update := bson.M{"$set": bson.M{
		"displayName": displayName,
		"photoURL":    photoURL,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// SetRole overwrites the role field.
func (r *MongoUserRepository) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	return r.setField(ctx, id, "role", role)
}

// SetPremium overwrites the premium flag.
func (r *MongoUserRepository) SetPremium(ctx context.Context, id string, premium bool) error {
	return r.setField(ctx, id, "isPremium", premium)
}

func (r *MongoUserRepository) setField(ctx context.Context, id, field string, value interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return contract.ErrUserNotFound
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

// ListWithLessonCounts returns every user joined against the lessons
// collection on creatorEmail, annotated with a totalLessons count.
func (r *MongoUserRepository) ListWithLessonCounts(ctx context.Context) ([]entity.UserWithStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "lessons",
			"localField":   "email",
			"foreignField": "creatorEmail",
			"as":           "authoredLessons",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"totalLessons": bson.M{"$size": "$authoredLessons"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"authoredLessons": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with lesson counts: %w", err)
	}
	defer cursor.Close(ctx)

	var users []entity.UserWithStats
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
