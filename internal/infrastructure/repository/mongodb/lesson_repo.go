package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LessonRepository represents the MongoDB implementation of the
// ILessonRepository interface.
type LessonRepository struct {
	collection *mongo.Collection
}

var _ contract.ILessonRepository = (*LessonRepository)(nil)

// NewLessonRepository creates and returns a new LessonRepository instance.
func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{
		collection: db.Collection("lessons"),
	}
}

// buildPublicFilter creates the BSON filter for the public listing. Sorting
// is deliberately not part of it; the usecase orders results after retrieval.
func buildPublicFilter(opts contract.LessonFilter) bson.M {
	filter := bson.M{"privacy": entity.PrivacyPublic}
	if opts.Search != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(opts.Search),
			Options: "i",
		}}
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Tone != "" {
		filter["tone"] = opts.Tone
	}
	return filter
}

// Create inserts a new lesson record into the database.
func (r *LessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	lesson.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, lesson)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lesson.ID = oid
	}
	return nil
}

// ListPublic retrieves public lessons matching the filter, in store order.
func (r *LessonRepository) ListPublic(ctx context.Context, filter contract.LessonFilter) ([]entity.Lesson, error) {
	cursor, err := r.collection.Find(ctx, buildPublicFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// ListByCreator retrieves lessons newest first. An empty creatorEmail means
// all lessons.
func (r *LessonRepository) ListByCreator(ctx context.Context, creatorEmail string) ([]entity.Lesson, error) {
	filter := bson.M{}
	if creatorEmail != "" {
		filter["creatorEmail"] = creatorEmail
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}
	return lessons, nil
}

// GetByID retrieves a single lesson by its hex id.
func (r *LessonRepository) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, contract.ErrLessonNotFound
	}
	var lesson entity.Lesson
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&lesson); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to retrieve lesson: %w", err)
	}
	return &lesson, nil
}

// Update replaces the fixed editable field subset and stamps updatedAt,
// returning the updated document. Fields outside the subset never reach this
// method.
func (r *LessonRepository) Update(ctx context.Context, id string, fields contract.LessonUpdate) (*entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, contract.ErrLessonNotFound
	}
	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"description": fields.Description,
		"category":    fields.Category,
		"tone":        fields.Tone,
		"image":       fields.Image,
		"privacy":     fields.Privacy,
		"accessLevel": fields.AccessLevel,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lesson entity.Lesson
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&lesson); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}
	return &lesson, nil
}

// Delete removes a lesson. Reports referencing it are left alone.
func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return contract.ErrLessonNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrLessonNotFound
	}
	return nil
}

// AddLike adds userID to the likes set and increments the paired counter in
// one document update.
func (r *LessonRepository) AddLike(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	return r.toggleMember(ctx, id, "likes", "likesCount", userID, true)
}

// RemoveLike removes userID from the likes set and decrements the counter.
func (r *LessonRepository) RemoveLike(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	return r.toggleMember(ctx, id, "likes", "likesCount", userID, false)
}

// AddFavorite adds userID to the favorites set and increments the counter.
func (r *LessonRepository) AddFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	return r.toggleMember(ctx, id, "favorites", "favoritesCount", userID, true)
}

// RemoveFavorite removes userID from the favorites set and decrements the
// counter.
func (r *LessonRepository) RemoveFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	return r.toggleMember(ctx, id, "favorites", "favoritesCount", userID, false)
}

// toggleMember applies the set mutation and the paired counter change as one
// update. The filter re-checks membership so a racing duplicate toggle turns
// into a no-op instead of skewing the counter; in that case the current
// document is returned unchanged.
func (r *LessonRepository) toggleMember(ctx context.Context, id, setField, countField, userID string, add bool) (*entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, contract.ErrLessonNotFound
	}

	filter := bson.M{"_id": oid}
	var update bson.M
	if add {
		filter[setField] = bson.M{"$ne": userID}
		update = bson.M{
			"$addToSet": bson.M{setField: userID},
			"$inc":      bson.M{countField: 1},
		}
	} else {
		filter[setField] = userID
		update = bson.M{
			"$pull": bson.M{setField: userID},
			"$inc":  bson.M{countField: -1},
		}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lesson entity.Lesson
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&lesson)
	if err == nil {
		return &lesson, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to toggle %s: %w", setField, err)
	}
	// No match: either the lesson is gone or another request already applied
	// the same membership change. Re-read to tell the two apart.
	return r.GetByID(ctx, id)
}

// AddComment appends to the lesson's ordered comment sequence and returns
// the updated document.
func (r *LessonRepository) AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, contract.ErrLessonNotFound
	}
	update := bson.M{"$push": bson.M{"comments": comment}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lesson entity.Lesson
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&lesson); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &lesson, nil
}

// ListRelated retrieves up to limit public lessons sharing the category or
// tone, excluding the lesson itself. Order beyond the store default is not
// defined.
func (r *LessonRepository) ListRelated(ctx context.Context, id, category, tone string, limit int64) ([]entity.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, contract.ErrLessonNotFound
	}
	filter := bson.M{
		"_id":     bson.M{"$ne": oid},
		"privacy": entity.PrivacyPublic,
		"$or": []bson.M{
			{"category": category},
			{"tone": tone},
		},
	}
	findOptions := options.Find().SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve related lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode related lessons: %w", err)
	}
	return lessons, nil
}

// SetFeatured overwrites the featured flag.
func (r *LessonRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	return r.setField(ctx, id, bson.M{"isFeatured": featured})
}

// SetReviewed marks the lesson as reviewed.
func (r *LessonRepository) SetReviewed(ctx context.Context, id string) error {
	return r.setField(ctx, id, bson.M{"reviewed": true})
}

func (r *LessonRepository) setField(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return contract.ErrLessonNotFound
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update lesson flags: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrLessonNotFound
	}
	return nil
}
