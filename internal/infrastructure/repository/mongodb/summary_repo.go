package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SummaryRepository runs the read-only aggregation pipelines behind the
// dashboards, across the users, lessons and lesson_reports collections.
type SummaryRepository struct {
	users   *mongo.Collection
	lessons *mongo.Collection
	reports *mongo.Collection
}

var _ contract.ISummaryRepository = (*SummaryRepository)(nil)

// NewSummaryRepository creates and returns a new SummaryRepository instance.
func NewSummaryRepository(db *mongo.Database) *SummaryRepository {
	return &SummaryRepository{
		users:   db.Collection("users"),
		lessons: db.Collection("lessons"),
		reports: db.Collection("lesson_reports"),
	}
}

// CountLessonsByCreator counts lessons created by the given email.
func (r *SummaryRepository) CountLessonsByCreator(ctx context.Context, email string) (int64, error) {
	count, err := r.lessons.CountDocuments(ctx, bson.M{"creatorEmail": email})
	if err != nil {
		return 0, fmt.Errorf("failed to count lessons by creator: %w", err)
	}
	return count, nil
}

// CountFavoritedBy counts lessons whose favorites set contains the email.
func (r *SummaryRepository) CountFavoritedBy(ctx context.Context, email string) (int64, error) {
	count, err := r.lessons.CountDocuments(ctx, bson.M{"favorites": email})
	if err != nil {
		return 0, fmt.Errorf("failed to count favorited lessons: %w", err)
	}
	return count, nil
}

// RecentLessonsByCreator returns the creator's newest lessons, up to limit.
func (r *SummaryRepository) RecentLessonsByCreator(ctx context.Context, email string, limit int64) ([]entity.Lesson, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.lessons.Find(ctx, bson.M{"creatorEmail": email}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []entity.Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode recent lessons: %w", err)
	}
	return lessons, nil
}

// CreatorAnalytics groups the creator's lessons by calendar month, category
// and tone with a count per group, months ascending. Lessons without a
// creation date fall out of the $match stage.
func (r *SummaryRepository) CreatorAnalytics(ctx context.Context, email string) ([]entity.CategoryToneCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"creatorEmail": email,
			"createdAt":    bson.M{"$type": "date"},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"month":    bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
				"category": "$category",
				"tone":     "$tone",
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id.month": 1}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":      0,
			"month":    "$_id.month",
			"category": "$_id.category",
			"tone":     "$_id.tone",
			"count":    1,
		}}},
	}

	cursor, err := r.lessons.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to run creator analytics: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []entity.CategoryToneCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode creator analytics: %w", err)
	}
	return rows, nil
}

// CountUsers counts all users.
func (r *SummaryRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountPublicLessons counts lessons with Public privacy.
func (r *SummaryRepository) CountPublicLessons(ctx context.Context) (int64, error) {
	count, err := r.lessons.CountDocuments(ctx, bson.M{"privacy": entity.PrivacyPublic})
	if err != nil {
		return 0, fmt.Errorf("failed to count public lessons: %w", err)
	}
	return count, nil
}

// CountReports counts all reports.
func (r *SummaryRepository) CountReports(ctx context.Context) (int64, error) {
	count, err := r.reports.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// TopContributors returns the creators with the most lessons, descending.
// Ties keep the store's stable order.
func (r *SummaryRepository) TopContributors(ctx context.Context, limit int64) ([]entity.Contributor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$creatorEmail",
			"totalLessons": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalLessons": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.lessons.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to rank contributors: %w", err)
	}
	defer cursor.Close(ctx)

	var contributors []entity.Contributor
	if err := cursor.All(ctx, &contributors); err != nil {
		return nil, fmt.Errorf("failed to decode contributors: %w", err)
	}
	return contributors, nil
}

// CountLessonsSince counts lessons created at or after the given instant.
func (r *SummaryRepository) CountLessonsSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.lessons.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("failed to count recent lessons: %w", err)
	}
	return count, nil
}

// LessonsPerMonth returns the lessons-created series grouped by calendar
// month, ascending.
func (r *SummaryRepository) LessonsPerMonth(ctx context.Context) ([]entity.MonthlyCount, error) {
	return monthlySeries(ctx, r.lessons)
}

// UsersPerMonth returns the users-registered series grouped by calendar
// month, ascending.
func (r *SummaryRepository) UsersPerMonth(ctx context.Context) ([]entity.MonthlyCount, error) {
	return monthlySeries(ctx, r.users)
}

// monthlySeries groups a collection's documents by calendar month of their
// createdAt, ascending. Documents without a creation date are excluded.
func monthlySeries(ctx context.Context, collection *mongo.Collection) ([]entity.MonthlyCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$type": "date"}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly series: %w", err)
	}
	defer cursor.Close(ctx)

	var series []entity.MonthlyCount
	if err := cursor.All(ctx, &series); err != nil {
		return nil, fmt.Errorf("failed to decode monthly series: %w", err)
	}
	return series, nil
}
