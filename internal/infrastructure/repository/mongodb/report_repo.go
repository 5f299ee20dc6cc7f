package mongodb

import (
	"context"
	"fmt"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportRepository represents the MongoDB implementation of the
// IReportRepository interface.
type ReportRepository struct {
	collection *mongo.Collection
}

var _ contract.IReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates and returns a new ReportRepository instance.
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("lesson_reports"),
	}
}

// Create inserts a report. The same reporter may file against the same
// lesson repeatedly; there is no dedup.
func (r *ReportRepository) Create(ctx context.Context, report *entity.Report) error {
	res, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

// ListGroupedByLesson groups all reports by lesson, most reported first.
// The title and category snapshots come from the first report seen per
// lesson.
func (r *ReportRepository) ListGroupedByLesson(ctx context.Context) ([]entity.ReportedLesson, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      "$lessonId",
			"title":    bson.M{"$first": "$title"},
			"category": bson.M{"$first": "$category"},
			"reports": bson.M{"$push": bson.M{
				"reason":        "$reason",
				"reporterEmail": "$reporterEmail",
				"timestamp":     "$timestamp",
			}},
			"reportCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"reportCount": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group reports: %w", err)
	}
	defer cursor.Close(ctx)

	var grouped []entity.ReportedLesson
	if err := cursor.All(ctx, &grouped); err != nil {
		return nil, fmt.Errorf("failed to decode grouped reports: %w", err)
	}
	return grouped, nil
}

// DeleteByLesson bulk-deletes every report filed against the lesson and
// returns how many were removed. Clearing a lesson with no reports deletes
// zero and is not an error.
func (r *ReportRepository) DeleteByLesson(ctx context.Context, lessonID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(lessonID)
	if err != nil {
		return 0, contract.ErrLessonNotFound
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"lessonId": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to clear reports: %w", err)
	}
	return res.DeletedCount, nil
}
