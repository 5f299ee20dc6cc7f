package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is an abuse report filed against a lesson. Title and Category are
// denormalized snapshots taken at filing time; the lesson itself may change
// or disappear afterwards without touching its reports.
type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LessonID      primitive.ObjectID `bson:"lessonId" json:"lessonId"`
	Title         string             `bson:"title" json:"title"`
	Category      string             `bson:"category" json:"category"`
	ReporterEmail string             `bson:"reporterEmail" json:"reporterEmail"`
	Reason        string             `bson:"reason" json:"reason"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}

// ReportEntry is one reporter's complaint inside a grouped moderation row.
type ReportEntry struct {
	Reason        string    `bson:"reason" json:"reason"`
	ReporterEmail string    `bson:"reporterEmail" json:"reporterEmail"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}

// ReportedLesson is one row of the moderation dashboard: all reports filed
// against a single lesson, with the snapshot taken from the first report seen.
type ReportedLesson struct {
	LessonID    primitive.ObjectID `bson:"_id" json:"lessonId"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Reports     []ReportEntry      `bson:"reports" json:"reports"`
	ReportCount int                `bson:"reportCount" json:"reportCount"`
}
