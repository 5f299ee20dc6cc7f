package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LessonPrivacy values recognised by the public listing. Anything other than
// "Public" is treated as private by the browse and related queries.
const (
	PrivacyPublic = "Public"
)

// Lesson represents a submitted life lesson.
//
// Likes and Favorites hold user identifiers; LikesCount and FavoritesCount
// are denormalized duplicates of the set sizes and must stay equal to them
// after every toggle.
type Lesson struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	Tone           string             `bson:"tone" json:"tone"`
	Image          string             `bson:"image" json:"image"`
	Privacy        string             `bson:"privacy" json:"privacy"`
	AccessLevel    string             `bson:"accessLevel" json:"accessLevel"`
	CreatorEmail   string             `bson:"creatorEmail" json:"creatorEmail"`
	CreatorName    string             `bson:"creatorName" json:"creatorName"`
	CreatorPhoto   string             `bson:"creatorPhoto" json:"creatorPhoto"`
	IsFeatured     bool               `bson:"isFeatured" json:"isFeatured"`
	Reviewed       bool               `bson:"reviewed" json:"reviewed"`
	Likes          []string           `bson:"likes" json:"likes"`
	LikesCount     int                `bson:"likesCount" json:"likesCount"`
	Favorites      []string           `bson:"favorites" json:"favorites"`
	FavoritesCount int                `bson:"favoritesCount" json:"favoritesCount"`
	Comments       []Comment          `bson:"comments" json:"comments"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Comment is one entry in a lesson's ordered comment sequence.
type Comment struct {
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	UserPhoto string    `bson:"userPhoto" json:"userPhoto"`
	Text      string    `bson:"text" json:"text"`
	Time      time.Time `bson:"time" json:"time"`
}

// HasLike reports whether userID is already in the likes set.
func (l *Lesson) HasLike(userID string) bool {
	for _, id := range l.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// HasFavorite reports whether userID is already in the favorites set.
func (l *Lesson) HasFavorite(userID string) bool {
	for _, id := range l.Favorites {
		if id == userID {
			return true
		}
	}
	return false
}
