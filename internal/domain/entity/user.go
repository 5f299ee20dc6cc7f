package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered member of the platform.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Role        UserRole           `bson:"role" json:"role"`
	IsPremium   bool               `bson:"isPremium" json:"isPremium"`
	DisplayName *string            `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    *string            `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// UserWithStats is a user annotated with the number of lessons they created.
// Produced by the users/lessons lookup, never stored.
type UserWithStats struct {
	User         `bson:",inline"`
	TotalLessons int `bson:"totalLessons" json:"totalLessons"`
}
