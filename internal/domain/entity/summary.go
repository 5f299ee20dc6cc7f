package entity

// MonthlyCount is one point of a per-calendar-month time series.
// Month is formatted "YYYY-MM".
type MonthlyCount struct {
	Month string `bson:"_id" json:"month"`
	Count int    `bson:"count" json:"count"`
}

// CategoryToneCount is one row of a user's analytics breakdown: lessons
// created in a given month, grouped by category and tone.
type CategoryToneCount struct {
	Month    string `bson:"month" json:"month"`
	Category string `bson:"category" json:"category"`
	Tone     string `bson:"tone" json:"tone"`
	Count    int    `bson:"count" json:"count"`
}

// Contributor is one entry of the admin dashboard's top-contributor list.
type Contributor struct {
	Email        string `bson:"_id" json:"email"`
	TotalLessons int    `bson:"totalLessons" json:"totalLessons"`
}

// UserSummary is the per-user dashboard payload.
type UserSummary struct {
	TotalLessons   int      `json:"totalLessons"`
	TotalFavorites int      `json:"totalFavorites"`
	RecentLessons  []Lesson `json:"recentLessons"`
}

// AdminSummary is the admin dashboard payload. Both series are grouped by
// calendar month of creation, ascending.
type AdminSummary struct {
	TotalUsers      int64          `json:"totalUsers"`
	TotalLessons    int64          `json:"totalLessons"`
	TotalReports    int64          `json:"totalReports"`
	TopContributors []Contributor  `json:"topContributors"`
	LessonsToday    int64          `json:"lessonsToday"`
	LessonsPerMonth []MonthlyCount `json:"lessonsPerMonth"`
	UsersPerMonth   []MonthlyCount `json:"usersPerMonth"`
}
