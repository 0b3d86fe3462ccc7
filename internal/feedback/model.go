package feedback

import "time"

// Valid rating values, best to worst.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingFair      = "fair"
	RatingPoor      = "poor"
)

// Entry is one piece of user feedback.
type Entry struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail,omitempty"`
	Rating    string    `json:"rating"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingCount is one bucket of the rating distribution.
type RatingCount struct {
	Rating string `json:"rating"`
	Count  int    `json:"count"`
}

// Stats summarizes collected feedback. AverageRating maps ratings onto a
// 1-5 scale (excellent=5, good=4, fair=3, poor=2).
type Stats struct {
	Total              int           `json:"total"`
	AverageRating      float64       `json:"averageRating"`
	RatingDistribution []RatingCount `json:"ratingDistribution"`
}
