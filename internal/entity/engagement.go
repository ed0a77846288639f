package entity

import "time"

// LikeState is the authoritative post-toggle state returned by the ledger so
// the client can correct any optimistic drift.
type LikeState struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type FavoriteState struct {
	Favorited      bool  `json:"favorited"`
	FavoritesCount int64 `json:"favorites_count"`
}

// FavoriteSnapshot is the display metadata denormalized onto a favorite at
// creation time. Favorites intentionally keep this stale copy when the source
// lesson is later edited; listing favorites never joins back to lessons.
type FavoriteSnapshot struct {
	LessonTitle    string `json:"lesson_title"`
	LessonImage    string `json:"lesson_image"`
	LessonCategory string `json:"lesson_category"`
	LessonTone     string `json:"lesson_tone"`
}

type Favorite struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	LessonID  string    `json:"lesson_id"`
	FavoriteSnapshot
	CreatedAt time.Time `json:"created_at"`
}
