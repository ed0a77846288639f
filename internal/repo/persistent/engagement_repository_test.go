package persistent

import (
	"testing"

	"lifelessons/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.LessonModel{},
		&model.LikeModel{},
		&model.FavoriteModel{},
	))
	return db
}

func createTestLesson(t *testing.T, db *gorm.DB, id string, likes int64) {
	lesson := &model.LessonModel{
		ID:           id,
		CreatorEmail: "author@example.com",
		Title:        "On patience",
		Privacy:      "Public",
		AccessLevel:  "Free",
		LikesCount:   likes,
	}
	require.NoError(t, db.Create(lesson).Error)
}

func likesCount(t *testing.T, db *gorm.DB, lessonID string) int64 {
	var count int64
	require.NoError(t, db.Model(&model.LessonModel{}).Select("likes_count").
		Where("id = ?", lessonID).Scan(&count).Error)
	return count
}

func TestToggleLike_RoundTripKeepsCounterInSync(t *testing.T) {
	db := openTestDB(t)
	repo := NewEngagementRepository(db)

	createTestLesson(t, db, "lesson-1", 0)

	state, err := repo.ToggleLike("lesson-1", "reader@example.com")
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, int64(1), state.LikesCount)

	state, err = repo.ToggleLike("lesson-1", "reader@example.com")
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, int64(0), state.LikesCount)

	var rows int64
	require.NoError(t, db.Model(&model.LikeModel{}).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

// An untoggle whose delete finds no membership row must leave the counter
// alone. This is the losing side of two simultaneous untoggles from the same
// viewer on different devices; without the guard the counter ends up below
// the membership set size.
func TestRemoveLike_AbsentRowLeavesCounterAlone(t *testing.T) {
	db := openTestDB(t)

	createTestLesson(t, db, "lesson-1", 1)

	removed, err := removeLike(db, "lesson-1", "reader@example.com")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, int64(1), likesCount(t, db, "lesson-1"))
}

func TestRemoveLike_PresentRowDecrements(t *testing.T) {
	db := openTestDB(t)

	createTestLesson(t, db, "lesson-1", 1)
	require.NoError(t, db.Create(&model.LikeModel{
		LessonID: "lesson-1", UserEmail: "reader@example.com",
	}).Error)

	removed, err := removeLike(db, "lesson-1", "reader@example.com")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, int64(0), likesCount(t, db, "lesson-1"))
}

func TestRemoveFavorite_AbsentRowLeavesCounterAlone(t *testing.T) {
	db := openTestDB(t)
	repo := NewEngagementRepository(db)

	lesson := &model.LessonModel{
		ID:             "lesson-1",
		CreatorEmail:   "author@example.com",
		Title:          "On patience",
		Privacy:        "Public",
		AccessLevel:    "Free",
		FavoritesCount: 2,
	}
	require.NoError(t, db.Create(lesson).Error)

	state, err := repo.RemoveFavorite("lesson-1", "reader@example.com")
	require.NoError(t, err)
	assert.False(t, state.Favorited)
	assert.Equal(t, int64(2), state.FavoritesCount)
}
