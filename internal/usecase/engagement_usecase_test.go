package usecase

import (
	"testing"

	"lifelessons/internal/entity"
	"lifelessons/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func publicFreeLesson(id, creator string) *entity.Lesson {
	return &entity.Lesson{
		ID:           id,
		CreatorEmail: creator,
		Title:        "On patience",
		Privacy:      entity.PrivacyPublic,
		AccessLevel:  entity.AccessFree,
	}
}

func TestToggleLike_ReturnsAuthoritativeState(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	viewer := entity.ViewerContext{Email: "reader@example.com", Role: entity.RoleUser}
	mockLessons.On("GetByID", "lesson-1").Return(publicFreeLesson("lesson-1", "author@example.com"), nil)
	mockEngagement.On("ToggleLike", "lesson-1", viewer.Email).Return(&entity.LikeState{Liked: true, LikesCount: 5}, nil)

	state, err := uc.ToggleLike("lesson-1", viewer)

	assert.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, int64(5), state.LikesCount)
	mockEngagement.AssertExpectations(t)
}

func TestToggleLike_PremiumViewerRequired(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.AccessLevel = entity.AccessPremium
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "freeloader@example.com", Role: entity.RoleUser}
	_, err := uc.ToggleLike("lesson-1", viewer)

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockEngagement.AssertNotCalled(t, "ToggleLike")
}

func TestToggleLike_PremiumOwnerAllowed(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.AccessLevel = entity.AccessPremium
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "author@example.com", Role: entity.RoleUser}
	mockEngagement.On("ToggleLike", "lesson-1", viewer.Email).Return(&entity.LikeState{Liked: true, LikesCount: 1}, nil)

	state, err := uc.ToggleLike("lesson-1", viewer)

	assert.NoError(t, err)
	assert.True(t, state.Liked)
	mockEngagement.AssertExpectations(t)
}

func TestToggleLike_LessonNotFound(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	mockLessons.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	viewer := entity.ViewerContext{Email: "reader@example.com", Role: entity.RoleUser}
	_, err := uc.ToggleLike("missing", viewer)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAddFavorite_SnapshotFromLesson(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.Category = "career"
	lesson.EmotionalTone = "hopeful"
	lesson.ImageURL = "https://img.example.com/l1.jpg"
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "reader@example.com", Role: entity.RoleUser}
	expectedSnapshot := entity.FavoriteSnapshot{
		LessonTitle:    "On patience",
		LessonImage:    "https://img.example.com/l1.jpg",
		LessonCategory: "career",
		LessonTone:     "hopeful",
	}
	mockEngagement.On("AddFavorite", "lesson-1", viewer.Email, expectedSnapshot).
		Return(&entity.FavoriteState{Favorited: true, FavoritesCount: 1}, nil)

	state, err := uc.AddFavorite("lesson-1", viewer)

	assert.NoError(t, err)
	assert.True(t, state.Favorited)
	mockEngagement.AssertExpectations(t)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "reader@example.com", Role: entity.RoleUser}
	mockEngagement.On("AddFavorite", "lesson-1", viewer.Email, entity.FavoriteSnapshot{LessonTitle: "On patience"}).
		Return(nil, entity.ErrDuplicateFavorite)

	_, err := uc.AddFavorite("lesson-1", viewer)

	assert.ErrorIs(t, err, entity.ErrDuplicateFavorite)
}

func TestRemoveFavorite_Forbidden(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.Privacy = entity.PrivacyPrivate
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "stranger@example.com", Role: entity.RoleUser}
	_, err := uc.RemoveFavorite("lesson-1", viewer)

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockEngagement.AssertNotCalled(t, "RemoveFavorite")
}

func TestGetLikeCount_DatabaseFallback(t *testing.T) {
	mockEngagement := new(MockEngagementRepository)
	mockLessons := new(MockLessonRepository)
	uc := NewEngagementUseCase(mockEngagement, mockLessons, nil, nil, logger.New())

	mockEngagement.On("LikeCount", "lesson-1").Return(int64(17), nil)

	count, err := uc.GetLikeCount("lesson-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(17), count)
	mockEngagement.AssertExpectations(t)
}

// A cache entry that does not parse as a non-negative integer is rejected so
// it never gets served as a zero count.
func TestParseCachedCount(t *testing.T) {
	count, ok := parseCachedCount("17")
	assert.True(t, ok)
	assert.Equal(t, int64(17), count)

	for _, corrupt := range []string{"", "not-a-number", "17.5", "-3"} {
		_, ok := parseCachedCount(corrupt)
		assert.False(t, ok, "expected %q to be rejected", corrupt)
	}
}
