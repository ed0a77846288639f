package usecase

import (
	"testing"

	"lifelessons/internal/access"
	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateLesson_PremiumRequiresPremiumAccount(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	viewer := entity.ViewerContext{Email: "free@example.com", Role: entity.RoleUser}
	input := CreateLessonInput{
		Title:       "Hard-won wisdom",
		Description: "Details",
		Privacy:     "Public",
		AccessLevel: "Premium",
	}

	_, err := uc.CreateLesson(viewer, "Free User", "", input, nil, "")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockLessons.AssertNotCalled(t, "Create")
}

func TestCreateLesson_StrictLevelCasing(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	viewer := entity.ViewerContext{Email: "author@example.com", Role: entity.RoleUser}
	input := CreateLessonInput{
		Title:       "Hard-won wisdom",
		Description: "Details",
		Privacy:     "Public",
		AccessLevel: "free",
	}

	_, err := uc.CreateLesson(viewer, "Author", "", input, nil, "")

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreateLesson_Success(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	viewer := entity.ViewerContext{Email: "author@example.com", Role: entity.RoleUser}
	mockLessons.On("Create", mock.MatchedBy(func(l *entity.Lesson) bool {
		return l.CreatorEmail == viewer.Email && l.Title == "Hard-won wisdom" && l.AccessLevel == entity.AccessFree
	})).Return(nil)

	lesson, err := uc.CreateLesson(viewer, "Author", "", CreateLessonInput{
		Title:       "  Hard-won wisdom  ",
		Description: "Details",
		Privacy:     "Public",
		AccessLevel: "Free",
	}, nil, "")

	assert.NoError(t, err)
	assert.Equal(t, "Hard-won wisdom", lesson.Title)
	mockLessons.AssertExpectations(t)
}

func TestGetLesson_PrivateDeniedToStranger(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.Privacy = entity.PrivacyPrivate
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "stranger@example.com", Role: entity.RoleUser}
	_, err := uc.GetLesson("lesson-1", viewer)

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockEngagement.AssertNotCalled(t, "ListLikeEmails")
}

func TestGetLesson_BlurredHasNoEngagementState(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.AccessLevel = entity.AccessPremium
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)

	viewer := entity.ViewerContext{Email: "free@example.com", Role: entity.RoleUser}
	view, err := uc.GetLesson("lesson-1", viewer)

	assert.NoError(t, err)
	assert.Equal(t, access.AllowBlurred, view.Decision)
	assert.Nil(t, view.Likes)
	mockEngagement.AssertNotCalled(t, "ListLikeEmails")
	mockEngagement.AssertNotCalled(t, "IsLiked")
}

func TestGetLesson_FullAccessLoadsEngagement(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	mockLessons.On("GetByID", "lesson-1").Return(publicFreeLesson("lesson-1", "author@example.com"), nil)
	mockEngagement.On("ListLikeEmails", "lesson-1").Return([]string{"reader@example.com"}, nil)
	mockEngagement.On("IsLiked", "lesson-1", "reader@example.com").Return(true, nil)
	mockEngagement.On("IsFavorited", "lesson-1", "reader@example.com").Return(false, nil)

	viewer := entity.ViewerContext{Email: "reader@example.com", Role: entity.RoleUser}
	view, err := uc.GetLesson("lesson-1", viewer)

	assert.NoError(t, err)
	assert.Equal(t, access.AllowFull, view.Decision)
	assert.True(t, view.IsLiked)
	assert.False(t, view.IsFavorited)
	assert.Equal(t, []string{"reader@example.com"}, view.Likes)
	mockEngagement.AssertExpectations(t)
}

func TestGetLesson_EntitlementFlipChangesDecision(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	lesson := publicFreeLesson("lesson-1", "author@example.com")
	lesson.AccessLevel = entity.AccessPremium
	mockLessons.On("GetByID", "lesson-1").Return(lesson, nil)
	mockEngagement.On("ListLikeEmails", "lesson-1").Return([]string{}, nil)
	mockEngagement.On("IsLiked", "lesson-1", "reader@example.com").Return(false, nil)
	mockEngagement.On("IsFavorited", "lesson-1", "reader@example.com").Return(false, nil)

	before := entity.ViewerContext{Email: "reader@example.com", Role: entity.RoleUser}
	view, err := uc.GetLesson("lesson-1", before)
	assert.NoError(t, err)
	assert.Equal(t, access.AllowBlurred, view.Decision)

	after := before
	after.IsPremium = true
	view, err = uc.GetLesson("lesson-1", after)
	assert.NoError(t, err)
	assert.Equal(t, access.AllowFull, view.Decision)
}

func TestListLessons_SkipsDenied(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	private := publicFreeLesson("l-2", "author@example.com")
	private.Privacy = entity.PrivacyPrivate
	lessons := []*entity.Lesson{publicFreeLesson("l-1", "author@example.com"), private}
	mockLessons.On("List", persistent.LessonFilter{}, 20, 0).Return(lessons, nil)

	viewer := entity.ViewerContext{Email: "stranger@example.com", Role: entity.RoleUser}
	views, err := uc.ListLessons(persistent.LessonFilter{}, viewer, 20, 0)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "l-1", views[0].Lesson.ID)
}

func TestUpdateLesson_OwnerOnly(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	mockLessons.On("GetByID", "lesson-1").Return(publicFreeLesson("lesson-1", "author@example.com"), nil)

	title := "Hijacked"
	viewer := entity.ViewerContext{Email: "stranger@example.com", Role: entity.RoleUser}
	_, err := uc.UpdateLesson("lesson-1", viewer, UpdateLessonInput{Title: &title})

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockLessons.AssertNotCalled(t, "Update")
}

func TestUpdateLesson_AdminOverride(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	mockLessons.On("GetByID", "lesson-1").Return(publicFreeLesson("lesson-1", "author@example.com"), nil)
	mockLessons.On("Update", mock.MatchedBy(func(l *entity.Lesson) bool {
		return l.Title == "Cleaned up"
	})).Return(nil)

	title := "Cleaned up"
	admin := entity.ViewerContext{Email: "admin@example.com", Role: entity.RoleAdmin}
	lesson, err := uc.UpdateLesson("lesson-1", admin, UpdateLessonInput{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "Cleaned up", lesson.Title)
	mockLessons.AssertExpectations(t)
}

func TestDeleteLesson_OwnerCascades(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	mockLessons.On("GetByID", "lesson-1").Return(publicFreeLesson("lesson-1", "author@example.com"), nil)
	mockLessons.On("DeleteCascade", "lesson-1").Return(nil)

	owner := entity.ViewerContext{Email: "author@example.com", Role: entity.RoleUser}
	assert.NoError(t, uc.DeleteLesson("lesson-1", owner))
	mockLessons.AssertExpectations(t)
}

func TestToggleFeatured_NonAdminForbidden(t *testing.T) {
	mockLessons := new(MockLessonRepository)
	mockEngagement := new(MockEngagementRepository)
	uc := NewLessonUseCase(mockLessons, mockEngagement, nil, logger.New())

	viewer := entity.ViewerContext{Email: "author@example.com", Role: entity.RoleUser}
	_, err := uc.ToggleFeatured("lesson-1", viewer)

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockLessons.AssertNotCalled(t, "ToggleFeatured")
}
