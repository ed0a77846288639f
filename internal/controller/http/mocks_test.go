package http

import (
	"io"

	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"
	"lifelessons/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(email, name, photoURL, password string) (*entity.User, string, error) {
	args := m.Called(email, name, photoURL, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) GetRole(email string) (entity.UserRole, error) {
	args := m.Called(email)
	return args.Get(0).(entity.UserRole), args.Error(1)
}

func (m *MockUserUseCase) ListUsers(viewer entity.ViewerContext, limit, offset int) ([]*entity.User, error) {
	args := m.Called(viewer, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) SetPremium(email string, viewer entity.ViewerContext, premium bool) error {
	args := m.Called(email, viewer, premium)
	return args.Error(0)
}

func (m *MockUserUseCase) CreateCheckoutSession(viewer entity.ViewerContext) (string, error) {
	args := m.Called(viewer)
	return args.String(0), args.Error(1)
}

func (m *MockUserUseCase) ViewerContext(email string) (entity.ViewerContext, error) {
	args := m.Called(email)
	return args.Get(0).(entity.ViewerContext), args.Error(1)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

// MockLessonUseCase is a mock implementation of LessonUseCase
type MockLessonUseCase struct {
	mock.Mock
}

func (m *MockLessonUseCase) CreateLesson(viewer entity.ViewerContext, creatorName, creatorPhoto string, input usecase.CreateLessonInput, image io.Reader, imageContentType string) (*entity.Lesson, error) {
	args := m.Called(viewer, creatorName, creatorPhoto, input, image, imageContentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lesson), args.Error(1)
}

func (m *MockLessonUseCase) GetLesson(lessonID string, viewer entity.ViewerContext) (*usecase.LessonView, error) {
	args := m.Called(lessonID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LessonView), args.Error(1)
}

func (m *MockLessonUseCase) ListLessons(filter persistent.LessonFilter, viewer entity.ViewerContext, limit, offset int) ([]*usecase.LessonView, error) {
	args := m.Called(filter, viewer, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.LessonView), args.Error(1)
}

func (m *MockLessonUseCase) MyLessons(viewer entity.ViewerContext) ([]*entity.Lesson, error) {
	args := m.Called(viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lesson), args.Error(1)
}

func (m *MockLessonUseCase) UpdateLesson(lessonID string, viewer entity.ViewerContext, input usecase.UpdateLessonInput) (*entity.Lesson, error) {
	args := m.Called(lessonID, viewer, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lesson), args.Error(1)
}

func (m *MockLessonUseCase) DeleteLesson(lessonID string, viewer entity.ViewerContext) error {
	args := m.Called(lessonID, viewer)
	return args.Error(0)
}

func (m *MockLessonUseCase) ToggleFeatured(lessonID string, viewer entity.ViewerContext) (bool, error) {
	args := m.Called(lessonID, viewer)
	return args.Bool(0), args.Error(1)
}

var _ usecase.LessonUseCase = (*MockLessonUseCase)(nil)

// MockEngagementUseCase is a mock implementation of EngagementUseCase
type MockEngagementUseCase struct {
	mock.Mock
}

func (m *MockEngagementUseCase) ToggleLike(lessonID string, viewer entity.ViewerContext) (*entity.LikeState, error) {
	args := m.Called(lessonID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeState), args.Error(1)
}

func (m *MockEngagementUseCase) AddFavorite(lessonID string, viewer entity.ViewerContext) (*entity.FavoriteState, error) {
	args := m.Called(lessonID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavoriteState), args.Error(1)
}

func (m *MockEngagementUseCase) RemoveFavorite(lessonID string, viewer entity.ViewerContext) (*entity.FavoriteState, error) {
	args := m.Called(lessonID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavoriteState), args.Error(1)
}

func (m *MockEngagementUseCase) IsFavorited(lessonID string, viewer entity.ViewerContext) (bool, error) {
	args := m.Called(lessonID, viewer)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementUseCase) ListFavorites(viewer entity.ViewerContext) ([]*entity.Favorite, error) {
	args := m.Called(viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Favorite), args.Error(1)
}

func (m *MockEngagementUseCase) GetLikeCount(lessonID string) (int64, error) {
	args := m.Called(lessonID)
	return args.Get(0).(int64), args.Error(1)
}

var _ usecase.EngagementUseCase = (*MockEngagementUseCase)(nil)

// MockModerationUseCase is a mock implementation of ModerationUseCase
type MockModerationUseCase struct {
	mock.Mock
}

func (m *MockModerationUseCase) SubmitReport(lessonID string, viewer entity.ViewerContext, reporterName, reason string) (*entity.Report, error) {
	args := m.Called(lessonID, viewer, reporterName, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockModerationUseCase) AggregatedReports() ([]*entity.ReportAggregate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ReportAggregate), args.Error(1)
}

func (m *MockModerationUseCase) DismissReport(reportID string, viewer entity.ViewerContext) error {
	args := m.Called(reportID, viewer)
	return args.Error(0)
}

func (m *MockModerationUseCase) DeleteLessonWithReports(lessonID string, viewer entity.ViewerContext) error {
	args := m.Called(lessonID, viewer)
	return args.Error(0)
}

var _ usecase.ModerationUseCase = (*MockModerationUseCase)(nil)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) AddComment(lessonID string, viewer entity.ViewerContext, userName, userPhoto, text string) (*entity.Comment, error) {
	args := m.Called(lessonID, viewer, userName, userPhoto, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListComments(lessonID string) ([]*entity.Comment, error) {
	args := m.Called(lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(commentID string, viewer entity.ViewerContext) error {
	args := m.Called(commentID, viewer)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asViewer(email string, viewer entity.ViewerContext, users *MockUserUseCase, handler gin.HandlerFunc) gin.HandlerFunc {
	users.On("ViewerContext", email).Return(viewer, nil)
	return func(c *gin.Context) {
		c.Set("user_email", email)
		handler(c)
	}
}
