package usecase

import (
	"lifelessons/internal/entity"
	"lifelessons/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockLessonRepository is a mock implementation of persistent.LessonRepository
type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) Create(lesson *entity.Lesson) error {
	args := m.Called(lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) GetByID(id string) (*entity.Lesson, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lesson), args.Error(1)
}

func (m *MockLessonRepository) List(filter persistent.LessonFilter, limit, offset int) ([]*entity.Lesson, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lesson), args.Error(1)
}

func (m *MockLessonRepository) GetByCreator(email string, limit, offset int) ([]*entity.Lesson, error) {
	args := m.Called(email, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lesson), args.Error(1)
}

func (m *MockLessonRepository) Update(lesson *entity.Lesson) error {
	args := m.Called(lesson)
	return args.Error(0)
}

func (m *MockLessonRepository) DeleteCascade(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLessonRepository) ToggleFeatured(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLessonRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.LessonRepository = (*MockLessonRepository)(nil)

// MockEngagementRepository is a mock implementation of persistent.EngagementRepository
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) ToggleLike(lessonID, userEmail string) (*entity.LikeState, error) {
	args := m.Called(lessonID, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeState), args.Error(1)
}

func (m *MockEngagementRepository) IsLiked(lessonID, userEmail string) (bool, error) {
	args := m.Called(lessonID, userEmail)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) ListLikeEmails(lessonID string) ([]string, error) {
	args := m.Called(lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEngagementRepository) LikeCount(lessonID string) (int64, error) {
	args := m.Called(lessonID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) AddFavorite(lessonID, userEmail string, snapshot entity.FavoriteSnapshot) (*entity.FavoriteState, error) {
	args := m.Called(lessonID, userEmail, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavoriteState), args.Error(1)
}

func (m *MockEngagementRepository) RemoveFavorite(lessonID, userEmail string) (*entity.FavoriteState, error) {
	args := m.Called(lessonID, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FavoriteState), args.Error(1)
}

func (m *MockEngagementRepository) IsFavorited(lessonID, userEmail string) (bool, error) {
	args := m.Called(lessonID, userEmail)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) ListFavorites(userEmail string) ([]*entity.Favorite, error) {
	args := m.Called(userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Favorite), args.Error(1)
}

var _ persistent.EngagementRepository = (*MockEngagementRepository)(nil)

// MockReportRepository is a mock implementation of persistent.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(report *entity.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) Delete(reportID string) error {
	args := m.Called(reportID)
	return args.Error(0)
}

func (m *MockReportRepository) ListAll() ([]*entity.Report, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Report), args.Error(1)
}

func (m *MockReportRepository) CountForLesson(lessonID string) (int64, error) {
	args := m.Called(lessonID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ReportRepository = (*MockReportRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(limit, offset int) ([]*entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) SetPremium(email string, premium bool) error {
	args := m.Called(email, premium)
	return args.Error(0)
}

func (m *MockUserRepository) SetRole(email string, role entity.UserRole) error {
	args := m.Called(email, role)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListForLesson(lessonID string) ([]*entity.Comment, error) {
	args := m.Called(lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)
