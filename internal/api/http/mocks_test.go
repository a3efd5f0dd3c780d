package http

import (
	"context"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string, role domain.UserRole, caller *domain.Identity) (*domain.User, string, error) {
	args := m.Called(ctx, username, email, password, role, caller)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, caller domain.Identity) ([]domain.User, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, caller domain.Identity, id int32, upd domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, caller, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, caller domain.Identity, id int32) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

// MockBookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) AddBook(ctx context.Context, caller domain.Identity, book *domain.Book) error {
	args := m.Called(ctx, caller, book)
	return args.Error(0)
}
func (m *MockBookService) UpdateBook(ctx context.Context, caller domain.Identity, id int32, upd domain.BookUpdate) (*domain.Book, error) {
	args := m.Called(ctx, caller, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) DeleteBook(ctx context.Context, caller domain.Identity, id int32) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

// MockCirculationService
type MockCirculationService struct {
	mock.Mock
}

func (m *MockCirculationService) Reserve(ctx context.Context, caller domain.Identity, bookID int32, dueDate *time.Time) (*domain.CirculationRecord, error) {
	args := m.Called(ctx, caller, bookID, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CirculationRecord), args.Error(1)
}
func (m *MockCirculationService) Approve(ctx context.Context, caller domain.Identity, circulationID int32) (*domain.CirculationRecord, error) {
	args := m.Called(ctx, caller, circulationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CirculationRecord), args.Error(1)
}
func (m *MockCirculationService) Cancel(ctx context.Context, caller domain.Identity, circulationID int32) error {
	args := m.Called(ctx, caller, circulationID)
	return args.Error(0)
}
func (m *MockCirculationService) Return(ctx context.Context, caller domain.Identity, circulationID int32) (*domain.CirculationRecord, error) {
	args := m.Called(ctx, caller, circulationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CirculationRecord), args.Error(1)
}
func (m *MockCirculationService) Records(ctx context.Context, caller domain.Identity, userID *int32) ([]domain.CirculationDetail, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CirculationDetail), args.Error(1)
}
func (m *MockCirculationService) BorrowedBooks(ctx context.Context, caller domain.Identity, userID *int32) ([]domain.CirculationDetail, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CirculationDetail), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListForUser(ctx context.Context, caller domain.Identity, userID int32) ([]domain.Notification, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationService) MarkRead(ctx context.Context, caller domain.Identity, id int32) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}
func (m *MockNotificationService) Delete(ctx context.Context, caller domain.Identity, id int32) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

// MockDashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
