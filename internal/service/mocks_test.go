package service

import (
	"context"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, id int32, upd domain.UserUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) CountAdmins(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, id int32, upd domain.BookUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) CopyTotals(ctx context.Context) (int32, int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Get(1).(int32), args.Error(2)
}

// MockCirculationRepo
type MockCirculationRepo struct {
	mock.Mock
}

func (m *MockCirculationRepo) GetByID(ctx context.Context, id int32) (*domain.CirculationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CirculationRecord), args.Error(1)
}
func (m *MockCirculationRepo) CreateReservation(ctx context.Context, rec *domain.CirculationRecord, notes []domain.NotificationInput) error {
	args := m.Called(ctx, rec, notes)
	return args.Error(0)
}
func (m *MockCirculationRepo) Approve(ctx context.Context, id int32, notes []domain.NotificationInput) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}
func (m *MockCirculationRepo) CancelOpen(ctx context.Context, id, bookID int32, notes []domain.NotificationInput) error {
	args := m.Called(ctx, id, bookID, notes)
	return args.Error(0)
}
func (m *MockCirculationRepo) CloseReturn(ctx context.Context, id, bookID int32, fine float64, notes []domain.NotificationInput) error {
	args := m.Called(ctx, id, bookID, fine, notes)
	return args.Error(0)
}
func (m *MockCirculationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.CirculationDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CirculationDetail), args.Error(1)
}
func (m *MockCirculationRepo) ListOpen(ctx context.Context) ([]domain.CirculationDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CirculationDetail), args.Error(1)
}
func (m *MockCirculationRepo) ListOpenByUser(ctx context.Context, userID int32) ([]domain.CirculationDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CirculationDetail), args.Error(1)
}
func (m *MockCirculationRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.CirculationDetail, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.CirculationDetail), args.Error(1)
}
func (m *MockCirculationRepo) CountOpenBorrows(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note domain.NotificationInput) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) ListRecent(ctx context.Context, limit int32) ([]domain.Notification, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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
