package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rohittkale/Airline-Reservation-System/internal/auth"
	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(repo *MockUserRepository) *UserService {
	return NewUserService(repo, "test-secret", 15*time.Minute, bcrypt.MinCost)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Asha Verma",
		Email:           "asha@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "9876543210",
		Address:         "12 MG Road, Pune",
	}
}

func TestUserService_Register(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once().
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		})

	user, err := service.Register(ctx, validRegisterInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.VerifyPassword(user.PasswordHash, "secret123"))
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	input := validRegisterInput()
	input.Email = "  Asha@Example.COM "

	user, err := service.Register(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
}

func TestUserService_Register_Validation(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, "email"},
		{"short password", func(in *RegisterInput) { in.Password = "abc"; in.ConfirmPassword = "abc" }, "password"},
		{"mismatched confirmation", func(in *RegisterInput) { in.ConfirmPassword = "different1" }, "confirmpassword"},
		{"short phone", func(in *RegisterInput) { in.Phone = "12345" }, "phone"},
		{"alphabetic phone", func(in *RegisterInput) { in.Phone = "98765abcde" }, "phone"},
		{"missing address", func(in *RegisterInput) { in.Address = "" }, "address"},
		{"one letter name", func(in *RegisterInput) { in.Name = "A" }, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegisterInput()
			tc.mutate(&input)

			_, err := service.Register(ctx, input)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_PhoneWithFormatting(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	input := validRegisterInput()
	input.Phone = "(987) 654-3210"

	_, err := service.Register(ctx, input)
	assert.NoError(t, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateEmail).Once()

	_, err := service.Register(ctx, validRegisterInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	hash, err := auth.HashPassword("secret123", bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{ID: 7, Email: "asha@example.com", PasswordHash: hash, Role: domain.RoleCustomer}

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

	user, token, err := service.Login(ctx, LoginInput{Email: "Asha@Example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NotEmpty(t, token)

	claims, err := auth.ParseAccessToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	hash, err := auth.HashPassword("secret123", bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &domain.User{ID: 7, Email: "asha@example.com", PasswordHash: hash}

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

	_, _, err = service.Login(ctx, LoginInput{Email: "asha@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound).Once()

	_, _, err := service.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_EmptyInput(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := newTestService(mockRepo)

	_, _, err := service.Login(context.Background(), LoginInput{})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	mockRepo.AssertNotCalled(t, "GetByEmail")
}
