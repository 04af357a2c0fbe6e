// Package users covers registration and login. Passwords are stored as
// bcrypt hashes; duplicate emails are caught by the database's unique
// index rather than a check-then-insert race.
package users

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rohittkale/Airline-Reservation-System/internal/auth"
	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/repository"
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type UserService struct {
	repo       repository.UserRepository
	validate   *validator.Validate
	jwtSecret  string
	accessTTL  time.Duration
	bcryptCost int
}

type RegisterInput struct {
	Name            string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Phone           string `validate:"required,phone"`
	Address         string `validate:"required"`
}

type LoginInput struct {
	Email    string
	Password string
}

var phoneDigits = regexp.MustCompile(`^[0-9]{10,15}$`)

func NewUserService(repo repository.UserRepository, jwtSecret string, accessTTL time.Duration, bcryptCost int) *UserService {
	v := validator.New()
	// Phone numbers must have 10-15 digits once spaces, hyphens and
	// parentheses are stripped.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(fl.Field().String())
		return phoneDigits.MatchString(stripped)
	})
	return &UserService{
		repo:       repo,
		validate:   v,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		bcryptCost: bcryptCost,
	}
}

// Register validates the input, hashes the password and stores the user as
// a customer. No store call happens on invalid input.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate.Struct(input); err != nil {
		return nil, asValidationError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		Phone:        input.Phone,
		Address:      input.Address,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the user with a signed access
// token. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, "", domain.NewValidationError("email", "email and password are required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := auth.NewAccessToken(s.jwtSecret, user, s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return domain.NewValidationError(strings.ToLower(first.Field()), "failed "+first.Tag()+" check")
	}
	return err
}

var _ UserUseCase = (*UserService)(nil)
