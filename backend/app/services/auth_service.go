package services

import (
	"errors"
	"time"

	"stocklist/backend/app/apperr"
	"stocklist/backend/app/dto"
	"stocklist/backend/app/models"
	"stocklist/backend/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultPageSize = 12

type AuthService struct{ users *repo.UserRepository }

func NewAuthService(users *repo.UserRepository) *AuthService { return &AuthService{users: users} }

func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	if req.UserName == "" || req.FirstName == "" || req.LastName == "" || req.Email == "" || req.BirthDate == "" || req.Password == "" {
		return nil, apperr.New(apperr.Validation, "All fields are required")
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "Invalid birth_date")
	}

	exists, err := s.users.ExistsByUserNameOrEmail(req.UserName, req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}

	u := &models.User{
		UserName:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: birthDate,
		Password:  string(hash),
		Status:    true,
		IsAdmin:   false,
		PageSize:  defaultPageSize,
	}
	if err := s.users.CreateAssigningID(u); err != nil {
		// a concurrent registration can still win the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, "User already exists")
		}
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	return u, nil
}

// Login verifies credentials. Unknown user and wrong password produce the
// same response so the caller cannot tell which one failed.
func (s *AuthService) Login(userName, password string) (*models.User, error) {
	u, err := s.users.FindByUserName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Validation, "Invalid credentials")
		}
		return nil, apperr.Wrap(apperr.Internal, "Server error", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, apperr.New(apperr.Validation, "Invalid credentials")
	}
	return u, nil
}

// EnsureAdmin creates the seeded admin account when no admin exists yet.
func (s *AuthService) EnsureAdmin(password string) error {
	count, err := s.users.CountAdmins()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.CreateAssigningID(&models.User{
		UserName:  "admin",
		FirstName: "System",
		LastName:  "Admin",
		Email:     "admin@example.com",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Password:  string(hash),
		Status:    true,
		IsAdmin:   true,
		PageSize:  50,
	})
}

func parseBirthDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
