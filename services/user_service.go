package services

import (
	"strings"

	"plume/database"
	"plume/models"

	"gorm.io/gorm"
)

const minPasswordLength = 6

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user. The unique index on email is the authoritative
// duplicate guard; a violation surfaces as ErrConflict. Roles are a closed
// enum: anything but "author" registers as a reader.
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return nil, models.Invalid("name, email and password are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, models.Invalid("password must be at least %d characters", minPasswordLength)
	}

	user := &models.User{
		Name:  name,
		Email: email,
		Role:  models.ParseRole(req.Role),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, models.ErrConflict
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a credential pair. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, models.ErrNotAuthenticated
	}
	if !user.CheckPassword(password) {
		return nil, models.ErrNotAuthenticated
	}
	return &user, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, models.ErrNotFound
	}
	return &user, nil
}
