package user

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

const minPasswordLength = 8

// hashCost is the bcrypt cost used for new password hashes.
var hashCost = bcrypt.DefaultCost

// userService implements domain.UserService.
type userService struct {
	repo   domain.UserRepository
	engine *table.Engine
}

// NewUserService creates a new UserService with the given repository.
func NewUserService(repo domain.UserRepository, engine *table.Engine) domain.UserService {
	return &userService{repo: repo, engine: engine}
}

// CreateUser validates input, hashes the password and persists the user.
func (s *userService) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "password is required", nil)
	}

	user := &domain.User{}
	if err := apply(user, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers runs q over every user.
func (s *userService) ListUsers(ctx context.Context, q table.Query) (*domain.PageResult[domain.User], error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return pkg.RunList(s.engine, rows, catalog.UserSchema, catalog.UserRecord, q)
}

// UpdateUser loads the existing user, applies changes, and persists them.
func (s *userService) UpdateUser(ctx context.Context, id uint, in domain.UserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(user, in); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetUserStatus activates or deactivates a user.
func (s *userService) SetUserStatus(ctx context.Context, id uint, status string) (*domain.User, error) {
	st, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Status = st
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by ID.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// apply validates in and copies it onto user. A non-empty password replaces
// the stored hash.
func apply(user *domain.User, in domain.UserInput) error {
	name := strings.TrimSpace(in.Name)
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.TrimSpace(in.Email)

	if err := validateNameEmail(name, email); err != nil {
		return err
	}
	if username == "" {
		return domain.NewAppError(domain.CodeValidation, "username is required", nil)
	}
	role, err := normalizeRole(in.Role)
	if err != nil {
		return err
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return err
	}

	if in.Password != "" {
		if utf8.RuneCountInString(in.Password) < minPasswordLength {
			return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
		if err != nil {
			return domain.NewAppError(domain.CodeValidation, "password cannot be hashed", err)
		}
		user.PasswordHash = string(hash)
	}

	user.Name = name
	user.Username = username
	user.Email = email
	user.Phone = strings.TrimSpace(in.Phone)
	user.Role = role
	user.Status = status
	return nil
}

func normalizeRole(role string) (string, error) {
	switch r := strings.ToLower(strings.TrimSpace(role)); r {
	case "":
		return domain.RoleCashier, nil
	case domain.RoleAdmin, domain.RoleManager, domain.RoleCashier:
		return r, nil
	default:
		return "", domain.NewAppError(domain.CodeValidation, "invalid role: "+role, nil)
	}
}

func normalizeStatus(status string) (string, error) {
	switch st := strings.ToUpper(strings.TrimSpace(status)); st {
	case "":
		return domain.UserActive, nil
	case domain.UserActive, domain.UserInactive:
		return st, nil
	default:
		return "", domain.NewAppError(domain.CodeValidation, "invalid status: "+status, nil)
	}
}

// validateNameEmail checks the name length and the email address format.
func validateNameEmail(name, email string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) < 2 {
		return domain.NewAppError(domain.CodeValidation, "name must be at least 2 characters", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}

	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return nil
}
