package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lokalku/lokalku/internal/crud"
	"github.com/lokalku/lokalku/internal/domain"
)

// Service exposes account management operations. Route-level guards
// restrict them to admins.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, q crud.Query) (*crud.Page[domain.User], error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id string) error
}

type userService struct {
	repo domain.UserRepository
}

// NewUserService creates a new account service with the given repository.
func NewUserService(repo domain.UserRepository) Service {
	return &userService{repo: repo}
}

// CreateUser hashes the password, builds a User, and persists it.
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "hash password", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "email already registered", err)
		}
		return nil, err
	}
	return user, nil
}

// GetUser retrieves an account by ID.
func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers returns a paginated list of accounts.
func (s *userService) ListUsers(ctx context.Context, q crud.Query) (*crud.Page[domain.User], error) {
	return s.repo.List(ctx, q)
}

// UpdateUser loads the existing account, applies changes, and persists them.
// An empty password in the request keeps the stored hash.
func (s *userService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Role = req.Role
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "email already registered", err)
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves, which
// keeps at least the acting admin around.
func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, id string) error {
	if actor.ID == id {
		return domain.NewAppError(domain.CodeValidation, "cannot delete your own account", nil)
	}
	return s.repo.Delete(ctx, id)
}
