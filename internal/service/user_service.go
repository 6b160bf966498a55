package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"starwars-api/internal/cache"
	"starwars-api/internal/entities"
	"starwars-api/internal/models"
	"starwars-api/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*models.UserResponse, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
}

type userService struct {
	repo  repository.UserRepository
	cache readCache
}

// NewUserService creates a new user service. cacheClient may be nil.
func NewUserService(repo repository.UserRepository, cacheClient cache.Cache, ttl time.Duration) UserService {
	return &userService{
		repo:  repo,
		cache: newReadCache(cacheClient, ttl),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	var cached []models.UserResponse
	if s.cache.load(ctx, usersListKey, &cached) {
		return cached, nil
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.NewUserResponse(&users[i]))
	}
	s.cache.store(ctx, usersListKey, responses)
	return responses, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.UserResponse, error) {
	var cached models.UserResponse
	if s.cache.load(ctx, userKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	response := models.NewUserResponse(user)
	s.cache.store(ctx, userKey(id), response)
	return &response, nil
}

// CreateUser stores a new user with a bcrypt hash of the password. The user
// is active unless the request says otherwise.
func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:    *req.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.cache.invalidate(ctx, usersListKey)

	response := models.NewUserResponse(user)
	return &response, nil
}
