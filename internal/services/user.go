package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/models"
	"github.com/GregMSThompson/expense-tracker/pkg/logger"
)

type userProfileStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	store    userProfileStore
	clockNow func() time.Time
}

func NewUserService(store userProfileStore) *userService {
	return &userService{store: store, clockNow: time.Now}
}

// Register creates the profile document for a freshly authenticated user.
// The uid and email come from the verified token, never from the request body.
func (s *userService) Register(ctx context.Context, uid, email, first, last string) (*models.User, error) {
	log := logger.FromContext(ctx)

	now := s.clockNow()
	user := &models.User{
		UID:       uid,
		Email:     email,
		FirstName: first,
		LastName:  last,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user profile", "error", err)
		return nil, err
	}

	log.Info("user registered", "first_name", first, "last_name", last)
	return user, nil
}

func (s *userService) Profile(ctx context.Context, uid string) (*models.User, error) {
	return s.store.GetUser(ctx, uid)
}

// UpdateProfile changes the mutable name fields. Empty strings clear them.
func (s *userService) UpdateProfile(ctx context.Context, uid, first, last string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.FirstName = first
	user.LastName = last
	user.UpdatedAt = s.clockNow()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
