package user

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/coursecms/internal/entity"
	"anoa.com/coursecms/internal/metrics"
	activity "anoa.com/coursecms/internal/modules/activity/service"
	"anoa.com/coursecms/internal/modules/user/dto"
	"anoa.com/coursecms/internal/modules/user/repository"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*commonDto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*commonDto.UserResponse, error)
	GetUserExpanded(ctx context.Context, id uint) (*commonDto.UserExpandedResponse, error)
}

type userService struct {
	repo      repository.UserRepository
	publisher activity.Publisher
}

func NewUserService(repo repository.UserRepository, publisher activity.Publisher) UserService {
	return &userService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*commonDto.UserResponse, error) {
	if req.Name == nil || req.NetID == nil {
		return nil, apperror.MissingField("missing a field")
	}

	user := entity.NewUser(*req.Name, *req.NetID)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.EntitiesCreated.WithLabelValues("user").Inc()
	s.publisher.Publish(ctx, activity.Event{Type: activity.UserCreated, UserID: user.ID})

	resp := user.Serialize()
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*commonDto.UserResponse, error) {
	user, err := notFound(s.repo.FindWithCourses(ctx, id))
	if err != nil {
		return nil, err
	}

	resp := user.Serialize()
	return &resp, nil
}

func (s *userService) GetUserExpanded(ctx context.Context, id uint) (*commonDto.UserExpandedResponse, error) {
	user, err := notFound(s.repo.FindWithCourseDetails(ctx, id))
	if err != nil {
		return nil, err
	}

	resp := user.SerializeExpanded()
	return &resp, nil
}

func notFound(user *entity.User, err error) (*entity.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found!")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
