package assignment

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/coursecms/internal/entity"
	"anoa.com/coursecms/internal/metrics"
	activity "anoa.com/coursecms/internal/modules/activity/service"
	"anoa.com/coursecms/internal/modules/assignment/dto"
	"anoa.com/coursecms/internal/modules/assignment/repository"
	courseRepo "anoa.com/coursecms/internal/modules/course/repository"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"anoa.com/coursecms/pkg/validator"
	"gorm.io/gorm"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, courseID uint, req dto.CreateAssignmentRequest) (*commonDto.AssignmentResponse, error)
	// CheckCourse reports a not-found error when courseID names no course.
	CheckCourse(ctx context.Context, courseID uint) error
}

type assignmentService struct {
	repo       repository.AssignmentRepository
	courseRepo courseRepo.CourseRepository
	publisher  activity.Publisher
}

func NewAssignmentService(repo repository.AssignmentRepository, courseRepo courseRepo.CourseRepository, publisher activity.Publisher) AssignmentService {
	return &assignmentService{
		repo:       repo,
		courseRepo: courseRepo,
		publisher:  publisher,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, courseID uint, req dto.CreateAssignmentRequest) (*commonDto.AssignmentResponse, error) {
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := validator.Struct(req); err != nil {
		return nil, apperror.MissingField("Missing field!")
	}

	assignment := entity.NewAssignment(*req.Title, *req.DueDate, course.ID)
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	metrics.EntitiesCreated.WithLabelValues("assignment").Inc()
	s.publisher.Publish(ctx, activity.Event{
		Type:         activity.AssignmentCreated,
		CourseID:     course.ID,
		AssignmentID: assignment.ID,
	})

	resp := assignment.Serialize(course)
	return &resp, nil
}

func (s *assignmentService) CheckCourse(ctx context.Context, courseID uint) error {
	_, err := s.findCourse(ctx, courseID)
	return err
}

func (s *assignmentService) findCourse(ctx context.Context, courseID uint) (*entity.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Course not found!")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find course %d: %w", courseID, err)
	}
	return course, nil
}
