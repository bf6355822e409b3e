package course

import (
	"context"
	"fmt"

	"anoa.com/coursecms/internal/entity"
	"anoa.com/coursecms/internal/metrics"
	activity "anoa.com/coursecms/internal/modules/activity/service"
	"anoa.com/coursecms/internal/modules/course/dto"
	"anoa.com/coursecms/internal/modules/course/repository"
	search "anoa.com/coursecms/internal/modules/search/service"
	userRepo "anoa.com/coursecms/internal/modules/user/repository"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"anoa.com/coursecms/pkg/logger"
)

type CourseService interface {
	ListCourses(ctx context.Context) (*commonDto.CourseListResponse, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*commonDto.CourseResponse, error)
	GetCourse(ctx context.Context, id uint) (*commonDto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id uint) (*commonDto.CourseResponse, error)
	AddUserToCourse(ctx context.Context, id uint, req dto.AddUserRequest) (*commonDto.CourseResponse, error)
	SearchCourses(ctx context.Context, query string) (*commonDto.CourseSearchResponse, error)
}

type Options struct {
	// RouteByType sends "student" members to the students set. When false,
	// every added member lands in the instructors set.
	RouteByType bool
}

type courseService struct {
	repo        repository.CourseRepository
	userRepo    userRepo.UserRepository
	publisher   activity.Publisher
	search      search.CourseSearchService
	routeByType bool
}

func NewCourseService(repo repository.CourseRepository, userRepo userRepo.UserRepository, publisher activity.Publisher, search search.CourseSearchService, opts Options) CourseService {
	return &courseService{
		repo:        repo,
		userRepo:    userRepo,
		publisher:   publisher,
		search:      search,
		routeByType: opts.RouteByType,
	}
}

func (s *courseService) ListCourses(ctx context.Context) (*commonDto.CourseListResponse, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	resp := &commonDto.CourseListResponse{
		Courses: make([]commonDto.CourseResponse, 0, len(courses)),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, course.Serialize())
	}
	return resp, nil
}

func (s *courseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*commonDto.CourseResponse, error) {
	if req.Code == nil || req.Name == nil {
		return nil, apperror.MissingField("missing a field")
	}

	course := entity.NewCourse(*req.Code, *req.Name)
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	metrics.EntitiesCreated.WithLabelValues("course").Inc()
	s.indexCourse(course)
	s.publisher.Publish(ctx, activity.Event{Type: activity.CourseCreated, CourseID: course.ID})

	resp := course.Serialize()
	return &resp, nil
}

func (s *courseService) GetCourse(ctx context.Context, id uint) (*commonDto.CourseResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := course.Serialize()
	return &resp, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id uint) (*commonDto.CourseResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := course.Serialize()
	if err := s.repo.Delete(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to delete course %d: %w", id, err)
	}

	metrics.CoursesDeleted.Inc()
	if err := s.search.DeleteCourse(id); err != nil {
		logger.Warn().Err(err).Uint("course_id", id).Msg("failed to remove course from search index")
	}
	s.publisher.Publish(ctx, activity.Event{Type: activity.CourseDeleted, CourseID: id})

	return &snapshot, nil
}

func (s *courseService) AddUserToCourse(ctx context.Context, id uint, req dto.AddUserRequest) (*commonDto.CourseResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type == nil || !isMemberType(*req.Type) {
		return nil, apperror.InvalidType("Type is invalid")
	}

	user, err := s.findUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	role := s.targetSet(*req.Type)
	if role == dto.MemberTypeStudent {
		err = s.repo.AddStudent(ctx, course, user)
	} else {
		err = s.repo.AddInstructor(ctx, course, user)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add user %d to course %d: %w", user.ID, course.ID, err)
	}

	metrics.Enrollments.WithLabelValues(role).Inc()
	s.publisher.Publish(ctx, activity.Event{
		Type:     activity.UserAddedToCourse,
		CourseID: course.ID,
		UserID:   user.ID,
		Role:     role,
	})

	updated, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := updated.Serialize()
	return &resp, nil
}

func (s *courseService) SearchCourses(ctx context.Context, query string) (*commonDto.CourseSearchResponse, error) {
	courses, err := s.search.SearchCourses(query)
	if err != nil {
		return nil, err
	}
	return &commonDto.CourseSearchResponse{Courses: courses}, nil
}
