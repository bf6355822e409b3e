package course

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/coursecms/internal/entity"
	"anoa.com/coursecms/internal/modules/course/dto"
	"anoa.com/coursecms/pkg/apperror"
	"anoa.com/coursecms/pkg/logger"
	"gorm.io/gorm"
)

func (s *courseService) findCourse(ctx context.Context, id uint) (*entity.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Course not found!")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find course %d: %w", id, err)
	}
	return course, nil
}

func (s *courseService) findUser(ctx context.Context, id *uint) (*entity.User, error) {
	if id == nil {
		return nil, apperror.NotFound("User not found!")
	}

	user, err := s.userRepo.FindByID(ctx, *id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found!")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", *id, err)
	}
	return user, nil
}

func isMemberType(memberType string) bool {
	return memberType == dto.MemberTypeStudent || memberType == dto.MemberTypeInstructor
}

// targetSet picks the relation a new member is added to. Unless routing by
// type is switched on, every member becomes an instructor, students included.
func (s *courseService) targetSet(memberType string) string {
	if s.routeByType {
		return memberType
	}
	return dto.MemberTypeInstructor
}

func (s *courseService) indexCourse(course *entity.Course) {
	if err := s.search.IndexCourse(course); err != nil {
		logger.Warn().Err(err).Uint("course_id", course.ID).Msg("failed to index course")
	}
}
