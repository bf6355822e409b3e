package repository

import (
	"context"

	"anoa.com/coursecms/internal/entity"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByID loads only the user's own columns.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// FindWithCourses also loads both course relations.
	FindWithCourses(ctx context.Context, id uint) (*entity.User, error)
	// FindWithCourseDetails loads both course relations and, for each
	// course, its students, instructors and assignments.
	FindWithCourseDetails(ctx context.Context, id uint) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindWithCourses(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).
		Preload("StudentCourses", byID).
		Preload("InstructorCourses", byID).
		First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindWithCourseDetails(ctx context.Context, id uint) (*entity.User, error) {
	query := r.db.WithContext(ctx)
	for _, rel := range []string{"StudentCourses", "InstructorCourses"} {
		query = query.
			Preload(rel, byID).
			Preload(rel+".Students", byID).
			Preload(rel+".Instructors", byID).
			Preload(rel+".Assignments", byID)
	}

	var user entity.User
	if err := query.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
