package repository

import (
	"context"

	"anoa.com/coursecms/internal/entity"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
	FindAll(ctx context.Context) ([]*entity.Course, error)
	AddStudent(ctx context.Context, course *entity.Course, user *entity.User) error
	AddInstructor(ctx context.Context, course *entity.Course, user *entity.User) error
	Delete(ctx context.Context, course *entity.Course) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *courseRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Students", byID).
		Preload("Instructors", byID).
		Preload("Assignments", byID)
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var course entity.Course
	if err := r.withRelations(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	var courses []*entity.Course
	if err := r.withRelations(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) AddStudent(ctx context.Context, course *entity.Course, user *entity.User) error {
	return r.db.WithContext(ctx).Model(course).Association("Students").Append(user)
}

func (r *courseRepository) AddInstructor(ctx context.Context, course *entity.Course, user *entity.User) error {
	return r.db.WithContext(ctx).Model(course).Association("Instructors").Append(user)
}

// Delete removes the course together with its assignments and both sets of
// enrollment rows. Users are untouched.
func (r *courseRepository) Delete(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Select("Assignments", "Students", "Instructors").Delete(course).Error
	})
}
