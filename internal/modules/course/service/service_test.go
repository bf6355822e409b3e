package course

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"anoa.com/coursecms/internal/entity"
	activity "anoa.com/coursecms/internal/modules/activity/service"
	"anoa.com/coursecms/internal/modules/course/dto"
	"anoa.com/coursecms/internal/modules/course/repository"
	userRepo "anoa.com/coursecms/internal/modules/user/repository"
	"anoa.com/coursecms/internal/testutil"
	"anoa.com/coursecms/pkg/apperror"
	commonDto "anoa.com/coursecms/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingSearch struct {
	indexed []uint
	deleted []uint
	fail    error
}

func (r *recordingSearch) IndexCourse(course *entity.Course) error {
	r.indexed = append(r.indexed, course.ID)
	return r.fail
}

func (r *recordingSearch) DeleteCourse(id uint) error {
	r.deleted = append(r.deleted, id)
	return r.fail
}

func (r *recordingSearch) SearchCourses(query string) ([]commonDto.CourseSimpleResponse, error) {
	return []commonDto.CourseSimpleResponse{{ID: 7, Code: query, Name: "hit"}}, nil
}

func (r *recordingSearch) Enabled() bool { return true }

func newTestService(t *testing.T, opts Options) (CourseService, *gorm.DB, *recordingSearch) {
	db := testutil.NewDB(t)
	search := &recordingSearch{}
	svc := NewCourseService(
		repository.NewCourseRepository(db),
		userRepo.NewUserRepository(db),
		activity.NewPublisher(nil),
		search,
		opts,
	)
	return svc, db, search
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func mustCreateUser(t *testing.T, db *gorm.DB, name string) *entity.User {
	t.Helper()
	u := entity.NewUser(name, name+"1")
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestCreateCourseIndexesDocument(t *testing.T) {
	svc, _, search := newTestService(t, Options{})

	created, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{Code: strPtr("CS1"), Name: strPtr("Intro")})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, []uint{1}, search.indexed)
}

func TestCreateCourseSurvivesIndexFailure(t *testing.T) {
	svc, _, search := newTestService(t, Options{})
	search.fail = errors.New("meili down")

	created, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{Code: strPtr("CS1"), Name: strPtr("Intro")})
	require.NoError(t, err)
	assert.Equal(t, "CS1", created.Code)
}

func TestCreateCourseRejectsNilFields(t *testing.T) {
	svc, db, _ := newTestService(t, Options{})

	_, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{Code: strPtr("CS1")})
	assert.ErrorIs(t, err, apperror.ErrMissingField)

	var n int64
	require.NoError(t, db.Model(&entity.Course{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeleteCourseReturnsSnapshotAndUnindexes(t *testing.T) {
	svc, db, search := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: strPtr("CS1"), Name: strPtr("Intro")})
	require.NoError(t, err)
	u := mustCreateUser(t, db, "bob")
	_, err = svc.AddUserToCourse(ctx, 1, dto.AddUserRequest{UserID: uintPtr(u.ID), Type: strPtr("student")})
	require.NoError(t, err)
	require.NoError(t, db.Create(entity.NewAssignment("HW1", 10, 1)).Error)

	snapshot, err := svc.DeleteCourse(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, snapshot.Instructors, 1)
	assert.Len(t, snapshot.Assignments, 1)
	assert.Equal(t, []uint{1}, search.deleted)

	_, err = svc.GetCourse(ctx, 1)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	var users int64
	require.NoError(t, db.Model(&entity.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestAddUserCheckOrder(t *testing.T) {
	svc, db, _ := newTestService(t, Options{})
	ctx := context.Background()

	// Unknown course wins over a bad type.
	_, err := svc.AddUserToCourse(ctx, 5, dto.AddUserRequest{Type: strPtr("ta")})
	assert.Equal(t, http.StatusNotFound, apperror.MapErrorToStatus(err))

	_, err = svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: strPtr("CS1"), Name: strPtr("Intro")})
	require.NoError(t, err)

	// Bad type wins over an unknown user.
	_, err = svc.AddUserToCourse(ctx, 1, dto.AddUserRequest{UserID: uintPtr(99), Type: strPtr("ta")})
	assert.ErrorIs(t, err, apperror.ErrInvalidType)

	_, err = svc.AddUserToCourse(ctx, 1, dto.AddUserRequest{UserID: uintPtr(99), Type: strPtr("student")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.AddUserToCourse(ctx, 1, dto.AddUserRequest{Type: strPtr("student")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	u := mustCreateUser(t, db, "ann")
	updated, err := svc.AddUserToCourse(ctx, 1, dto.AddUserRequest{UserID: uintPtr(u.ID), Type: strPtr("instructor")})
	require.NoError(t, err)
	assert.Equal(t, []commonDto.UserSimpleResponse{{ID: u.ID, Name: "ann", NetID: "ann1"}}, updated.Instructors)
}

func TestAddUserRouteByType(t *testing.T) {
	tests := []struct {
		name        string
		routeByType bool
		memberType  string
		students    int
		instructors int
	}{
		{"student lands in instructors by default", false, "student", 0, 1},
		{"instructor by default", false, "instructor", 0, 1},
		{"student routed when enabled", true, "student", 1, 0},
		{"instructor routed when enabled", true, "instructor", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db, _ := newTestService(t, Options{RouteByType: tt.routeByType})
			ctx := context.Background()

			_, err := svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: strPtr("CS1"), Name: strPtr("Intro")})
			require.NoError(t, err)
			u := mustCreateUser(t, db, "bob")

			updated, err := svc.AddUserToCourse(ctx, 1, dto.AddUserRequest{UserID: uintPtr(u.ID), Type: strPtr(tt.memberType)})
			require.NoError(t, err)
			assert.Len(t, updated.Students, tt.students)
			assert.Len(t, updated.Instructors, tt.instructors)
		})
	}
}

func TestSearchCoursesDelegates(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})

	resp, err := svc.SearchCourses(context.Background(), "CS")
	require.NoError(t, err)
	assert.Equal(t, []commonDto.CourseSimpleResponse{{ID: 7, Code: "CS", Name: "hit"}}, resp.Courses)
}
