package dto

const (
	MemberTypeStudent    = "student"
	MemberTypeInstructor = "instructor"
)

type CreateCourseRequest struct {
	Code *string `json:"code" binding:"required"`
	Name *string `json:"name" binding:"required"`
}

// AddUserRequest is checked by the service, after the course lookup, so a
// missing course wins over a bad type.
type AddUserRequest struct {
	UserID *uint   `json:"user_id"`
	Type   *string `json:"type"`
}

type SearchCoursesQuery struct {
	Q string `form:"q"`
}
