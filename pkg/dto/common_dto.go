package dto

// Simple views carry only an entity's own scalar fields so they can be
// embedded in other responses without recursion.

type CourseSimpleResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type UserSimpleResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netid"`
}

type AssignmentSimpleResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	DueDate int64  `json:"due_date"`
}

type CourseResponse struct {
	ID          uint                       `json:"id"`
	Code        string                     `json:"code"`
	Name        string                     `json:"name"`
	Students    []UserSimpleResponse       `json:"students"`
	Instructors []UserSimpleResponse       `json:"instructors"`
	Assignments []AssignmentSimpleResponse `json:"assignments"`
}

type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

type CourseSearchResponse struct {
	Courses []CourseSimpleResponse `json:"courses"`
}

type UserResponse struct {
	ID      uint                   `json:"id"`
	Name    string                 `json:"name"`
	NetID   string                 `json:"netid"`
	Courses []CourseSimpleResponse `json:"courses"`
}

// UserExpandedResponse nests full course views instead of simple ones.
type UserExpandedResponse struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	NetID   string           `json:"netid"`
	Courses []CourseResponse `json:"courses"`
}

type AssignmentResponse struct {
	ID      uint                  `json:"id"`
	Title   string                `json:"title"`
	DueDate int64                 `json:"due_date"`
	Course  *CourseSimpleResponse `json:"course"`
}

type GetByIDRequest struct {
	ID uint `uri:"id" binding:"required"`
}
