package dto

// CreateAssignmentRequest is validated by the service once the parent course
// is known to exist.
type CreateAssignmentRequest struct {
	Title   *string `json:"title" validate:"required"`
	DueDate *int64  `json:"due_date" validate:"required"`
}
