package entity

// Assignment always belongs to exactly one course. DueDate is stored as
// given, without interpreting it as a time.
type Assignment struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	DueDate  int64  `gorm:"not null" json:"due_date"`
	CourseID uint   `gorm:"not null;index" json:"course_id"`
}

func NewAssignment(title string, dueDate int64, courseID uint) *Assignment {
	return &Assignment{
		Title:    title,
		DueDate:  dueDate,
		CourseID: courseID,
	}
}
