package entity

// Course owns its assignments and has two independent user sets. A user may
// be in both sets of the same course.
type Course struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string       `gorm:"not null" json:"code"`
	Name        string       `gorm:"not null" json:"name"`
	Assignments []Assignment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"assignments"`
	Students    []User       `gorm:"many2many:course_students;constraint:OnDelete:CASCADE" json:"students"`
	Instructors []User       `gorm:"many2many:course_instructors;constraint:OnDelete:CASCADE" json:"instructors"`
}

func NewCourse(code, name string) *Course {
	return &Course{
		Code: code,
		Name: name,
	}
}
