package entity

type User struct {
	ID                uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string   `gorm:"not null" json:"name"`
	NetID             string   `gorm:"column:netid;not null" json:"netid"`
	StudentCourses    []Course `gorm:"many2many:course_students" json:"student_courses"`
	InstructorCourses []Course `gorm:"many2many:course_instructors" json:"instructor_courses"`
}

func NewUser(name, netID string) *User {
	return &User{
		Name:  name,
		NetID: netID,
	}
}

// BothCourses returns student courses followed by instructor courses. It
// reads whatever relations were preloaded and is never stored.
func (u *User) BothCourses() []Course {
	courses := make([]Course, 0, len(u.StudentCourses)+len(u.InstructorCourses))
	courses = append(courses, u.StudentCourses...)
	courses = append(courses, u.InstructorCourses...)
	return courses
}
