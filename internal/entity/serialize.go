package entity

import "anoa.com/coursecms/pkg/dto"

func (c *Course) SimpleSerialize() dto.CourseSimpleResponse {
	return dto.CourseSimpleResponse{
		ID:   c.ID,
		Code: c.Code,
		Name: c.Name,
	}
}

// Serialize nests simple views of the course's students, instructors and
// assignments. Relations that were not preloaded serialize as empty lists.
func (c *Course) Serialize() dto.CourseResponse {
	students := make([]dto.UserSimpleResponse, 0, len(c.Students))
	for i := range c.Students {
		students = append(students, c.Students[i].SimpleSerialize())
	}

	instructors := make([]dto.UserSimpleResponse, 0, len(c.Instructors))
	for i := range c.Instructors {
		instructors = append(instructors, c.Instructors[i].SimpleSerialize())
	}

	assignments := make([]dto.AssignmentSimpleResponse, 0, len(c.Assignments))
	for i := range c.Assignments {
		assignments = append(assignments, c.Assignments[i].SimpleSerialize())
	}

	return dto.CourseResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Students:    students,
		Instructors: instructors,
		Assignments: assignments,
	}
}

func (u *User) SimpleSerialize() dto.UserSimpleResponse {
	return dto.UserSimpleResponse{
		ID:    u.ID,
		Name:  u.Name,
		NetID: u.NetID,
	}
}

func (u *User) Serialize() dto.UserResponse {
	both := u.BothCourses()
	courses := make([]dto.CourseSimpleResponse, 0, len(both))
	for i := range both {
		courses = append(courses, both[i].SimpleSerialize())
	}

	return dto.UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		NetID:   u.NetID,
		Courses: courses,
	}
}

func (u *User) SerializeExpanded() dto.UserExpandedResponse {
	both := u.BothCourses()
	courses := make([]dto.CourseResponse, 0, len(both))
	for i := range both {
		courses = append(courses, both[i].Serialize())
	}

	return dto.UserExpandedResponse{
		ID:      u.ID,
		Name:    u.Name,
		NetID:   u.NetID,
		Courses: courses,
	}
}

func (a *Assignment) SimpleSerialize() dto.AssignmentSimpleResponse {
	return dto.AssignmentSimpleResponse{
		ID:      a.ID,
		Title:   a.Title,
		DueDate: a.DueDate,
	}
}

// Serialize embeds the simple view of the parent course, which the caller
// has already looked up.
func (a *Assignment) Serialize(course *Course) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:      a.ID,
		Title:   a.Title,
		DueDate: a.DueDate,
	}
	if course != nil {
		simple := course.SimpleSerialize()
		resp.Course = &simple
	}
	return resp
}
