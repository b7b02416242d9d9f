package models

// Course is one row of the Courses table. It lives only for the
// duration of a single search request.
type Course struct {
	CourseID   string `json:"courseId" db:"CourseID"`
	Semester   string `json:"semester" db:"Semester"`
	CourseName string `json:"courseName" db:"CourseName"`
}
