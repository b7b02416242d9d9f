// Package views renders the course search response as streamed HTML.
// Components are plain templ.ComponentFunc values so output reaches the
// client row by row instead of after the whole result set is read.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yigit/coursesearch/internal/app/models"
)

// NoCoursesNotice is shown when a semester has no matching courses
const NoCoursesNotice = "No courses found for the selected semester."

// CourseIterator is the single-pass sequence CourseList consumes
type CourseIterator interface {
	Next() bool
	Course() models.Course
	Err() error
}

// Page wraps content in the document shell. The shell is written even
// when content fails, so the client always gets a complete document.
func Page(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<html><body>"); err != nil {
			return err
		}
		renderErr := content.Render(ctx, w)
		if _, err := io.WriteString(w, "</body></html>"); err != nil {
			return err
		}
		return renderErr
	})
}

// CourseList writes one list item per course in iteration order, followed
// by the empty-result notice when nothing was seen. A failure part way
// through closes the list and appends an error paragraph.
func CourseList(courses CourseIterator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h3>Course List:</h3><ul>"); err != nil {
			return err
		}

		found := false
		for courses.Next() {
			found = true
			if err := CourseItem(courses.Course()).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</ul>"); err != nil {
			return err
		}

		if err := courses.Err(); err != nil {
			return ErrorMessage(err).Render(ctx, w)
		}
		if !found {
			_, err := io.WriteString(w, "<p>"+NoCoursesNotice+"</p>")
			return err
		}
		return nil
	})
}

// CourseItem renders "<li>{CourseID} {Semester} {CourseName}</li>"
func CourseItem(course models.Course) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<li>"+
			templ.EscapeString(course.CourseID)+" "+
			templ.EscapeString(course.Semester)+" "+
			templ.EscapeString(course.CourseName)+"</li>")
		return err
	})
}

// ErrorMessage renders "<p>Error: {message}</p>"
func ErrorMessage(err error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, writeErr := io.WriteString(w, "<p>Error: "+templ.EscapeString(err.Error())+"</p>")
		return writeErr
	})
}
