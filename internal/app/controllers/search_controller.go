package controllers

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursesearch/internal/app/repositories"
	"github.com/yigit/coursesearch/internal/app/views"
	"github.com/yigit/coursesearch/internal/middleware"
	"github.com/yigit/coursesearch/internal/pkg/apperrors"
)

// SemesterField is the form field carrying the semester to search for
const SemesterField = "semester"

// CourseFinder looks up the courses offered in a semester
type CourseFinder interface {
	FindBySemester(ctx context.Context, semester string) (*repositories.CourseCursor, error)
}

// SearchController handles the course search form
type SearchController struct {
	courses CourseFinder
	logger  zerolog.Logger
}

// NewSearchController creates a new SearchController
func NewSearchController(courses CourseFinder, logger zerolog.Logger) *SearchController {
	return &SearchController{
		courses: courses,
		logger:  logger,
	}
}

// SearchCourses renders the courses for the posted semester as HTML.
// Store failures are reported inside the page; the status is always 200.
func (c *SearchController) SearchCourses(ctx *gin.Context) {
	semester := ctx.PostForm(SemesterField)
	log := c.logger.With().
		Str("requestId", middleware.GetRequestID(ctx)).
		Str(SemesterField, semester).
		Logger()
	// The store layer logs through zerolog.Ctx, so it inherits the request ID
	reqCtx := log.WithContext(ctx.Request.Context())

	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)

	var content templ.Component
	cursor, err := c.courses.FindBySemester(reqCtx, semester)
	if err != nil {
		if !apperrors.IsStoreError(err) {
			// Only one error kind ever reaches the page
			err = apperrors.NewStoreError("search courses", err)
		}
		log.Warn().Err(err).Msg("Course search failed")
		content = views.ErrorMessage(err)
	} else {
		defer func() {
			if err := cursor.Close(); err != nil {
				log.Warn().Err(err).Msg("Error releasing course store connection")
			}
		}()
		content = views.CourseList(cursor)
	}

	if err := views.Page(content).Render(reqCtx, ctx.Writer); err != nil {
		log.Debug().Err(err).Msg("Failed to write search response")
		return
	}

	if cursor != nil {
		if err := cursor.Err(); err != nil {
			log.Warn().Err(err).Msg("Course search interrupted while reading rows")
		}
	}
}
