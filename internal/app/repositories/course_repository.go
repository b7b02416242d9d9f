package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/yigit/coursesearch/internal/app/models"
	"github.com/yigit/coursesearch/internal/db"
	"github.com/yigit/coursesearch/internal/pkg/apperrors"
)

// CourseRepository runs course lookups against the course store
type CourseRepository struct {
	connector db.Connector
	// Use squirrel instance with the driver's placeholder format
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(connector db.Connector) *CourseRepository {
	return &CourseRepository{
		connector: connector,
		sb:        squirrel.StatementBuilder.PlaceholderFormat(connector.Placeholder()),
	}
}

// bySemesterQuery builds the course lookup. The semester is always a bound
// argument and never part of the SQL text.
func (r *CourseRepository) bySemesterQuery(semester string) (string, []interface{}, error) {
	return r.sb.Select("CourseID", "Semester", "CourseName").
		From("Courses").
		Where(squirrel.Eq{"Semester": semester}).
		ToSql()
}

// FindBySemester opens a connection, runs the lookup and hands back a
// cursor that owns the connection. The caller must Close the cursor.
// Every failure is returned as *apperrors.StoreError, and the connection
// is already released when an error is returned.
func (r *CourseRepository) FindBySemester(ctx context.Context, semester string) (*CourseCursor, error) {
	sql, args, err := r.bySemesterQuery(semester)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Error building find courses by semester SQL")
		return nil, apperrors.NewStoreError("build course query", err)
	}

	conn, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("connect to course store", err)
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		if closeErr := conn.Close(ctx); closeErr != nil {
			zerolog.Ctx(ctx).Warn().Err(closeErr).Msg("Error closing course store connection after failed query")
		}
		return nil, apperrors.NewStoreError("query courses", err)
	}

	return &CourseCursor{ctx: ctx, conn: conn, rows: rows}, nil
}

// CourseCursor is a lazy, single-pass sequence of courses in the order the
// store returned them. It is not safe for concurrent use.
type CourseCursor struct {
	ctx     context.Context
	conn    db.Conn
	rows    db.Rows
	current models.Course
	err     error
	closed  bool
}

// Next advances to the next course. It returns false when the result set
// is exhausted, when a row cannot be read, or after Close.
func (c *CourseCursor) Next() bool {
	if c.closed || c.err != nil {
		return false
	}
	if !c.rows.Next() {
		return false
	}

	var course models.Course
	if err := c.rows.Scan(&course.CourseID, &course.Semester, &course.CourseName); err != nil {
		c.err = apperrors.NewStoreError("read course row", err)
		return false
	}
	c.current = course
	return true
}

// Course returns the course at the current position
func (c *CourseCursor) Course() models.Course {
	return c.current
}

// Err returns the first error met while iterating, as a StoreError
func (c *CourseCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	if err := c.rows.Err(); err != nil {
		c.err = apperrors.NewStoreError("read course rows", err)
	}
	return c.err
}

// Close releases the result set and then the connection. It is safe to
// call more than once.
func (c *CourseCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.rows.Close()
	if err := c.conn.Close(c.ctx); err != nil {
		return fmt.Errorf("failed to close course store connection: %w", err)
	}
	return nil
}
