// Package dbtest builds throwaway SQLite course stores for tests.
package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// CourseRow is one row of the Courses table
type CourseRow struct {
	CourseID   string
	Semester   string
	CourseName string
}

const createCourses = `CREATE TABLE Courses (
	CourseID   TEXT NOT NULL,
	Semester   TEXT NOT NULL,
	CourseName TEXT NOT NULL
)`

// NewCourseStore creates a SQLite file holding a Courses table with rows
// inserted in the given order, and returns its path.
func NewCourseStore(t testing.TB, rows ...CourseRow) string {
	t.Helper()
	path := NewEmptyStore(t)

	handle, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer handle.Close()

	_, err = handle.Exec(createCourses)
	require.NoError(t, err)

	for _, r := range rows {
		_, err := handle.Exec(`INSERT INTO Courses (CourseID, Semester, CourseName) VALUES (?, ?, ?)`,
			r.CourseID, r.Semester, r.CourseName)
		require.NoError(t, err)
	}
	return path
}

// NewEmptyStore creates a SQLite file with no tables and returns its path
func NewEmptyStore(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.db")

	handle, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer handle.Close()

	// Force the file into existence
	_, err = handle.Exec(`PRAGMA user_version = 1`)
	require.NoError(t, err)
	return path
}

// SampleCourses is the fixture used across the store and handler tests
func SampleCourses() []CourseRow {
	return []CourseRow{
		{CourseID: "CS100", Semester: "Fall2023", CourseName: "Intro"},
		{CourseID: "MATH111", Semester: "Spring2024", CourseName: "Calculus I"},
		{CourseID: "CS200", Semester: "Fall2023", CourseName: "Data Structures"},
		{CourseID: "HIST101", Semester: "Fall'2023", CourseName: "Quoted Semester"},
	}
}
