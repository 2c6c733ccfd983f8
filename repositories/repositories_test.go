package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/anjiri1684/course_enrollment/database/dbtest"
	"github.com/anjiri1684/course_enrollment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Skip: 0, Limit: DefaultLimit}, NewPage(-3, 0))
	assert.Equal(t, Page{Skip: 10, Limit: 25}, NewPage(10, 25))
	assert.Equal(t, Page{Skip: 0, Limit: MaxLimit}, NewPage(0, 10_000))
}

func TestStudentRoundTrip(t *testing.T) {
	db := dbtest.Open(t)

	s := models.Student{Name: "Ada", Email: "ada@example.edu"}
	require.NoError(t, CreateStudent(db, &s))

	byEmail, err := FindStudentByEmail(db, "ada@example.edu")
	require.NoError(t, err)
	assert.Equal(t, s.ID, byEmail.ID)

	_, err = FindStudentByID(db, s.ID+1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	n, err := DeleteStudent(db, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUniqueIndexesAreEnforcedByTheStore(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, CreateStudent(db, &models.Student{Name: "Ada", Email: "ada@example.edu"}))
	assert.Error(t, CreateStudent(db, &models.Student{Name: "Copy", Email: "ada@example.edu"}))

	require.NoError(t, CreateCourse(db, &models.Course{CourseName: "Databases", CourseCode: "CS305", Credits: 4}))
	assert.Error(t, CreateCourse(db, &models.Course{CourseName: "Copy", CourseCode: "CS305", Credits: 4}))
}

func TestEnrollmentConstraintsAreEnforcedByTheStore(t *testing.T) {
	db := dbtest.Open(t)
	s := models.Student{Name: "Ada", Email: "ada@example.edu"}
	require.NoError(t, CreateStudent(db, &s))
	c := models.Course{CourseName: "Databases", CourseCode: "CS305", Credits: 4}
	require.NoError(t, CreateCourse(db, &c))

	date := models.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	e := models.Enrollment{StudentID: s.ID, CourseID: c.ID, EnrollmentDate: date}
	require.NoError(t, CreateEnrollment(db, &e))

	assert.Error(t, CreateEnrollment(db, &models.Enrollment{StudentID: s.ID, CourseID: c.ID, EnrollmentDate: date}))
	assert.Error(t, CreateEnrollment(db, &models.Enrollment{StudentID: 999, CourseID: c.ID, EnrollmentDate: date}))

	found, err := FindEnrollmentByStudentAndCourse(db, s.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, found.ID)

	withCourse, err := ListEnrollmentsWithCourseByStudent(db, s.ID)
	require.NoError(t, err)
	require.Len(t, withCourse, 1)
	require.NotNil(t, withCourse[0].Course)
	assert.Equal(t, "CS305", withCourse[0].Course.CourseCode)
}

func TestGradeConstraintsAndReport(t *testing.T) {
	db := dbtest.Open(t)
	s := models.Student{Name: "Ada", Email: "ada@example.edu"}
	require.NoError(t, CreateStudent(db, &s))
	c := models.Course{CourseName: "Databases", CourseCode: "CS305", Credits: 4}
	require.NoError(t, CreateCourse(db, &c))
	e := models.Enrollment{StudentID: s.ID, CourseID: c.ID, EnrollmentDate: models.NewDate(time.Now())}
	require.NoError(t, CreateEnrollment(db, &e))

	g := models.Grade{EnrollmentID: e.ID, Marks: 75, FinalGrade: "C"}
	require.NoError(t, CreateGrade(db, &g))
	assert.Error(t, CreateGrade(db, &models.Grade{EnrollmentID: e.ID, Marks: 80, FinalGrade: "B"}))

	require.NoError(t, UpdateGradeMarks(db, &g, 85, "B"))
	assert.Equal(t, 85.0, g.Marks)
	stored, err := FindGradeByEnrollment(db, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", stored.FinalGrade)

	rows, err := ListGradeReportRows(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, GradeReportRow{
		GradeID:      g.ID,
		StudentName:  "Ada",
		StudentEmail: "ada@example.edu",
		CourseCode:   "CS305",
		CourseName:   "Databases",
		Credits:      4,
		Marks:        85,
		FinalGrade:   "B",
	}, rows[0])

	byEnrollment, err := ListGradesByEnrollments(db, nil)
	require.NoError(t, err)
	assert.Empty(t, byEnrollment)
}

func TestCheckConstraintsAreEnforcedByTheStore(t *testing.T) {
	db := dbtest.Open(t)

	assert.Error(t, CreateCourse(db, &models.Course{CourseName: "Zero", CourseCode: "CS000", Credits: 0}))
}
