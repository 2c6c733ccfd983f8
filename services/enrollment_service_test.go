package services

import (
	"testing"

	"github.com/anjiri1684/course_enrollment/database/dbtest"
	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnrollment(t *testing.T) {
	db := dbtest.Open(t)
	s := mustStudent(t, db, "Ada", "ada@example.edu")
	c := mustCourse(t, db, "Databases", "CS305", 4)

	e, err := CreateEnrollment(ctx, db, EnrollmentInput{StudentID: s.ID, CourseID: c.ID, EnrollmentDate: "2024-01-15"})
	require.NoError(t, err)
	assert.NotZero(t, e.ID)
	assert.Equal(t, "2024-01-15", e.EnrollmentDate.String())

	got, err := GetEnrollment(ctx, db, e.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.StudentID)
	assert.Equal(t, c.ID, got.CourseID)
	assert.Equal(t, "2024-01-15", got.EnrollmentDate.String())
}

func TestCreateEnrollmentMissingReferences(t *testing.T) {
	db := dbtest.Open(t)
	s := mustStudent(t, db, "Ada", "ada@example.edu")
	c := mustCourse(t, db, "Databases", "CS305", 4)

	_, err := CreateEnrollment(ctx, db, EnrollmentInput{StudentID: 999, CourseID: c.ID, EnrollmentDate: "2024-01-15"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Student not found", err.Error())

	_, err = CreateEnrollment(ctx, db, EnrollmentInput{StudentID: s.ID, CourseID: 999, EnrollmentDate: "2024-01-15"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Course not found", err.Error())

	// both missing: the student is checked first
	_, err = CreateEnrollment(ctx, db, EnrollmentInput{StudentID: 998, CourseID: 999, EnrollmentDate: "2024-01-15"})
	assert.Equal(t, "Student not found", err.Error())

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateEnrollmentDuplicatePairConflicts(t *testing.T) {
	db := dbtest.Open(t)
	s := mustStudent(t, db, "Ada", "ada@example.edu")
	c := mustCourse(t, db, "Databases", "CS305", 4)
	mustEnrollment(t, db, s.ID, c.ID)

	_, err := CreateEnrollment(ctx, db, EnrollmentInput{StudentID: s.ID, CourseID: c.ID, EnrollmentDate: "2024-02-01"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Student is already enrolled in this course", err.Error())
}

func TestCreateEnrollmentValidation(t *testing.T) {
	db := dbtest.Open(t)

	_, err := CreateEnrollment(ctx, db, EnrollmentInput{StudentID: 1, CourseID: 1, EnrollmentDate: "15/01/2024"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "enrollment_date must be a date formatted as YYYY-MM-DD", err.Error())

	_, err = CreateEnrollment(ctx, db, EnrollmentInput{CourseID: 1, EnrollmentDate: "2024-01-15"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "student_id is required", err.Error())
}

func TestListEnrollmentsByStudentAndCourse(t *testing.T) {
	db := dbtest.Open(t)
	ada := mustStudent(t, db, "Ada", "ada@example.edu")
	grace := mustStudent(t, db, "Grace", "grace@example.edu")
	dbs := mustCourse(t, db, "Databases", "CS305", 4)
	nets := mustCourse(t, db, "Networks", "CS340", 3)
	mustEnrollment(t, db, ada.ID, dbs.ID)
	mustEnrollment(t, db, ada.ID, nets.ID)
	mustEnrollment(t, db, grace.ID, dbs.ID)

	byAda, err := ListEnrollmentsByStudent(ctx, db, ada.ID)
	require.NoError(t, err)
	assert.Len(t, byAda, 2)

	byDBs, err := ListEnrollmentsByCourse(ctx, db, dbs.ID)
	require.NoError(t, err)
	assert.Len(t, byDBs, 2)

	byNobody, err := ListEnrollmentsByStudent(ctx, db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, byNobody)

	_, err = ListEnrollmentsByCourse(ctx, db, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := ListEnrollments(ctx, db, repositories.NewPage(0, 2))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteEnrollmentWithGradeConflicts(t *testing.T) {
	db := dbtest.Open(t)
	s := mustStudent(t, db, "Ada", "ada@example.edu")
	c := mustCourse(t, db, "Databases", "CS305", 4)
	e := mustEnrollment(t, db, s.ID, c.ID)
	g, err := CreateGrade(ctx, db, GradeInput{EnrollmentID: e.ID, Marks: marks(88)})
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteEnrollment(ctx, db, e.ID), ErrConflict)

	require.NoError(t, DeleteGrade(ctx, db, g.ID))
	require.NoError(t, DeleteEnrollment(ctx, db, e.ID))
	assert.ErrorIs(t, DeleteEnrollment(ctx, db, e.ID), ErrNotFound)
}
