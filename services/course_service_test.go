package services

import (
	"testing"

	"github.com/anjiri1684/course_enrollment/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourse(t *testing.T) {
	db := dbtest.Open(t)

	c, err := CreateCourse(ctx, db, CourseInput{CourseName: "Databases", CourseCode: "CS305", Credits: 4})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, 4, c.Credits)
}

func TestCreateCourseRules(t *testing.T) {
	db := dbtest.Open(t)
	mustCourse(t, db, "Databases", "CS305", 4)

	_, err := CreateCourse(ctx, db, CourseInput{CourseName: "Other", CourseCode: "CS305", Credits: 3})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Course code already exists", err.Error())

	_, err = CreateCourse(ctx, db, CourseInput{CourseName: "Zero", CourseCode: "CS000", Credits: 0})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "credits must be greater than 0", err.Error())

	_, err = CreateCourse(ctx, db, CourseInput{CourseName: "Negative", CourseCode: "CS001", Credits: -2})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCourse(t *testing.T) {
	db := dbtest.Open(t)
	dbs := mustCourse(t, db, "Databases", "CS305", 4)
	mustCourse(t, db, "Networks", "CS340", 3)

	updated, err := UpdateCourse(ctx, db, dbs.ID, CourseInput{CourseName: "Database Systems", CourseCode: "CS305", Credits: 5})
	require.NoError(t, err)
	assert.Equal(t, "Database Systems", updated.CourseName)
	assert.Equal(t, 5, updated.Credits)

	_, err = UpdateCourse(ctx, db, dbs.ID, CourseInput{CourseName: "Database Systems", CourseCode: "CS340", Credits: 5})
	assert.ErrorIs(t, err, ErrConflict)

	got, err := GetCourse(ctx, db, dbs.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS305", got.CourseCode)
}

func TestDeleteCourseWithEnrollmentsConflicts(t *testing.T) {
	db := dbtest.Open(t)
	s := mustStudent(t, db, "Ada", "ada@example.edu")
	c := mustCourse(t, db, "Databases", "CS305", 4)
	mustEnrollment(t, db, s.ID, c.ID)

	assert.ErrorIs(t, DeleteCourse(ctx, db, c.ID), ErrConflict)

	empty := mustCourse(t, db, "Networks", "CS340", 3)
	require.NoError(t, DeleteCourse(ctx, db, empty.ID))
	assert.ErrorIs(t, DeleteCourse(ctx, db, empty.ID), ErrNotFound)
}
