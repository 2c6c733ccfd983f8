package services

import (
	"context"
	"testing"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func marks(m float64) *float64 { return &m }

func mustStudent(t *testing.T, db *gorm.DB, name, email string) models.Student {
	t.Helper()
	s, err := CreateStudent(ctx, db, StudentInput{Name: name, Email: email})
	require.NoError(t, err)
	return s
}

func mustCourse(t *testing.T, db *gorm.DB, name, code string, credits int) models.Course {
	t.Helper()
	c, err := CreateCourse(ctx, db, CourseInput{CourseName: name, CourseCode: code, Credits: credits})
	require.NoError(t, err)
	return c
}

func mustEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uint) models.Enrollment {
	t.Helper()
	e, err := CreateEnrollment(ctx, db, EnrollmentInput{StudentID: studentID, CourseID: courseID, EnrollmentDate: "2024-01-15"})
	require.NoError(t, err)
	return e
}
