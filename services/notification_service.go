package services

import (
	"context"
	"log"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/notifications"
	"gorm.io/gorm"
)

// NotifyGradeRecorded emails the student behind grade. Intended to run in its
// own goroutine; failures are logged only.
func NotifyGradeRecorded(db *gorm.DB, grade models.Grade, updated bool) {
	if notifications.EmailClient == nil {
		return
	}

	var enrollment models.Enrollment
	err := db.WithContext(context.Background()).
		Preload("Student").
		Preload("Course").
		First(&enrollment, "id = ?", grade.EnrollmentID).Error
	if err != nil {
		log.Printf("🔥 Failed to load enrollment %d for grade notification: %v", grade.EnrollmentID, err)
		return
	}
	if enrollment.Student == nil || enrollment.Course == nil {
		return
	}

	subject, body := notifications.GradeEmail(
		enrollment.Student.Name,
		enrollment.Course.CourseCode,
		enrollment.Course.CourseName,
		grade.Marks,
		grade.FinalGrade,
		updated,
	)
	notifications.SendEmail(enrollment.Student.Name, enrollment.Student.Email, subject, body)
}
