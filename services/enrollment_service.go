package services

import (
	"context"
	"fmt"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/repositories"
	"gorm.io/gorm"
)

const msgAlreadyEnrolled = "Student is already enrolled in this course"

type EnrollmentInput struct {
	StudentID      uint   `json:"student_id" validate:"required"`
	CourseID       uint   `json:"course_id" validate:"required"`
	EnrollmentDate string `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
}

// CreateEnrollment checks, in order, that the student exists, the course
// exists and the pair is not enrolled yet.
func CreateEnrollment(ctx context.Context, db *gorm.DB, input EnrollmentInput) (models.Enrollment, error) {
	if err := validateInput(input); err != nil {
		return models.Enrollment{}, err
	}
	date, err := models.ParseDate(input.EnrollmentDate)
	if err != nil {
		return models.Enrollment{}, validationError("enrollment_date must be a date formatted as YYYY-MM-DD")
	}

	enrollment := models.Enrollment{
		StudentID:      input.StudentID,
		CourseID:       input.CourseID,
		EnrollmentDate: date,
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadStudent(tx, input.StudentID); err != nil {
			return err
		}
		if _, err := loadCourse(tx, input.CourseID); err != nil {
			return err
		}

		_, err := repositories.FindEnrollmentByStudentAndCourse(tx, input.StudentID, input.CourseID)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("find enrollment: %w", err)
		}
		if exists {
			return conflictError(msgAlreadyEnrolled)
		}

		if err := repositories.CreateEnrollment(tx, &enrollment); err != nil {
			return storeConstraint(err, msgAlreadyEnrolled, notFoundError("Student or course not found"))
		}
		return nil
	})
	if err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

func ListEnrollments(ctx context.Context, db *gorm.DB, page repositories.Page) ([]models.Enrollment, error) {
	enrollments, err := repositories.ListEnrollments(db.WithContext(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

func GetEnrollment(ctx context.Context, db *gorm.DB, id uint) (models.Enrollment, error) {
	return loadEnrollment(db.WithContext(ctx), id)
}

func ListEnrollmentsByStudent(ctx context.Context, db *gorm.DB, studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadStudent(tx, studentID); err != nil {
			return err
		}
		var err error
		if enrollments, err = repositories.ListEnrollmentsByStudent(tx, studentID); err != nil {
			return fmt.Errorf("list enrollments for student %d: %w", studentID, err)
		}
		return nil
	})
	return enrollments, err
}

func ListEnrollmentsByCourse(ctx context.Context, db *gorm.DB, courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadCourse(tx, courseID); err != nil {
			return err
		}
		var err error
		if enrollments, err = repositories.ListEnrollmentsByCourse(tx, courseID); err != nil {
			return fmt.Errorf("list enrollments for course %d: %w", courseID, err)
		}
		return nil
	})
	return enrollments, err
}

// DeleteEnrollment removes an enrollment that has not been graded.
func DeleteEnrollment(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadEnrollment(tx, id); err != nil {
			return err
		}

		count, err := repositories.CountGradesByEnrollment(tx, id)
		if err != nil {
			return fmt.Errorf("count grades for enrollment %d: %w", id, err)
		}
		if count > 0 {
			return conflictError("Enrollment has a grade; delete it first")
		}

		if _, err := repositories.DeleteEnrollment(tx, id); err != nil {
			return storeConstraint(err, "", conflictError("Enrollment is still referenced"))
		}
		return nil
	})
}

func loadEnrollment(db *gorm.DB, id uint) (models.Enrollment, error) {
	enrollment, err := repositories.FindEnrollmentByID(db, id)
	ok, err := found(err)
	if err != nil {
		return models.Enrollment{}, fmt.Errorf("find enrollment %d: %w", id, err)
	}
	if !ok {
		return models.Enrollment{}, notFoundError("Enrollment not found")
	}
	return enrollment, nil
}
