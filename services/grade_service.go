package services

import (
	"context"
	"fmt"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/repositories"
	"github.com/anjiri1684/course_enrollment/utils"
	"gorm.io/gorm"
)

const (
	msgMarksRange    = "Marks must be between 0 and 100"
	msgAlreadyGraded = "Grade already exists for this enrollment. Use update instead."
)

// GradeInput is the create body. A final_grade sent by the client is not
// part of it: the letter is always derived from marks.
type GradeInput struct {
	EnrollmentID uint     `json:"enrollment_id" validate:"required"`
	Marks        *float64 `json:"marks" validate:"required"`
}

type GradeUpdateInput struct {
	Marks *float64 `json:"marks" validate:"required"`
}

func CreateGrade(ctx context.Context, db *gorm.DB, input GradeInput) (models.Grade, error) {
	if err := validateInput(input); err != nil {
		return models.Grade{}, err
	}
	marks := *input.Marks
	if !utils.MarksInRange(marks) {
		return models.Grade{}, validationError(msgMarksRange)
	}

	grade := models.Grade{
		EnrollmentID: input.EnrollmentID,
		Marks:        marks,
		FinalGrade:   utils.CalculateFinalGrade(marks),
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadEnrollment(tx, input.EnrollmentID); err != nil {
			return err
		}

		_, err := repositories.FindGradeByEnrollment(tx, input.EnrollmentID)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("find grade for enrollment %d: %w", input.EnrollmentID, err)
		}
		if exists {
			return conflictError(msgAlreadyGraded)
		}

		if err := repositories.CreateGrade(tx, &grade); err != nil {
			return storeConstraint(err, msgAlreadyGraded, notFoundError("Enrollment not found"))
		}
		return nil
	})
	if err != nil {
		return models.Grade{}, err
	}
	return grade, nil
}

func ListGrades(ctx context.Context, db *gorm.DB, page repositories.Page) ([]models.Grade, error) {
	grades, err := repositories.ListGrades(db.WithContext(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

func GetGrade(ctx context.Context, db *gorm.DB, id uint) (models.Grade, error) {
	return loadGrade(db.WithContext(ctx), id)
}

func GetGradeByEnrollment(ctx context.Context, db *gorm.DB, enrollmentID uint) (models.Grade, error) {
	var grade models.Grade
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadEnrollment(tx, enrollmentID); err != nil {
			return err
		}

		var err error
		grade, err = repositories.FindGradeByEnrollment(tx, enrollmentID)
		ok, err := found(err)
		if err != nil {
			return fmt.Errorf("find grade for enrollment %d: %w", enrollmentID, err)
		}
		if !ok {
			return notFoundError("Grade not found for this enrollment")
		}
		return nil
	})
	if err != nil {
		return models.Grade{}, err
	}
	return grade, nil
}

// UpdateGrade replaces the marks of a grade and recomputes its letter.
func UpdateGrade(ctx context.Context, db *gorm.DB, id uint, input GradeUpdateInput) (models.Grade, error) {
	if err := validateInput(input); err != nil {
		return models.Grade{}, err
	}
	marks := *input.Marks
	if !utils.MarksInRange(marks) {
		return models.Grade{}, validationError(msgMarksRange)
	}

	var grade models.Grade
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if grade, err = loadGrade(tx, id); err != nil {
			return err
		}
		if err := repositories.UpdateGradeMarks(tx, &grade, marks, utils.CalculateFinalGrade(marks)); err != nil {
			return storeConstraint(err, msgAlreadyGraded, nil)
		}
		return nil
	})
	if err != nil {
		return models.Grade{}, err
	}
	return grade, nil
}

func DeleteGrade(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadGrade(tx, id); err != nil {
			return err
		}
		if _, err := repositories.DeleteGrade(tx, id); err != nil {
			return fmt.Errorf("delete grade %d: %w", id, err)
		}
		return nil
	})
}

func loadGrade(db *gorm.DB, id uint) (models.Grade, error) {
	grade, err := repositories.FindGradeByID(db, id)
	ok, err := found(err)
	if err != nil {
		return models.Grade{}, fmt.Errorf("find grade %d: %w", id, err)
	}
	if !ok {
		return models.Grade{}, notFoundError("Grade not found")
	}
	return grade, nil
}
