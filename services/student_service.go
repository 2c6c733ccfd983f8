package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/repositories"
	"gorm.io/gorm"
)

const msgEmailTaken = "Email already registered"

type StudentInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (in StudentInput) normalized() StudentInput {
	return StudentInput{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
	}
}

func CreateStudent(ctx context.Context, db *gorm.DB, input StudentInput) (models.Student, error) {
	input = input.normalized()
	if err := validateInput(input); err != nil {
		return models.Student{}, err
	}

	student := models.Student{Name: input.Name, Email: input.Email}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEmailFree(tx, student.Email, 0); err != nil {
			return err
		}
		if err := repositories.CreateStudent(tx, &student); err != nil {
			return storeConstraint(err, msgEmailTaken, nil)
		}
		return nil
	})
	if err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func ListStudents(ctx context.Context, db *gorm.DB, page repositories.Page) ([]models.Student, error) {
	students, err := repositories.ListStudents(db.WithContext(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func GetStudent(ctx context.Context, db *gorm.DB, id uint) (models.Student, error) {
	return loadStudent(db.WithContext(ctx), id)
}

func UpdateStudent(ctx context.Context, db *gorm.DB, id uint, input StudentInput) (models.Student, error) {
	input = input.normalized()
	if err := validateInput(input); err != nil {
		return models.Student{}, err
	}

	var student models.Student
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if student, err = loadStudent(tx, id); err != nil {
			return err
		}
		if err := ensureEmailFree(tx, input.Email, id); err != nil {
			return err
		}

		student.Name = input.Name
		student.Email = input.Email
		if err := repositories.SaveStudent(tx, &student); err != nil {
			return storeConstraint(err, msgEmailTaken, nil)
		}
		return nil
	})
	if err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// DeleteStudent removes a student that has no enrollments left.
func DeleteStudent(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadStudent(tx, id); err != nil {
			return err
		}

		count, err := repositories.CountEnrollmentsByStudent(tx, id)
		if err != nil {
			return fmt.Errorf("count enrollments for student %d: %w", id, err)
		}
		if count > 0 {
			return conflictError("Student has enrollments; delete them first")
		}

		if _, err := repositories.DeleteStudent(tx, id); err != nil {
			return storeConstraint(err, "", conflictError("Student is still referenced"))
		}
		return nil
	})
}

func loadStudent(db *gorm.DB, id uint) (models.Student, error) {
	student, err := repositories.FindStudentByID(db, id)
	ok, err := found(err)
	if err != nil {
		return models.Student{}, fmt.Errorf("find student %d: %w", id, err)
	}
	if !ok {
		return models.Student{}, notFoundError("Student not found")
	}
	return student, nil
}

// ensureEmailFree fails with a conflict when another student (any id other
// than selfID) already uses email.
func ensureEmailFree(tx *gorm.DB, email string, selfID uint) error {
	existing, err := repositories.FindStudentByEmail(tx, email)
	ok, err := found(err)
	if err != nil {
		return fmt.Errorf("find student by email: %w", err)
	}
	if ok && existing.ID != selfID {
		return conflictError(msgEmailTaken)
	}
	return nil
}
