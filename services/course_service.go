package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/repositories"
	"gorm.io/gorm"
)

const msgCourseCodeTaken = "Course code already exists"

type CourseInput struct {
	CourseName string `json:"course_name" validate:"required,max=255"`
	CourseCode string `json:"course_code" validate:"required,max=50"`
	Credits    int    `json:"credits" validate:"gt=0"`
}

func (in CourseInput) normalized() CourseInput {
	return CourseInput{
		CourseName: strings.TrimSpace(in.CourseName),
		CourseCode: strings.TrimSpace(in.CourseCode),
		Credits:    in.Credits,
	}
}

func CreateCourse(ctx context.Context, db *gorm.DB, input CourseInput) (models.Course, error) {
	input = input.normalized()
	if err := validateInput(input); err != nil {
		return models.Course{}, err
	}

	course := models.Course{
		CourseName: input.CourseName,
		CourseCode: input.CourseCode,
		Credits:    input.Credits,
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCourseCodeFree(tx, course.CourseCode, 0); err != nil {
			return err
		}
		if err := repositories.CreateCourse(tx, &course); err != nil {
			return storeConstraint(err, msgCourseCodeTaken, nil)
		}
		return nil
	})
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func ListCourses(ctx context.Context, db *gorm.DB, page repositories.Page) ([]models.Course, error) {
	courses, err := repositories.ListCourses(db.WithContext(ctx), page)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func GetCourse(ctx context.Context, db *gorm.DB, id uint) (models.Course, error) {
	return loadCourse(db.WithContext(ctx), id)
}

func UpdateCourse(ctx context.Context, db *gorm.DB, id uint, input CourseInput) (models.Course, error) {
	input = input.normalized()
	if err := validateInput(input); err != nil {
		return models.Course{}, err
	}

	var course models.Course
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if course, err = loadCourse(tx, id); err != nil {
			return err
		}
		if err := ensureCourseCodeFree(tx, input.CourseCode, id); err != nil {
			return err
		}

		course.CourseName = input.CourseName
		course.CourseCode = input.CourseCode
		course.Credits = input.Credits
		if err := repositories.SaveCourse(tx, &course); err != nil {
			return storeConstraint(err, msgCourseCodeTaken, nil)
		}
		return nil
	})
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func DeleteCourse(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadCourse(tx, id); err != nil {
			return err
		}

		count, err := repositories.CountEnrollmentsByCourse(tx, id)
		if err != nil {
			return fmt.Errorf("count enrollments for course %d: %w", id, err)
		}
		if count > 0 {
			return conflictError("Course has enrollments; delete them first")
		}

		if _, err := repositories.DeleteCourse(tx, id); err != nil {
			return storeConstraint(err, "", conflictError("Course is still referenced"))
		}
		return nil
	})
}

func loadCourse(db *gorm.DB, id uint) (models.Course, error) {
	course, err := repositories.FindCourseByID(db, id)
	ok, err := found(err)
	if err != nil {
		return models.Course{}, fmt.Errorf("find course %d: %w", id, err)
	}
	if !ok {
		return models.Course{}, notFoundError("Course not found")
	}
	return course, nil
}

func ensureCourseCodeFree(tx *gorm.DB, code string, selfID uint) error {
	existing, err := repositories.FindCourseByCode(tx, code)
	ok, err := found(err)
	if err != nil {
		return fmt.Errorf("find course by code: %w", err)
	}
	if ok && existing.ID != selfID {
		return conflictError(msgCourseCodeTaken)
	}
	return nil
}
