package repositories

import (
	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/gorm"
)

func CreateCourse(db *gorm.DB, course *models.Course) error {
	return db.Create(course).Error
}

func ListCourses(db *gorm.DB, page Page) ([]models.Course, error) {
	courses := []models.Course{}
	err := db.Scopes(page.Scope).Order("id").Find(&courses).Error
	return courses, err
}

func FindCourseByID(db *gorm.DB, id uint) (models.Course, error) {
	var course models.Course
	err := db.First(&course, "id = ?", id).Error
	return course, err
}

func FindCourseByCode(db *gorm.DB, code string) (models.Course, error) {
	var course models.Course
	err := db.First(&course, "course_code = ?", code).Error
	return course, err
}

func SaveCourse(db *gorm.DB, course *models.Course) error {
	return db.Save(course).Error
}

func DeleteCourse(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Course{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
