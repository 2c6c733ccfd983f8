package repositories

import (
	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/gorm"
)

func CreateEnrollment(db *gorm.DB, enrollment *models.Enrollment) error {
	return db.Omit("Student", "Course").Create(enrollment).Error
}

func ListEnrollments(db *gorm.DB, page Page) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	err := db.Scopes(page.Scope).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func FindEnrollmentByID(db *gorm.DB, id uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.First(&enrollment, "id = ?", id).Error
	return enrollment, err
}

func FindEnrollmentByStudentAndCourse(db *gorm.DB, studentID, courseID uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.First(&enrollment, "student_id = ? AND course_id = ?", studentID, courseID).Error
	return enrollment, err
}

func ListEnrollmentsByStudent(db *gorm.DB, studentID uint) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	err := db.Where("student_id = ?", studentID).Order("id").Find(&enrollments).Error
	return enrollments, err
}

// ListEnrollmentsWithCourseByStudent loads a student's enrollments together
// with their courses, ordered by enrollment date.
func ListEnrollmentsWithCourseByStudent(db *gorm.DB, studentID uint) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	err := db.Preload("Course").
		Where("student_id = ?", studentID).
		Order("enrollment_date, id").
		Find(&enrollments).Error
	return enrollments, err
}

func ListEnrollmentsByCourse(db *gorm.DB, courseID uint) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	err := db.Where("course_id = ?", courseID).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func CountEnrollmentsByStudent(db *gorm.DB, studentID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

func CountEnrollmentsByCourse(db *gorm.DB, courseID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func DeleteEnrollment(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Enrollment{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
