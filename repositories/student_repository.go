package repositories

import (
	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/gorm"
)

func CreateStudent(db *gorm.DB, student *models.Student) error {
	return db.Create(student).Error
}

func ListStudents(db *gorm.DB, page Page) ([]models.Student, error) {
	students := []models.Student{}
	err := db.Scopes(page.Scope).Order("id").Find(&students).Error
	return students, err
}

func FindStudentByID(db *gorm.DB, id uint) (models.Student, error) {
	var student models.Student
	err := db.First(&student, "id = ?", id).Error
	return student, err
}

func FindStudentByEmail(db *gorm.DB, email string) (models.Student, error) {
	var student models.Student
	err := db.First(&student, "email = ?", email).Error
	return student, err
}

func SaveStudent(db *gorm.DB, student *models.Student) error {
	return db.Save(student).Error
}

func DeleteStudent(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Student{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
