package repositories

import (
	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/gorm"
)

func CreateGrade(db *gorm.DB, grade *models.Grade) error {
	return db.Omit("Enrollment").Create(grade).Error
}

func ListGrades(db *gorm.DB, page Page) ([]models.Grade, error) {
	grades := []models.Grade{}
	err := db.Scopes(page.Scope).Order("id").Find(&grades).Error
	return grades, err
}

func FindGradeByID(db *gorm.DB, id uint) (models.Grade, error) {
	var grade models.Grade
	err := db.First(&grade, "id = ?", id).Error
	return grade, err
}

func FindGradeByEnrollment(db *gorm.DB, enrollmentID uint) (models.Grade, error) {
	var grade models.Grade
	err := db.First(&grade, "enrollment_id = ?", enrollmentID).Error
	return grade, err
}

func ListGradesByEnrollments(db *gorm.DB, enrollmentIDs []uint) ([]models.Grade, error) {
	grades := []models.Grade{}
	if len(enrollmentIDs) == 0 {
		return grades, nil
	}
	err := db.Where("enrollment_id IN ?", enrollmentIDs).Find(&grades).Error
	return grades, err
}

// UpdateGradeMarks writes marks and the derived letter together so the pair
// never diverges.
func UpdateGradeMarks(db *gorm.DB, grade *models.Grade, marks float64, finalGrade string) error {
	err := db.Model(grade).Updates(map[string]interface{}{
		"marks":       marks,
		"final_grade": finalGrade,
	}).Error
	if err != nil {
		return err
	}
	grade.Marks = marks
	grade.FinalGrade = finalGrade
	return nil
}

func CountGradesByEnrollment(db *gorm.DB, enrollmentID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Grade{}).Where("enrollment_id = ?", enrollmentID).Count(&count).Error
	return count, err
}

func DeleteGrade(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&models.Grade{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// GradeReportRow is one line of the grade export.
type GradeReportRow struct {
	GradeID      uint
	StudentName  string
	StudentEmail string
	CourseCode   string
	CourseName   string
	Credits      int
	Marks        float64
	FinalGrade   string
}

func ListGradeReportRows(db *gorm.DB) ([]GradeReportRow, error) {
	rows := []GradeReportRow{}
	err := db.Table("grades AS g").
		Select(`g.id AS grade_id, s.name AS student_name, s.email AS student_email,
			c.course_code, c.course_name, c.credits, g.marks, g.final_grade`).
		Joins("JOIN enrollments e ON e.id = g.enrollment_id").
		Joins("JOIN students s ON s.id = e.student_id").
		Joins("JOIN courses c ON c.id = e.course_id").
		Order("g.id").
		Scan(&rows).Error
	return rows, err
}
