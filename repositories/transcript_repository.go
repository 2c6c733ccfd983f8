package repositories

import (
	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/gorm"
)

func CreateTranscript(db *gorm.DB, transcript *models.Transcript) error {
	return db.Omit("Student").Create(transcript).Error
}

func ListTranscriptsByStudent(db *gorm.DB, studentID uint) ([]models.Transcript, error) {
	transcripts := []models.Transcript{}
	err := db.Where("student_id = ?", studentID).Order("generated_at DESC").Find(&transcripts).Error
	return transcripts, err
}
