package models

import "time"

// Transcript records a published transcript document. Rows go away with
// their student.
type Transcript struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	Reference   string    `gorm:"size:10;not null;uniqueIndex" json:"reference"`
	DocumentURL string    `gorm:"type:text;not null" json:"document_url"`
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}
