package models

// Grade holds the marks for one enrollment. FinalGrade is always derived
// from Marks and is never written from request input.
type Grade struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	EnrollmentID uint    `gorm:"not null;uniqueIndex" json:"enrollment_id"`
	Marks        float64 `gorm:"not null;check:marks >= 0 AND marks <= 100" json:"marks"`
	FinalGrade   string  `gorm:"size:1" json:"final_grade"`

	Enrollment *Enrollment `gorm:"foreignKey:EnrollmentID;constraint:OnDelete:RESTRICT" json:"-"`
}
