package models

type Enrollment struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	StudentID      uint `gorm:"not null;uniqueIndex:idx_enrollment_student_course" json:"student_id"`
	CourseID       uint `gorm:"not null;uniqueIndex:idx_enrollment_student_course" json:"course_id"`
	EnrollmentDate Date `gorm:"not null" json:"enrollment_date"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT" json:"-"`
	Course  *Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:RESTRICT" json:"-"`
}
