package models

type Course struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CourseName string `gorm:"size:255;not null" json:"course_name"`
	CourseCode string `gorm:"size:50;not null;uniqueIndex" json:"course_code"`
	Credits    int    `gorm:"not null;check:credits > 0" json:"credits"`
}
