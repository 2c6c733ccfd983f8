package jobs

import (
	"testing"
	"time"

	"github.com/anjiri1684/course_enrollment/database/dbtest"
	"github.com/anjiri1684/course_enrollment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGrade(t *testing.T, db *gorm.DB, n int, marks float64, finalGrade string) models.Grade {
	t.Helper()

	student := models.Student{Name: "Student", Email: string(rune('a'+n)) + "@example.edu"}
	require.NoError(t, db.Create(&student).Error)
	course := models.Course{CourseName: "Course", CourseCode: "C" + string(rune('A'+n)), Credits: 3}
	require.NoError(t, db.Create(&course).Error)
	enrollment := models.Enrollment{StudentID: student.ID, CourseID: course.ID, EnrollmentDate: models.NewDate(testDate)}
	require.NoError(t, db.Omit("Student", "Course").Create(&enrollment).Error)
	grade := models.Grade{EnrollmentID: enrollment.ID, Marks: marks, FinalGrade: finalGrade}
	require.NoError(t, db.Omit("Enrollment").Create(&grade).Error)
	return grade
}

func TestReconcileFinalGradesFixesStaleLetters(t *testing.T) {
	db := dbtest.Open(t)
	ok := seedGrade(t, db, 0, 95, "A")
	stale := seedGrade(t, db, 1, 75, "A")
	blank := seedGrade(t, db, 2, 85, "")

	fixed, err := ReconcileFinalGrades(db)
	require.NoError(t, err)
	assert.Equal(t, 2, fixed)

	for id, want := range map[uint]string{ok.ID: "A", stale.ID: "C", blank.ID: "B"} {
		var got models.Grade
		require.NoError(t, db.First(&got, id).Error)
		assert.Equal(t, want, got.FinalGrade, "grade %d", id)
	}
}

func TestReconcileFinalGradesNoop(t *testing.T) {
	db := dbtest.Open(t)
	seedGrade(t, db, 0, 59.5, "F")

	fixed, err := ReconcileFinalGrades(db)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}

func TestRunGradeAuditUsesGlobalDB(t *testing.T) {
	db := dbtest.UseGlobal(t)
	g := seedGrade(t, db, 0, 65, "B")

	RunGradeAudit()

	var got models.Grade
	require.NoError(t, db.First(&got, g.ID).Error)
	assert.Equal(t, "D", got.FinalGrade)
}

var testDate = mustDate("2024-09-01")

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
