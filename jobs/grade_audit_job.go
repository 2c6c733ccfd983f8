package jobs

import (
	"log"

	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/utils"
	"gorm.io/gorm"
)

const gradeAuditBatchSize = 200

// ReconcileFinalGrades rewrites every final_grade that no longer matches the
// letter derived from its marks and returns how many rows changed.
func ReconcileFinalGrades(db *gorm.DB) (int, error) {
	var stale []models.Grade
	var batch []models.Grade

	result := db.Model(&models.Grade{}).FindInBatches(&batch, gradeAuditBatchSize, func(tx *gorm.DB, _ int) error {
		for _, g := range batch {
			if !utils.MarksInRange(g.Marks) {
				log.Printf("⚠️ Grade %d has out-of-range marks %v, skipping", g.ID, g.Marks)
				continue
			}
			if want := utils.CalculateFinalGrade(g.Marks); g.FinalGrade != want {
				g.FinalGrade = want
				stale = append(stale, g)
			}
		}
		return nil
	})
	if result.Error != nil {
		return 0, result.Error
	}

	fixed := 0
	for _, g := range stale {
		// marks guard: skip rows whose marks changed since the scan.
		res := db.Model(&models.Grade{}).
			Where("id = ? AND marks = ?", g.ID, g.Marks).
			Update("final_grade", g.FinalGrade)
		if res.Error != nil {
			return fixed, res.Error
		}
		fixed += int(res.RowsAffected)
	}
	return fixed, nil
}

func RunGradeAudit() {
	log.Println("Running job: ReconcileFinalGrades...")

	fixed, err := ReconcileFinalGrades(database.DB)
	if err != nil {
		log.Printf("🔥 Grade audit failed: %v", err)
		return
	}
	if fixed == 0 {
		log.Println("All final grades are consistent.")
		return
	}
	log.Printf("Corrected final grade on %d grade(s).", fixed)
}
