package services

import (
	"context"
	"fmt"

	"github.com/anjiri1684/course_enrollment/repositories"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const gradeSheetName = "Grades"

var gradeSheetHeaders = []string{
	"Grade ID", "Student", "Email", "Course Code", "Course", "Credits", "Marks", "Final Grade",
}

func ExportGrades(ctx context.Context, db *gorm.DB) (*excelize.File, error) {
	rows, err := repositories.ListGradeReportRows(db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("load grade report: %w", err)
	}
	return BuildGradeWorkbook(rows)
}

// BuildGradeWorkbook writes one header row and one row per grade.
func BuildGradeWorkbook(rows []repositories.GradeReportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", gradeSheetName); err != nil {
		f.Close()
		return nil, err
	}

	for i, header := range gradeSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(gradeSheetName, cell, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := []interface{}{
			r.GradeID, r.StudentName, r.StudentEmail, r.CourseCode, r.CourseName, r.Credits, r.Marks, r.FinalGrade,
		}
		if err := f.SetSheetRow(gradeSheetName, cell, &values); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
