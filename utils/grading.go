package utils

import "math"

const (
	MinMarks = 0
	MaxMarks = 100
)

var gradeThresholds = []struct {
	min    float64
	letter string
}{
	{90, "A"},
	{80, "B"},
	{70, "C"},
	{60, "D"},
}

// MarksInRange reports whether marks is a usable score in [0,100].
func MarksInRange(marks float64) bool {
	return !math.IsNaN(marks) && marks >= MinMarks && marks <= MaxMarks
}

// CalculateFinalGrade maps marks to a letter grade. Callers must reject
// marks outside [0,100] first.
func CalculateFinalGrade(marks float64) string {
	for _, t := range gradeThresholds {
		if marks >= t.min {
			return t.letter
		}
	}
	return "F"
}
