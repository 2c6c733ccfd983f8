package notifications

import (
	"fmt"
	"html"
)

// GradeEmail builds the subject and body sent when a grade is recorded or
// changed.
func GradeEmail(studentName, courseCode, courseName string, marks float64, finalGrade string, updated bool) (string, string) {
	verb := "recorded"
	if updated {
		verb = "updated"
	}
	subject := fmt.Sprintf("Your grade for %s has been %s", courseCode, verb)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your grade for <strong>%s (%s)</strong> has been %s.</p>"+
			"<p>Marks: <strong>%.2f</strong><br>Final grade: <strong>%s</strong></p>",
		html.EscapeString(studentName),
		html.EscapeString(courseName),
		html.EscapeString(courseCode),
		verb,
		marks,
		html.EscapeString(finalGrade),
	)
	return subject, body
}
