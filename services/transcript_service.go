package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"math"
	"time"

	"github.com/anjiri1684/course_enrollment/models"
	"github.com/anjiri1684/course_enrollment/repositories"
	"github.com/anjiri1684/course_enrollment/utils"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"gorm.io/gorm"
)

//go:embed templates/transcript.html
var transcriptTemplateSource string

var transcriptTemplate = template.Must(template.New("transcript").Funcs(template.FuncMap{
	"deref": func(f *float64) float64 { return *f },
}).Parse(transcriptTemplateSource))

type TranscriptCourse struct {
	EnrollmentID   uint        `json:"enrollment_id"`
	CourseID       uint        `json:"course_id"`
	CourseCode     string      `json:"course_code"`
	CourseName     string      `json:"course_name"`
	Credits        int         `json:"credits"`
	EnrollmentDate models.Date `json:"enrollment_date"`
	Marks          *float64    `json:"marks"`
	FinalGrade     string      `json:"final_grade,omitempty"`
}

// TranscriptReport summarises a student's enrollments and grades. The
// weighted average is taken over graded enrollments only, weighted by credits.
type TranscriptReport struct {
	Student          models.Student     `json:"student"`
	Courses          []TranscriptCourse `json:"courses"`
	CreditsAttempted int                `json:"credits_attempted"`
	CreditsGraded    int                `json:"credits_graded"`
	WeightedAverage  *float64           `json:"weighted_average"`
	OverallGrade     string             `json:"overall_grade,omitempty"`
	Reference        string             `json:"reference,omitempty"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// PDFRenderer turns an HTML document into PDF bytes.
type PDFRenderer func(ctx context.Context, html string) ([]byte, error)

// DocumentUploader stores a rendered document and returns its public URL.
type DocumentUploader interface {
	Upload(ctx context.Context, data []byte, publicID string) (string, error)
}

func BuildTranscript(ctx context.Context, db *gorm.DB, studentID uint) (TranscriptReport, error) {
	var report TranscriptReport
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		report, err = buildTranscript(tx, studentID)
		return err
	})
	return report, err
}

func buildTranscript(tx *gorm.DB, studentID uint) (TranscriptReport, error) {
	student, err := loadStudent(tx, studentID)
	if err != nil {
		return TranscriptReport{}, err
	}

	enrollments, err := repositories.ListEnrollmentsWithCourseByStudent(tx, studentID)
	if err != nil {
		return TranscriptReport{}, fmt.Errorf("list enrollments for student %d: %w", studentID, err)
	}

	ids := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.ID)
	}
	grades, err := repositories.ListGradesByEnrollments(tx, ids)
	if err != nil {
		return TranscriptReport{}, fmt.Errorf("list grades for student %d: %w", studentID, err)
	}
	gradeByEnrollment := make(map[uint]models.Grade, len(grades))
	for _, g := range grades {
		gradeByEnrollment[g.EnrollmentID] = g
	}

	report := TranscriptReport{
		Student:     student,
		Courses:     make([]TranscriptCourse, 0, len(enrollments)),
		GeneratedAt: time.Now().UTC(),
	}
	var weightedMarks float64
	for _, e := range enrollments {
		line := TranscriptCourse{
			EnrollmentID:   e.ID,
			CourseID:       e.CourseID,
			EnrollmentDate: e.EnrollmentDate,
		}
		if e.Course != nil {
			line.CourseCode = e.Course.CourseCode
			line.CourseName = e.Course.CourseName
			line.Credits = e.Course.Credits
		}
		report.CreditsAttempted += line.Credits

		if g, ok := gradeByEnrollment[e.ID]; ok {
			marks := g.Marks
			line.Marks = &marks
			line.FinalGrade = g.FinalGrade
			report.CreditsGraded += line.Credits
			weightedMarks += marks * float64(line.Credits)
		}
		report.Courses = append(report.Courses, line)
	}

	if report.CreditsGraded > 0 {
		avg := math.Round(weightedMarks/float64(report.CreditsGraded)*100) / 100
		report.WeightedAverage = &avg
		report.OverallGrade = utils.CalculateFinalGrade(avg)
	}
	return report, nil
}

// ListStudentTranscripts returns the published transcripts of a student,
// newest first.
func ListStudentTranscripts(ctx context.Context, db *gorm.DB, studentID uint) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadStudent(tx, studentID); err != nil {
			return err
		}
		var err error
		transcripts, err = repositories.ListTranscriptsByStudent(tx, studentID)
		if err != nil {
			return fmt.Errorf("list transcripts for student %d: %w", studentID, err)
		}
		return nil
	})
	return transcripts, err
}

func RenderTranscriptHTML(report TranscriptReport) (string, error) {
	var rendered bytes.Buffer
	if err := transcriptTemplate.Execute(&rendered, report); err != nil {
		return "", fmt.Errorf("render transcript: %w", err)
	}
	return rendered.String(), nil
}

// RenderPDFWithChrome prints htmlContent to PDF in a headless Chrome tab.
func RenderPDFWithChrome(ctx context.Context, htmlContent string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, 30*time.Second)
	defer cancelTimeout()

	var pdfBuffer []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print transcript to pdf: %w", err)
	}
	return pdfBuffer, nil
}

func RenderTranscriptPDF(ctx context.Context, db *gorm.DB, render PDFRenderer, studentID uint) ([]byte, error) {
	report, err := BuildTranscript(ctx, db, studentID)
	if err != nil {
		return nil, err
	}
	htmlContent, err := RenderTranscriptHTML(report)
	if err != nil {
		return nil, err
	}
	return render(ctx, htmlContent)
}

// PublishTranscript renders the transcript, uploads it and records the
// uploaded document under a fresh verification reference.
func PublishTranscript(ctx context.Context, db *gorm.DB, render PDFRenderer, store DocumentUploader, studentID uint) (models.Transcript, error) {
	if store == nil {
		return models.Transcript{}, unavailableError("Transcript storage is not configured")
	}

	var (
		report    TranscriptReport
		reference string
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if report, err = buildTranscript(tx, studentID); err != nil {
			return err
		}
		if reference, err = utils.GenerateUniqueTranscriptReference(tx); err != nil {
			return fmt.Errorf("generate transcript reference: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Transcript{}, err
	}
	report.Reference = reference

	htmlContent, err := RenderTranscriptHTML(report)
	if err != nil {
		return models.Transcript{}, err
	}
	pdfBytes, err := render(ctx, htmlContent)
	if err != nil {
		return models.Transcript{}, err
	}

	url, err := store.Upload(ctx, pdfBytes, fmt.Sprintf("transcript_%d_%s", studentID, reference))
	if err != nil {
		return models.Transcript{}, fmt.Errorf("upload transcript: %w", err)
	}

	transcript := models.Transcript{
		StudentID:   studentID,
		Reference:   reference,
		DocumentURL: url,
		GeneratedAt: report.GeneratedAt,
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.CreateTranscript(tx, &transcript); err != nil {
			return storeConstraint(err, "Transcript reference already used, retry", notFoundError("Student not found"))
		}
		return nil
	})
	if err != nil {
		return models.Transcript{}, err
	}

	log.Printf("✅ Published transcript %s for student %d.", reference, studentID)
	return transcript, nil
}
