package utils

import (
	"math/rand"
	"time"

	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/gorm"
)

const transcriptReferenceLength = 10
const letterBytes = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateUniqueTranscriptReference returns a verification code that is not
// yet used by any stored transcript.
func GenerateUniqueTranscriptReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, transcriptReferenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var count int64
		if err := tx.Model(&models.Transcript{}).Where("reference = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}
