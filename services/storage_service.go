package services

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const transcriptFolder = "course_enrollment_transcripts"

// TranscriptStore is nil until InitTranscriptStorage finds a Cloudinary URL.
var TranscriptStore DocumentUploader

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, publicID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       u.folder,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

func InitTranscriptStorage(cloudinaryURL string) {
	if cloudinaryURL == "" {
		log.Println("⚠️ CLOUDINARY_URL not set, transcript publishing is disabled.")
		TranscriptStore = nil
		return
	}

	store, err := NewCloudinaryUploader(cloudinaryURL, transcriptFolder)
	if err != nil {
		log.Printf("🔥 Failed to configure Cloudinary: %v", err)
		TranscriptStore = nil
		return
	}
	TranscriptStore = store
	log.Println("✅ Transcript storage initialized successfully.")
}
