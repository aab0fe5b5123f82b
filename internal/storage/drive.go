package storage

import (
	"context"
	"fmt"
	"io"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// audioMimeType is the content type declared for every uploaded object.
// No further MIME sniffing is done; callers are trusted to send audio.
const audioMimeType = "audio/mpeg"

// Uploader stores a raw audio stream with a cloud file host and returns
// the host's file identifier together with a publicly fetchable URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, name string) (fileID, fileURL string, err error)
}

type driveUploader struct {
	service *drive.Service
}

// NewUploader creates a Google Drive uploader authenticated with a
// service account key file. The credential is scoped to drive.file only,
// so it can manage files it created but nothing else in the account.
func NewUploader(ctx context.Context, credentialsFile string) (Uploader, error) {
	service, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &driveUploader{service: service}, nil
}

// NewUploaderWithService creates an uploader backed by an existing Drive
// service instance.
func NewUploaderWithService(service *drive.Service) Uploader {
	return &driveUploader{service: service}
}

// Upload creates the file on Drive, grants anyone-with-the-link read
// access, and returns the file id and shareable URL. The public-read
// grant is intentional: the transcription provider fetches the audio by
// URL with no credentials, so the object must stay publicly readable.
func (u *driveUploader) Upload(ctx context.Context, r io.Reader, name string) (string, string, error) {
	created, err := u.service.Files.Create(&drive.File{Name: name}).
		Media(r, googleapi.ContentType(audioMimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to create drive file: %w", err)
	}

	permission := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}
	if _, err := u.service.Permissions.Create(created.Id, permission).Context(ctx).Do(); err != nil {
		return "", "", fmt.Errorf("failed to set permission on file %s: %w", created.Id, err)
	}

	return created.Id, FileURL(created.Id), nil
}

// FileURL returns the direct-download URL for a Drive file id.
func FileURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", fileID)
}
