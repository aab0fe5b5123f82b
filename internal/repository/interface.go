package repository

import (
	"context"
	"errors"
	"voicedrop/internal/model"
)

// ErrNotFound is returned when no upload record matches the given id.
var ErrNotFound = errors.New("upload record not found")

// Repository defines data access for upload and transcription records
type Repository interface {
	// InsertUpload creates a new upload record and returns the generated id
	InsertUpload(ctx context.Context, rec *model.UploadRecord) (int64, error)

	// GetUploadURL retrieves the file URL for an upload record by id.
	// Returns ErrNotFound if no record exists.
	GetUploadURL(ctx context.Context, id int64) (string, error)

	// InsertTranscription appends a transcription record for an upload
	InsertTranscription(ctx context.Context, rec *model.TranscriptionRecord) error
}
