package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"voicedrop/internal/model"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

// InsertUpload creates a new upload record and returns the generated id
func (r *postgresRepository) InsertUpload(ctx context.Context, rec *model.UploadRecord) (int64, error) {
	const query = `
		INSERT INTO audio_files (file_id, file_url, format_style, language)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		rec.FileID,
		rec.FileURL,
		rec.FormatStyle,
		rec.Language,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert upload record: %w", err)
	}

	return id, nil
}

// GetUploadURL retrieves the file URL for an upload record by id
func (r *postgresRepository) GetUploadURL(ctx context.Context, id int64) (string, error) {
	const query = `SELECT file_url FROM audio_files WHERE id = $1`

	var fileURL string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&fileURL)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get upload record: %w", err)
	}

	return fileURL, nil
}

// InsertTranscription appends a transcription record for an upload
func (r *postgresRepository) InsertTranscription(ctx context.Context, rec *model.TranscriptionRecord) error {
	const query = `INSERT INTO transcriptions (file_id, transcription) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, rec.FileID, rec.Transcription); err != nil {
		return fmt.Errorf("failed to insert transcription record: %w", err)
	}

	return nil
}
