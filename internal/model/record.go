package model

// UploadRecord represents a stored audio file row in audio_files
type UploadRecord struct {
	ID          int64  `json:"id"`
	FileID      string `json:"file_id"`
	FileURL     string `json:"file_url"`
	FormatStyle string `json:"format_style"`
	Language    string `json:"language"`
}

// TranscriptionRecord represents a transcription row in transcriptions.
// Multiple rows per upload are allowed; re-transcription is additive.
type TranscriptionRecord struct {
	ID            int64  `json:"id"`
	FileID        int64  `json:"file_id"`
	Transcription string `json:"transcription"`
}
