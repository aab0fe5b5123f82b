package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"voicedrop/internal/config"
	"voicedrop/internal/model"
	"voicedrop/internal/repository"
	"voicedrop/internal/storage"
	"voicedrop/internal/transcribe"
	"voicedrop/internal/utils"

	"github.com/gin-gonic/gin"
)

// Client-facing messages. Full error detail is logged server-side only;
// response bodies stay generic regardless of what failed.
const (
	msgMissingFields = "Missing required fields"
	msgMalformed     = "Transcription failed or response is malformed"
	msgNotFound      = "File not found"
	msgInternal      = "Internal server error occurred. Please try again later."
)

// Handler holds the dependencies for the upload/transcribe routes
type Handler struct {
	uploader    storage.Uploader
	transcriber transcribe.Transcriber
	repo        repository.Repository
	mode        string
}

// NewHandler creates a new API handler
func NewHandler(uploader storage.Uploader, transcriber transcribe.Transcriber, repo repository.Repository, mode string) *Handler {
	return &Handler{
		uploader:    uploader,
		transcriber: transcriber,
		repo:        repo,
		mode:        mode,
	}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", healthCheck)
	r.POST("/upload", h.uploadAudio)
	r.GET("/transcribe/:file_id", h.transcribeUpload)
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "voicedrop-backend",
	})
}

// uploadAudio handles POST /upload. The file is stored with the cloud
// host first; what happens next depends on the configured mode:
// inline mode transcribes immediately and returns the text, deferred
// mode persists the record and returns its id for a later /transcribe.
func (h *Handler) uploadAudio(c *gin.Context) {
	audio, err := c.FormFile("audio")
	formatStyle := c.PostForm("format_style")
	language := c.PostForm("language")

	if err != nil || formatStyle == "" || language == "" {
		utils.Error(c, http.StatusBadRequest, msgMissingFields)
		return
	}

	src, err := audio.Open()
	if err != nil {
		log.Printf("[Upload] Failed to open multipart file: %v", err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}
	defer src.Close()

	ctx := c.Request.Context()
	fileID, fileURL, err := h.uploader.Upload(ctx, src, audio.Filename)
	if err != nil {
		log.Printf("[Upload] Storage upload failed: %v", err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}
	log.Printf("[Upload] File stored: %s", fileID)

	if h.mode == config.ModeInline {
		h.uploadAndTranscribe(c, fileID, fileURL, formatStyle, language)
		return
	}

	id, err := h.repo.InsertUpload(ctx, &model.UploadRecord{
		FileID:      fileID,
		FileURL:     fileURL,
		FormatStyle: formatStyle,
		Language:    language,
	})
	if err != nil {
		log.Printf("[Upload] Failed to persist upload record for file %s: %v", fileID, err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}
	log.Printf("[Upload] Upload record created: %d", id)

	c.JSON(http.StatusOK, gin.H{
		"file_id":  id,
		"file_url": fileURL,
	})
}

// uploadAndTranscribe finishes an inline-mode upload: transcribe the
// stored file, then persist the upload record. Nothing is persisted when
// transcription fails.
func (h *Handler) uploadAndTranscribe(c *gin.Context, fileID, fileURL, formatStyle, language string) {
	ctx := c.Request.Context()

	result, err := h.transcriber.Transcribe(ctx, fileURL)
	if err != nil {
		if errors.Is(err, transcribe.ErrMalformedResponse) {
			log.Printf("[Upload] Malformed transcription response for file %s", fileID)
			utils.Error(c, http.StatusInternalServerError, msgMalformed)
			return
		}
		log.Printf("[Upload] Transcription failed for file %s: %v", fileID, err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}

	rec := &model.UploadRecord{
		FileID:      fileID,
		FileURL:     fileURL,
		FormatStyle: formatStyle,
		Language:    language,
	}
	if _, err := h.repo.InsertUpload(ctx, rec); err != nil {
		log.Printf("[Upload] Failed to persist upload record for file %s: %v", fileID, err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_url":         fileURL,
		"transcribed_text": result.Transcription,
		"format_style":     formatStyle,
		"language":         language,
	})
}

// transcribeUpload handles GET /transcribe/:file_id. Re-transcribing the
// same upload is allowed and appends a new transcription row each time.
func (h *Handler) transcribeUpload(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("file_id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "file_id must be an integer")
		return
	}

	ctx := c.Request.Context()
	fileURL, err := h.repo.GetUploadURL(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.Error(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		log.Printf("[Transcribe] Failed to look up upload %d: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}

	result, err := h.transcriber.Transcribe(ctx, fileURL)
	if err != nil {
		if errors.Is(err, transcribe.ErrMalformedResponse) {
			log.Printf("[Transcribe] Malformed transcription response for upload %d", id)
			utils.Error(c, http.StatusInternalServerError, msgMalformed)
			return
		}
		log.Printf("[Transcribe] Transcription failed for upload %d: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}

	if err := h.repo.InsertTranscription(ctx, &model.TranscriptionRecord{
		FileID:        id,
		Transcription: result.Transcription,
	}); err != nil {
		log.Printf("[Transcribe] Failed to persist transcription for upload %d: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcribed_text": result.Transcription,
	})
}
