package entity

import (
	"time"

	"github.com/google/uuid"
)

// FileType classifies a stored multimedia asset.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeAudio    FileType = "audio"
	FileTypeVideo    FileType = "video"
	FileTypeDocument FileType = "document"
)

// Valid reports whether t is a member of the file type enum.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeImage, FileTypeAudio, FileTypeVideo, FileTypeDocument:
		return true
	default:
		return false
	}
}

// Multimedia stores metadata about an uploaded asset. The binary itself lives
// at URL; ExtractedText holds any text pulled out of the asset (OCR,
// transcription) when available.
type Multimedia struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FileType      FileType  `json:"file_type"`
	URL           string    `json:"url"`
	ExtractedText *string   `json:"extracted_text,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
