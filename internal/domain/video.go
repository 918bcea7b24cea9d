package domain

import (
	"time"
)

// Video is static catalog metadata, listed newest first.
type Video struct {
	ID         string    `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	URL        string    `json:"url" db:"url"`
	UploadSize float64   `json:"uploadSize" db:"upload_size"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// CreateVideoRequest is the wire body for POST /videos.
type CreateVideoRequest struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	UploadSize float64 `json:"uploadSize"`
}
