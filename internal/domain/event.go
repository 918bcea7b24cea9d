package domain

import (
	"time"
)

type EventKind string

const (
	EventKindStream   EventKind = "stream"
	EventKindDownload EventKind = "download"
	EventKindView     EventKind = "view"
)

// Event is an immutable record of a user action. It is created once by the
// ingest service and never mutated or deleted afterwards.
type Event struct {
	ID         string    `json:"id" db:"id"`
	Kind       EventKind `json:"kind" db:"kind"`
	VideoID    string    `json:"videoId" db:"video_id"`
	SessionID  string    `json:"sessionId,omitempty" db:"session_id"`
	UserID     string    `json:"userId,omitempty" db:"user_id"`
	Provider   string    `json:"provider,omitempty" db:"provider"`
	Seconds    float64   `json:"seconds,omitempty" db:"seconds"`
	DataUsedMB float64   `json:"dataUsedMB,omitempty" db:"data_used_mb"`
	SizeBytes  float64   `json:"size,omitempty" db:"size_bytes"`
	EventLabel string    `json:"event,omitempty" db:"event_label"`
	Amount     float64   `json:"earnedAmount" db:"amount"`
	CreatedAt  time.Time `json:"timestamp" db:"created_at"`
}

// StreamEventRequest is the wire body for POST /events/stream. EarnedAmount
// is a pointer so an absent amount can be told apart from an explicit zero.
type StreamEventRequest struct {
	VideoID      string   `json:"videoId"`
	SessionID    string   `json:"sessionId"`
	UserID       string   `json:"userId"`
	Provider     string   `json:"provider"`
	Seconds      float64  `json:"seconds"`
	DataUsedMB   float64  `json:"dataUsedMB"`
	EarnedAmount *float64 `json:"earnedAmount"`
}

// DownloadEventRequest is the wire body for POST /events/download.
type DownloadEventRequest struct {
	VideoID   string  `json:"videoId"`
	SessionID string  `json:"sessionId"`
	UserID    string  `json:"userId"`
	Size      float64 `json:"size"`
	Amount    float64 `json:"amount"`
	Provider  string  `json:"provider"`
}

// ViewEventRequest is the wire body for POST /events/view.
type ViewEventRequest struct {
	VideoID      string  `json:"videoId"`
	UserID       string  `json:"userId"`
	Provider     string  `json:"provider"`
	Event        string  `json:"event"`
	DataUsedMB   float64 `json:"dataUsedMB"`
	EarnedAmount float64 `json:"earnedAmount"`
}

// EventUpdate is broadcast to websocket dashboard clients after each ingest.
type EventUpdate struct {
	Type      string    `json:"type"`
	VideoID   string    `json:"videoId"`
	Provider  string    `json:"provider,omitempty"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
