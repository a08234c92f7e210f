package model

import "time"

// CertMetadata describes one stored certificate blob.
type CertMetadata struct {
	ID          string         `json:"id"`
	ContentType string         `json:"content_type"`
	Properties  map[string]any `json:"properties,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
