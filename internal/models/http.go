// Package models defines the request and response data structures used
// for communication between clients and the GIF catalog service.
package models

import "github.com/chlee-dev/gif-catalog/internal/storage"

// CreateGifRequest represents a request to add a GIF to a user's
// catalog. Title and Tags are required; everything else is optional.
type CreateGifRequest struct {
	// ID overrides the generated record id when supplied.
	ID string `json:"id,omitempty"`

	// Title is the human label for the GIF.
	Title string `json:"title"`

	// Tags are the searchable labels, in caller-supplied order.
	Tags []string `json:"tags"`

	// URL and ThumbnailURL point at externally hosted assets. They are
	// ignored when Base64Data is present.
	URL          string `json:"url,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Base64Data carries inline image bytes, optionally prefixed with a
	// data-URI header.
	Base64Data string `json:"base64_data,omitempty"`

	// UserID may carry the caller identity when it is not in the query
	// string or the Authorization header.
	UserID string `json:"userId,omitempty"`
}

// ListResponse is the envelope for list and search results.
type ListResponse struct {
	Success bool                `json:"success"`
	Data    []storage.GifRecord `json:"data"`
	Count   int                 `json:"count"`
	Query   string              `json:"query,omitempty"`
	UserID  string              `json:"userId,omitempty"`
}

// CreateResponse is the envelope for a successful create.
type CreateResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *storage.GifRecord `json:"data"`
}

// DeleteResponse is the envelope for a successful delete.
type DeleteResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	DeletedGif *storage.GifRecord `json:"deleted_gif"`
}

// ErrorResponse is the envelope for any failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is the envelope for the health endpoint.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
