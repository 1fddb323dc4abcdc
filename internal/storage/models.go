package storage

// GifRecord is one stored GIF entry in a user's catalog.
type GifRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Tags         []string `json:"tags"`
	UserID       string   `json:"userId"`
}

// Catalog maps a user ID to that user's GIF records in upload order.
type Catalog map[string][]GifRecord
