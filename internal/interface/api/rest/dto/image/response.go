package image

import (
	"time"
)

type (
	Image struct {
		ID          uint64    `json:"id"`
		FileName    string    `json:"filename"`
		ContentType string    `json:"content_type"`
		SizeBytes   uint64    `json:"size_bytes"`
		StorageKey  string    `json:"storage_key"`
		PublicURL   string    `json:"public_url"`
		CreatedAt   time.Time `json:"created_at"`
	}
	Images []Image

	UploadURLResponse struct {
		UploadURL  string `json:"upload_url"`
		StorageKey string `json:"storage_key"`
		PublicURL  string `json:"public_url"`
	}

	ListResponse struct {
		Images  Images `json:"images"`
		Total   uint64 `json:"total"`
		Page    int    `json:"page"`
		PerPage int    `json:"per_page"`
	}
)
