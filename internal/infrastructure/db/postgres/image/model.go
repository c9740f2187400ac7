package image

import (
	"time"
)

type (
	Image struct {
		ID     uint64
		UserID uint64

		StorageKey  string
		FileName    string
		ContentType string
		SizeBytes   uint64
		PublicURL   string

		CreatedAt time.Time
	}
	Images []*Image
)
