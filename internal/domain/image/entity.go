package image

import (
	"time"

	"image-hosting-api/internal/domain/user"
)

type (
	ID    uint64
	Image struct {
		ID     ID
		UserID user.ID

		StorageKey  string
		FileName    string
		ContentType string
		SizeBytes   uint64
		PublicURL   string

		CreatedAt time.Time
	}
	Images []*Image

	// UploadSlot is what a client needs to push bytes directly to the
	// object store: a presigned PUT URL scoped to exactly one key.
	UploadSlot struct {
		UploadURL  string
		StorageKey string
		PublicURL  string
	}

	// ObjectInfo is the store's authoritative view of an uploaded object.
	ObjectInfo struct {
		SizeBytes   uint64
		ContentType string
	}

	// ConfirmRequest is the client's claim that an upload finished. Every
	// field in it is re-checked against the store before a row is written.
	ConfirmRequest struct {
		StorageKey  string
		FileName    string
		ContentType string
		SizeBytes   uint64
	}
)
