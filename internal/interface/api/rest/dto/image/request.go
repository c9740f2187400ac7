package image

type (
	UploadURLRequest struct {
		FileName    string `json:"filename"`
		ContentType string `json:"content_type"`
		SizeBytes   uint64 `json:"size_bytes"`
	}

	ConfirmRequest struct {
		StorageKey  string `json:"storage_key"`
		FileName    string `json:"filename"`
		ContentType string `json:"content_type"`
		SizeBytes   uint64 `json:"size_bytes"`
	}
)
