package image

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by someone
	// else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("image not found")

	// ErrInvalidStorageKey: the key is not namespaced under the caller.
	ErrInvalidStorageKey = errors.New("invalid storage key")

	// ErrObjectNotFound: confirmation arrived but the object store has no
	// bytes at the key. The client should retry the upload, not the confirm.
	ErrObjectNotFound = errors.New("object not found in storage")

	// ErrSizeMismatch: client-declared size disagrees with the store.
	ErrSizeMismatch = errors.New("declared size does not match stored object")

	ErrContentTypeRejected = errors.New("content type not allowed")

	// ErrDuplicateStorageKey: the unique constraint on storage_key fired.
	ErrDuplicateStorageKey = errors.New("storage key already confirmed")

	ErrStorageUnavailable  = errors.New("object storage unavailable")
	ErrStorageDeleteFailed = errors.New("object storage delete failed")
)
