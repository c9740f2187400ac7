package image

const (
	InsertImage = `
		INSERT INTO images (user_id, storage_key, file_name, content_type, size_bytes, public_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, user_id, storage_key, file_name, content_type, size_bytes, public_url, created_at
	`
	SelectImageByStorageKey = `
		SELECT id, user_id, storage_key, file_name, content_type, size_bytes, public_url, created_at
		FROM images
		WHERE storage_key = $1
	`
	SelectImageByID = `
		SELECT id, user_id, storage_key, file_name, content_type, size_bytes, public_url, created_at
		FROM images
		WHERE id = $1 AND user_id = $2
	`
	SelectImages = `
		SELECT id, user_id, storage_key, file_name, content_type, size_bytes, public_url, created_at
		FROM images
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	CountImages = `
		SELECT count(id) FROM images WHERE user_id = $1
	`
	DeleteImageByID = `
		DELETE FROM images WHERE id = $1 AND user_id = $2
	`
)
