package image

// Upload policy: which images we accept and how large they may be.

// 10 MiB
const MaxSizeBytes = uint64(10 << 20)

const MaxFileNameLen = 255

// DefaultExtension is used when the client filename carries no extension.
const DefaultExtension = "bin"

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

func ContentTypeAllowed(ct string) bool {
	_, ok := allowedContentTypes[ct]
	return ok
}
