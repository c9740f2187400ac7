package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	domain "image-hosting-api/internal/domain/image"
	"image-hosting-api/internal/interface/api/rest/dto/auth"
	imageDTO "image-hosting-api/internal/interface/api/rest/dto/image"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPerPage = 20
	maxPerPage     = 100
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_\-\.]+$`)

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	username := strings.TrimSpace(r.Username)
	email := strings.ToLower(strings.TrimSpace(r.Email))

	// username (required + length + allowed chars)
	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 3–50 characters"
	} else if !usernameRe.MatchString(username) {
		errs["username"] = "allowed characters: letters, digits, '-', '_', '.'"
	}

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Login) == "" {
		errs["login"] = "login is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUploadRequest enforces the upload policy at the boundary, before
// any presigned URL is issued.
func ValidateUploadRequest(r imageDTO.UploadURLRequest) map[string]string {
	return validateUploadFields(r.FileName, r.ContentType, r.SizeBytes)
}

func ValidateConfirm(r imageDTO.ConfirmRequest) map[string]string {
	errs := validateUploadFields(r.FileName, r.ContentType, r.SizeBytes)
	if strings.TrimSpace(r.StorageKey) == "" {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["storage_key"] = "storage_key is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateUploadFields(filename, contentType string, sizeBytes uint64) map[string]string {
	errs := make(map[string]string)

	if l := utf8.RuneCountInString(filename); l < 1 || l > domain.MaxFileNameLen {
		errs["filename"] = "filename length must be 1–255 characters"
	}
	if !domain.ContentTypeAllowed(contentType) {
		errs["content_type"] = "must be one of image/jpeg, image/png, image/gif, image/webp"
	}
	if sizeBytes == 0 {
		errs["size_bytes"] = "size_bytes must be positive"
	} else if sizeBytes > domain.MaxSizeBytes {
		errs["size_bytes"] = "size_bytes must not exceed 10 MiB"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0, errors.New("invalid page")
	}
	return p, nil
}

func ValidatePerPage(perPage string) (int, error) {
	if perPage == "" {
		return defaultPerPage, nil
	}
	pp, err := strconv.Atoi(perPage)
	if err != nil || pp < 1 || pp > maxPerPage {
		return 0, errors.New("invalid per_page")
	}
	return pp, nil
}

func ParseImageID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("image_id must be a positive integer")
	}
	return id, nil
}
